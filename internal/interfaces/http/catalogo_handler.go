package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/consola"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// CatalogoHandler expone categorías y productos. Las altas y ediciones pasan por los
// formularios de la consola, que validan antes de llamar al backend.
type CatalogoHandler struct {
	categorias ports.CategoriasAPI
	productos  ports.ProductosAPI
}

func NewCatalogoHandler(categorias ports.CategoriasAPI, productos ports.ProductosAPI) *CatalogoHandler {
	return &CatalogoHandler{categorias: categorias, productos: productos}
}

func estadoForm(c *fiber.Ctx) entity.Estado {
	if e := entity.Estado(strings.TrimSpace(c.FormValue("estado"))); e != "" {
		return e
	}
	return entity.EstadoActivo
}

// ── Categorías ────────────────────────────────────────────────────────────────

// ListarCategorias godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Param        estado  query  string  false  "activo | inactivo | todos"
// @Param        buscar  query  string  false  "Texto a buscar"
// @Success      200  {object}  dto.Respuesta[dto.Pagina[entity.Categoria]]
// @Router       /api/categorias [get]
func (h *CatalogoHandler) ListarCategorias(c *fiber.Ctx) error {
	var f dto.FiltrosCategorias
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "filtros inválidos")
	}
	return responder(c, h.categorias.Listar(c.UserContext(), f))
}

// ObtenerCategoria godoc
// @Summary      Obtener categoría
// @Tags         categorias
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.Respuesta[entity.Categoria]
// @Router       /api/categorias/{id} [get]
func (h *CatalogoHandler) ObtenerCategoria(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	return responder(c, h.categorias.Obtener(c.UserContext(), id))
}

// GuardarCategoria godoc
// @Summary      Crear o actualizar categoría
// @Description  Multipart: nombre, estado, parent_id, imagen, quitar_imagen. Con id en la ruta es edición.
// @Tags         categorias
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  ResultadoResponse[entity.Categoria]
// @Failure      422  {object}  ResultadoResponse[entity.Categoria]
// @Router       /api/categorias [post]
// @Router       /api/categorias/{id} [put]
func (h *CatalogoHandler) GuardarCategoria(c *fiber.Ctx) error {
	ctx := c.UserContext()
	todas := h.categorias.Listar(ctx, dto.FiltrosCategorias{})
	if !todas.Success {
		return responder(c, todas)
	}

	var original *entity.Categoria
	if c.Params("id") != "" {
		id, ok := idParam(c, "id")
		if !ok {
			return idInvalido(c)
		}
		r := h.categorias.Obtener(ctx, id)
		if !r.Success {
			return responder(c, r)
		}
		original = &r.Data
	}

	f := consola.NewFormularioCategoria(h.categorias, original, todas.Data.Items)
	f.Nombre = c.FormValue("nombre")
	f.Estado = estadoForm(c)
	f.ParentID = lectorForm{c: c, invalido: f.EntradaInvalida}.id("parent_id")
	img, err := archivo(c, "imagen")
	if err != nil {
		return archivoIlegible(c, err)
	}
	switch {
	case img != nil:
		if err := f.SeleccionarImagen(*img); err != nil {
			return rechazoImagen(c, "imagen", err)
		}
	case formBool(c, "quitar_imagen"):
		f.Imagen.Quitar()
	}
	res, err := f.Guardar(ctx)
	return responderResultado(c, res, err)
}

// AlternarCategoria godoc
// @Summary      Activar o desactivar categoría
// @Tags         categorias
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  ResultadoResponse[entity.Categoria]
// @Router       /api/categorias/{id}/alternar [put]
func (h *CatalogoHandler) AlternarCategoria(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	r := h.categorias.Obtener(c.UserContext(), id)
	if !r.Success {
		return responder(c, r)
	}
	conf := consola.ConfirmarCambioActivo[entity.Categoria](h.categorias, consola.SujetoCategoria, id, r.Data.Nombre, r.Data.Estado)
	res, err := conf.Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListarProductos godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Param        estado        query  string  false  "activo | inactivo | todos"
// @Param        categoria_id  query  int     false  "Categoría"
// @Param        sin_stock     query  bool    false  "Solo sin stock"
// @Param        buscar        query  string  false  "Texto a buscar"
// @Param        page          query  int     false  "Página"
// @Param        per_page      query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.Respuesta[dto.Pagina[entity.Producto]]
// @Router       /api/productos [get]
func (h *CatalogoHandler) ListarProductos(c *fiber.Ctx) error {
	var f dto.FiltrosProductos
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "filtros inválidos")
	}
	return responder(c, h.productos.Listar(c.UserContext(), f))
}

// ObtenerProducto godoc
// @Summary      Obtener producto
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta[entity.Producto]
// @Router       /api/productos/{id} [get]
func (h *CatalogoHandler) ObtenerProducto(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	return responder(c, h.productos.Obtener(c.UserContext(), id))
}

// GuardarProducto godoc
// @Summary      Crear o actualizar producto
// @Description  Multipart con los datos del producto, imagenes (varios archivos), imagen_principal_index y eliminar_imagenes (ids).
// @Tags         productos
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  ResultadoResponse[entity.Producto]
// @Failure      422  {object}  ResultadoResponse[entity.Producto]
// @Router       /api/productos [post]
// @Router       /api/productos/{id} [put]
func (h *CatalogoHandler) GuardarProducto(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var original *entity.Producto
	if c.Params("id") != "" {
		id, ok := idParam(c, "id")
		if !ok {
			return idInvalido(c)
		}
		r := h.productos.Obtener(ctx, id)
		if !r.Success {
			return responder(c, r)
		}
		original = &r.Data
	}

	f := consola.NewFormularioProducto(h.productos, original)
	lf := lectorForm{c: c, invalido: f.EntradaInvalida}
	stock, _ := lf.entero("stock", "El stock debe ser un número entero")
	f.Datos = consola.DatosProducto{
		Nombre:      c.FormValue("nombre"),
		SKU:         c.FormValue("sku"),
		Descripcion: c.FormValue("descripcion"),
		CategoriaID: lf.id("categoria_id"),
		TiendaID:    lf.id("tienda_id"),
		Precio:      lf.decimal("precio", "El precio debe ser un número válido"),
		Descuento:   lf.decimal("descuento", "El descuento debe ser un número válido"),
		Stock:       stock,
		Estado:      estadoForm(c),
		Beneficios:  c.FormValue("beneficios"),
		ModoUso:     c.FormValue("modo_uso"),
		Detalle:     c.FormValue("detalle"),
	}
	for _, id := range lf.ids("eliminar_imagenes") {
		f.MarcarEliminar(id)
	}
	nuevas, err := archivos(c, "imagenes")
	if err != nil {
		return archivoIlegible(c, err)
	}
	if err := f.AgregarImagenes(nuevas...); err != nil {
		return rechazoImagen(c, "imagenes", err)
	}
	if i, ok := lf.entero("imagen_principal_index", "Índice de imagen inválido"); ok {
		f.ElegirPrincipal(i)
	}
	res, err := f.Guardar(ctx)
	return responderResultado(c, res, err)
}

// AlternarProducto godoc
// @Summary      Activar o desactivar producto
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  ResultadoResponse[entity.Producto]
// @Router       /api/productos/{id}/alternar [put]
func (h *CatalogoHandler) AlternarProducto(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	r := h.productos.Obtener(c.UserContext(), id)
	if !r.Success {
		return responder(c, r)
	}
	conf := consola.ConfirmarCambioActivo[entity.Producto](h.productos, consola.SujetoProducto, id, r.Data.Nombre, r.Data.Estado)
	res, err := conf.Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// MoverImagenRequest desplaza una imagen de la galería una posición.
type MoverImagenRequest struct {
	ImagenID int64 `json:"imagen_id" validate:"required"`
	Delta    int   `json:"delta" validate:"oneof=-1 1"`
}

// MoverImagenProducto godoc
// @Summary      Reordenar imagen de producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del producto"
// @Param        body  body  MoverImagenRequest  true  "imagen y sentido"
// @Success      200  {object}  map[string]any
// @Router       /api/productos/{id}/imagenes/mover [put]
func (h *CatalogoHandler) MoverImagenProducto(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	var in MoverImagenRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "VALIDATION", "imagen_id y delta (-1 o 1) son requeridos")
	}
	r := h.productos.Obtener(c.UserContext(), id)
	if !r.Success {
		return responder(c, r)
	}
	i := -1
	for k, img := range r.Data.Imagenes {
		if img.ID == in.ImagenID {
			i = k
			break
		}
	}
	if i < 0 {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "imagen no encontrada")
	}
	imgs, aviso := consola.MoverImagen(c.UserContext(), h.productos, id, r.Data.Imagenes, i, in.Delta)
	return responderAviso(c, aviso, imgs)
}

// ImagenPrincipal godoc
// @Summary      Marcar imagen principal
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Param        img  path  int  true  "ID de la imagen"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/imagenes/{img}/principal [put]
func (h *CatalogoHandler) ImagenPrincipal(c *fiber.Ctx) error {
	id, ok1 := idParam(c, "id")
	img, ok2 := idParam(c, "img")
	if !ok1 || !ok2 {
		return idInvalido(c)
	}
	ctx := c.UserContext()
	r := h.productos.Obtener(ctx, id)
	if !r.Success {
		return responder(c, r)
	}
	f := consola.NewFormularioProducto(h.productos, &r.Data)
	aviso, err := f.EstablecerPrincipalExistente(ctx, img)
	if errors.Is(err, domain.ErrNoEncontrado) {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "imagen no encontrada")
	}
	return responderAviso(c, aviso, f.Existentes())
}

// ActualizarImagen godoc
// @Summary      Cambiar texto alternativo de una imagen
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Param        img  path  int  true  "ID de la imagen"
// @Success      200  {object}  dto.Respuesta[entity.ProductoImagen]
// @Router       /api/productos/{id}/imagenes/{img} [put]
func (h *CatalogoHandler) ActualizarImagen(c *fiber.Ctx) error {
	id, ok1 := idParam(c, "id")
	img, ok2 := idParam(c, "img")
	if !ok1 || !ok2 {
		return idInvalido(c)
	}
	var in struct {
		AltText string `json:"alt_text"`
	}
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	return responder(c, h.productos.ActualizarImagen(c.UserContext(), id, img, in.AltText))
}

// EliminarImagen godoc
// @Summary      Eliminar imagen de producto
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Param        img  path  int  true  "ID de la imagen"
// @Success      200  {object}  dto.Respuesta[any]
// @Router       /api/productos/{id}/imagenes/{img} [delete]
func (h *CatalogoHandler) EliminarImagen(c *fiber.Ctx) error {
	id, ok1 := idParam(c, "id")
	img, ok2 := idParam(c, "img")
	if !ok1 || !ok2 {
		return idInvalido(c)
	}
	return responder(c, h.productos.EliminarImagen(c.UserContext(), id, img))
}
