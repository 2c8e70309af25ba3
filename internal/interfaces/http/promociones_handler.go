package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/consola"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// PromocionesHandler expone carrusel, banners CyberWow y liquidación.
type PromocionesHandler struct {
	carrusel    ports.CarruselAPI
	cyberwow    ports.CyberWowAPI
	liquidacion ports.LiquidacionAPI
}

func NewPromocionesHandler(carrusel ports.CarruselAPI, cyberwow ports.CyberWowAPI, liquidacion ports.LiquidacionAPI) *PromocionesHandler {
	return &PromocionesHandler{carrusel: carrusel, cyberwow: cyberwow, liquidacion: liquidacion}
}

// aperturaRechazada responde cuando un formulario no puede abrirse (sin cupo o sin datos).
func aperturaRechazada(c *fiber.Ctx, a consola.Aviso, err error) error {
	status := fiber.StatusUnprocessableEntity
	if errors.Is(err, domain.ErrLimiteAlcanzado) {
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(ResultadoResponse[struct{}]{Aviso: a})
}

// ── Carrusel ──────────────────────────────────────────────────────────────────

// ListarCarrusel godoc
// @Summary      Listar diapositivas del carrusel
// @Tags         carrusel
// @Produce      json
// @Param        estado        query  string  false  "activo | inactivo | todos"
// @Param        con_producto  query  bool    false  "Solo con producto"
// @Param        sin_producto  query  bool    false  "Solo sin producto"
// @Success      200  {object}  dto.Respuesta[dto.Pagina[entity.ItemCarrusel]]
// @Router       /api/carrusel [get]
func (h *PromocionesHandler) ListarCarrusel(c *fiber.Ctx) error {
	var f dto.FiltrosCarrusel
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "filtros inválidos")
	}
	return responder(c, h.carrusel.Listar(c.UserContext(), f))
}

// ProductosCarrusel godoc
// @Summary      Productos que pueden enlazarse a una diapositiva
// @Tags         carrusel
// @Produce      json
// @Success      200  {object}  dto.Respuesta[[]entity.ProductoResumen]
// @Router       /api/carrusel/productos-disponibles [get]
func (h *PromocionesHandler) ProductosCarrusel(c *fiber.Ctx) error {
	return responder(c, h.carrusel.ProductosDisponibles(c.UserContext()))
}

// GuardarCarrusel godoc
// @Summary      Agregar o actualizar diapositiva
// @Description  Multipart: orden, estado, producto_id, imagen, imagen_mobile, quitar_imagen, quitar_imagen_mobile.
// @Tags         carrusel
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  ResultadoResponse[entity.ItemCarrusel]
// @Failure      422  {object}  ResultadoResponse[entity.ItemCarrusel]
// @Router       /api/carrusel [post]
// @Router       /api/carrusel/{id} [put]
func (h *PromocionesHandler) GuardarCarrusel(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var original *entity.ItemCarrusel
	if c.Params("id") != "" {
		id, ok := idParam(c, "id")
		if !ok {
			return idInvalido(c)
		}
		r := h.carrusel.Obtener(ctx, id)
		if !r.Success {
			return responder(c, r)
		}
		original = &r.Data
	}

	f := consola.NewFormularioCarrusel(h.carrusel, original)
	lf := lectorForm{c: c, invalido: f.EntradaInvalida}
	if n, ok := lf.entero("orden", MensajeOrdenInvalido); ok {
		f.Orden = &n
	}
	f.Estado = estadoForm(c)
	if lf.texto("producto_id") != "" {
		f.ProductoID = lf.id("producto_id")
	}
	selectores := []struct {
		campo string
		sel   *consola.SelectorImagen
	}{{"imagen", f.Imagen}, {"imagen_mobile", f.ImagenMobile}}
	for _, s := range selectores {
		campo, sel := s.campo, s.sel
		a, err := archivo(c, campo)
		if err != nil {
			return archivoIlegible(c, err)
		}
		switch {
		case a != nil:
			if err := sel.Seleccionar(*a); err != nil {
				return rechazoImagen(c, campo, err)
			}
		case formBool(c, "quitar_"+campo):
			sel.Quitar()
		}
	}
	res, err := f.Guardar(ctx)
	return responderResultado(c, res, err)
}

// EstadoCarrusel godoc
// @Summary      Alternar estado de una diapositiva
// @Tags         carrusel
// @Produce      json
// @Param        id   path  int  true  "ID de la diapositiva"
// @Success      200  {object}  ResultadoResponse[entity.ItemCarrusel]
// @Router       /api/carrusel/{id}/estado [put]
func (h *PromocionesHandler) EstadoCarrusel(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	r := h.carrusel.Obtener(c.UserContext(), id)
	if !r.Success {
		return responder(c, r)
	}
	res, err := consola.ConfirmarEstadoCarrusel(h.carrusel, r.Data).Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// MoverCarruselRequest desplaza una diapositiva una posición.
type MoverCarruselRequest struct {
	ID    int64 `json:"id" validate:"required"`
	Delta int   `json:"delta" validate:"oneof=-1 1"`
}

// MoverCarrusel godoc
// @Summary      Reordenar carrusel
// @Tags         carrusel
// @Accept       json
// @Produce      json
// @Param        body  body  MoverCarruselRequest  true  "diapositiva y sentido"
// @Success      200  {object}  map[string]any
// @Router       /api/carrusel/mover [put]
func (h *PromocionesHandler) MoverCarrusel(c *fiber.Ctx) error {
	var in MoverCarruselRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "VALIDATION", "id y delta (-1 o 1) son requeridos")
	}
	ctx := c.UserContext()
	r := h.carrusel.Listar(ctx, dto.FiltrosCarrusel{})
	if !r.Success {
		return responder(c, r)
	}
	i := -1
	for k, it := range r.Data.Items {
		if it.ID == in.ID {
			i = k
			break
		}
	}
	if i < 0 {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "diapositiva no encontrada")
	}
	items, aviso := consola.MoverCarrusel(ctx, h.carrusel, r.Data.Items, i, in.Delta)
	return responderAviso(c, aviso, items)
}

// DesvincularCarrusel godoc
// @Summary      Quitar el producto enlazado a una diapositiva
// @Tags         carrusel
// @Produce      json
// @Param        id   path  int  true  "ID de la diapositiva"
// @Success      200  {object}  dto.Respuesta[entity.ItemCarrusel]
// @Router       /api/carrusel/{id}/desvincular-producto [put]
func (h *PromocionesHandler) DesvincularCarrusel(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	return responder(c, h.carrusel.DesvincularProducto(c.UserContext(), id))
}

// EliminarCarrusel godoc
// @Summary      Eliminar diapositiva
// @Tags         carrusel
// @Produce      json
// @Param        id   path  int  true  "ID de la diapositiva"
// @Success      200  {object}  ResultadoResponse[any]
// @Router       /api/carrusel/{id} [delete]
func (h *PromocionesHandler) EliminarCarrusel(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	res, err := consola.ConfirmarEliminar(h.carrusel, consola.SujetoCarrusel, id, "").Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// ── CyberWow ──────────────────────────────────────────────────────────────────

// ListarCyberWow godoc
// @Summary      Listar banners CyberWow
// @Tags         cyberwow
// @Produce      json
// @Success      200  {object}  dto.Respuesta[dto.Pagina[entity.BannerCyberWow]]
// @Router       /api/cyberwow [get]
func (h *PromocionesHandler) ListarCyberWow(c *fiber.Ctx) error {
	return responder(c, h.cyberwow.Listar(c.UserContext()))
}

// DatosCyberWow godoc
// @Summary      Opciones y cupos libres para banners
// @Tags         cyberwow
// @Produce      json
// @Success      200  {object}  dto.Respuesta[entity.DatosAuxiliaresCyberWow]
// @Router       /api/cyberwow/datos-auxiliares [get]
func (h *PromocionesHandler) DatosCyberWow(c *fiber.Ctx) error {
	return responder(c, h.cyberwow.DatosAuxiliares(c.UserContext()))
}

// CrearCyberWow godoc
// @Summary      Crear banner CyberWow
// @Description  Multipart: titulo, estado, categoria_id | producto_id | tiendas (varios), imagen. El tipo va en la ruta.
// @Tags         cyberwow
// @Accept       multipart/form-data
// @Produce      json
// @Param        tipo  path  string  true  "categoria | tiendas | producto"
// @Success      200  {object}  ResultadoResponse[entity.BannerCyberWow]
// @Failure      409  {object}  ResultadoResponse[entity.BannerCyberWow]
// @Router       /api/cyberwow/banners/{tipo} [post]
func (h *PromocionesHandler) CrearCyberWow(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var aux *entity.DatosAuxiliaresCyberWow
	if r := h.cyberwow.DatosAuxiliares(ctx); r.Success {
		aux = &r.Data
	}
	f, aviso, err := consola.NewFormularioCyberWow(h.cyberwow, aux, c.Params("tipo"))
	if err != nil {
		return aperturaRechazada(c, aviso, err)
	}
	return h.guardarCyberWow(c, f)
}

// ActualizarCyberWow godoc
// @Summary      Actualizar banner CyberWow
// @Tags         cyberwow
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  int  true  "ID del banner"
// @Success      200  {object}  ResultadoResponse[entity.BannerCyberWow]
// @Router       /api/cyberwow/banners/{id} [put]
func (h *PromocionesHandler) ActualizarCyberWow(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	r := h.cyberwow.Listar(c.UserContext())
	if !r.Success {
		return responder(c, r)
	}
	for _, b := range r.Data.Items {
		if b.ID == id {
			return h.guardarCyberWow(c, consola.EditarCyberWow(h.cyberwow, &b))
		}
	}
	return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "banner no encontrado")
}

func (h *PromocionesHandler) guardarCyberWow(c *fiber.Ctx, f *consola.FormularioCyberWow) error {
	f.TituloBanner = c.FormValue("titulo")
	f.Estado = estadoForm(c)
	lf := lectorForm{c: c, invalido: f.EntradaInvalida}
	switch f.Tipo() {
	case entity.BannerCategoria:
		f.CategoriaID = lf.id("categoria_id")
	case entity.BannerProducto:
		f.ProductoID = lf.id("producto_id")
	case entity.BannerTiendas:
		f.Tiendas = lf.ids("tiendas")
	}
	img, err := archivo(c, "imagen")
	if err != nil {
		return archivoIlegible(c, err)
	}
	if img != nil {
		if err := f.Imagen.Seleccionar(*img); err != nil {
			return rechazoImagen(c, "imagen", err)
		}
	}
	res, err := f.Guardar(c.UserContext())
	return responderResultado(c, res, err)
}

// EliminarCyberWow godoc
// @Summary      Eliminar banner CyberWow
// @Tags         cyberwow
// @Produce      json
// @Param        id   path  int  true  "ID del banner"
// @Success      200  {object}  ResultadoResponse[any]
// @Router       /api/cyberwow/banners/{id} [delete]
func (h *PromocionesHandler) EliminarCyberWow(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	res, err := consola.ConfirmarEliminar(h.cyberwow, consola.SujetoBanner, id, c.Query("titulo")).Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// ── Liquidación ───────────────────────────────────────────────────────────────

// ListarLiquidacion godoc
// @Summary      Listar productos en liquidación
// @Tags         liquidacion
// @Produce      json
// @Success      200  {object}  dto.Respuesta[dto.Pagina[entity.Liquidacion]]
// @Router       /api/liquidacion [get]
func (h *PromocionesHandler) ListarLiquidacion(c *fiber.Ctx) error {
	return responder(c, h.liquidacion.Listar(c.UserContext()))
}

// ProductosLiquidacion godoc
// @Summary      Productos elegibles para liquidación
// @Description  Excluye los productos que ya están en liquidación, salvo el de la edición en curso (query editando).
// @Tags         liquidacion
// @Produce      json
// @Param        editando  query  int  false  "ID de la liquidación en edición"
// @Success      200  {object}  dto.Respuesta[[]entity.ProductoResumen]
// @Router       /api/liquidacion/productos [get]
func (h *PromocionesHandler) ProductosLiquidacion(c *fiber.Ctx) error {
	ctx := c.UserContext()
	productos := h.liquidacion.ProductosActivos(ctx)
	if !productos.Success {
		return responder(c, productos)
	}
	actuales := h.liquidacion.Listar(ctx)
	if !actuales.Success {
		return responder(c, actuales)
	}
	f := &consola.FormularioLiquidacion{}
	if id := int64(c.QueryInt("editando")); id > 0 {
		for _, l := range actuales.Data.Items {
			if l.ID == id {
				f = consola.EditarLiquidacion(h.liquidacion, &l)
				break
			}
		}
	}
	return c.JSON(dto.Exito(f.ProductosElegibles(productos.Data, actuales.Data.Items), ""))
}

// GuardarLiquidacion godoc
// @Summary      Crear o actualizar liquidación
// @Description  Multipart: producto_id, orden (1 a 6), imagen. Al crear sin orden se usa el siguiente libre.
// @Tags         liquidacion
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  ResultadoResponse[entity.Liquidacion]
// @Failure      409  {object}  ResultadoResponse[entity.Liquidacion]
// @Router       /api/liquidacion [post]
// @Router       /api/liquidacion/{id} [put]
func (h *PromocionesHandler) GuardarLiquidacion(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var f *consola.FormularioLiquidacion
	if c.Params("id") != "" {
		id, ok := idParam(c, "id")
		if !ok {
			return idInvalido(c)
		}
		r := h.liquidacion.Obtener(ctx, id)
		if !r.Success {
			return responder(c, r)
		}
		f = consola.EditarLiquidacion(h.liquidacion, &r.Data)
	} else {
		actuales := h.liquidacion.Listar(ctx)
		if !actuales.Success {
			return responder(c, actuales)
		}
		var (
			aviso consola.Aviso
			err   error
		)
		f, aviso, err = consola.NewFormularioLiquidacion(ctx, h.liquidacion, len(actuales.Data.Items))
		if err != nil {
			return aperturaRechazada(c, aviso, err)
		}
	}

	lf := lectorForm{c: c, invalido: f.EntradaInvalida}
	if id := lf.id("producto_id"); id != nil {
		f.ProductoID = *id
	}
	if n, ok := lf.entero("orden", MensajeOrdenInvalido); ok {
		f.Orden = n
	}
	img, err := archivo(c, "imagen")
	if err != nil {
		return archivoIlegible(c, err)
	}
	if img != nil {
		if err := f.Imagen.Seleccionar(*img); err != nil {
			return rechazoImagen(c, "imagen", err)
		}
	}
	res, err := f.Guardar(ctx)
	return responderResultado(c, res, err)
}

// EliminarLiquidacion godoc
// @Summary      Quitar producto de liquidación
// @Tags         liquidacion
// @Produce      json
// @Param        id   path  int  true  "ID de la liquidación"
// @Success      200  {object}  ResultadoResponse[any]
// @Router       /api/liquidacion/{id} [delete]
func (h *PromocionesHandler) EliminarLiquidacion(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	res, err := consola.ConfirmarEliminar(h.liquidacion, consola.SujetoLiquidacion, id, "").Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}
