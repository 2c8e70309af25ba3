package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/consola"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// ContenidoHandler expone etiquetas y blogs.
type ContenidoHandler struct {
	etiquetas ports.EtiquetasAPI
	blogs     ports.BlogsAPI
}

func NewContenidoHandler(etiquetas ports.EtiquetasAPI, blogs ports.BlogsAPI) *ContenidoHandler {
	return &ContenidoHandler{etiquetas: etiquetas, blogs: blogs}
}

// ── Etiquetas ─────────────────────────────────────────────────────────────────

// ListarEtiquetas godoc
// @Summary      Listar etiquetas
// @Tags         etiquetas
// @Produce      json
// @Param        estado    query  string  false  "activo | inactivo | todos"
// @Param        buscar    query  string  false  "Texto a buscar"
// @Param        page      query  int     false  "Página"
// @Param        per_page  query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.Respuesta[dto.Pagina[entity.Etiqueta]]
// @Router       /api/etiquetas [get]
func (h *ContenidoHandler) ListarEtiquetas(c *fiber.Ctx) error {
	var f dto.FiltrosEtiquetas
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "filtros inválidos")
	}
	return responder(c, h.etiquetas.Listar(c.UserContext(), f))
}

// EtiquetasActivas godoc
// @Summary      Etiquetas activas para selectores
// @Tags         etiquetas
// @Produce      json
// @Success      200  {object}  dto.Respuesta[[]entity.Etiqueta]
// @Router       /api/etiquetas/activas [get]
func (h *ContenidoHandler) EtiquetasActivas(c *fiber.Ctx) error {
	return responder(c, h.etiquetas.Activas(c.UserContext()))
}

// ObtenerEtiqueta godoc
// @Summary      Obtener etiqueta
// @Tags         etiquetas
// @Produce      json
// @Param        id   path  int  true  "ID de la etiqueta"
// @Success      200  {object}  dto.Respuesta[entity.Etiqueta]
// @Router       /api/etiquetas/{id} [get]
func (h *ContenidoHandler) ObtenerEtiqueta(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	return responder(c, h.etiquetas.Obtener(c.UserContext(), id))
}

// GuardarEtiqueta godoc
// @Summary      Crear o actualizar etiqueta
// @Description  Multipart: nombre, slug (opcional, se genera del nombre), estado, imagen, quitar_imagen.
// @Tags         etiquetas
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  ResultadoResponse[entity.Etiqueta]
// @Failure      422  {object}  ResultadoResponse[entity.Etiqueta]
// @Router       /api/etiquetas [post]
// @Router       /api/etiquetas/{id} [put]
func (h *ContenidoHandler) GuardarEtiqueta(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var original *entity.Etiqueta
	if c.Params("id") != "" {
		id, ok := idParam(c, "id")
		if !ok {
			return idInvalido(c)
		}
		r := h.etiquetas.Obtener(ctx, id)
		if !r.Success {
			return responder(c, r)
		}
		original = &r.Data
	}

	f := consola.NewFormularioEtiqueta(h.etiquetas, original)
	f.CambiarNombre(c.FormValue("nombre"))
	if s := strings.TrimSpace(c.FormValue("slug")); s != "" {
		f.CambiarSlug(s)
	}
	f.Estado = estadoForm(c)
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

// AlternarEtiqueta godoc
// @Summary      Activar o desactivar etiqueta
// @Tags         etiquetas
// @Produce      json
// @Param        id   path  int  true  "ID de la etiqueta"
// @Success      200  {object}  ResultadoResponse[dto.CambioToggle]
// @Router       /api/etiquetas/{id}/toggle [put]
func (h *ContenidoHandler) AlternarEtiqueta(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	r := h.etiquetas.Obtener(c.UserContext(), id)
	if !r.Success {
		return responder(c, r)
	}
	res, err := consola.ConfirmarToggle(h.etiquetas, consola.SujetoEtiqueta, id, r.Data.Nombre, r.Data.Estado).Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// EliminarEtiqueta godoc
// @Summary      Eliminar etiqueta
// @Tags         etiquetas
// @Produce      json
// @Param        id   path  int  true  "ID de la etiqueta"
// @Success      200  {object}  ResultadoResponse[any]
// @Router       /api/etiquetas/{id} [delete]
func (h *ContenidoHandler) EliminarEtiqueta(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	res, err := consola.ConfirmarEliminar(h.etiquetas, consola.SujetoEtiqueta, id, c.Query("nombre")).Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// ── Blogs ─────────────────────────────────────────────────────────────────────

// ListarBlogs godoc
// @Summary      Listar blogs
// @Tags         blogs
// @Produce      json
// @Param        estado    query  string  false  "activo | inactivo | todos"
// @Param        buscar    query  string  false  "Texto a buscar"
// @Param        page      query  int     false  "Página"
// @Param        per_page  query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.Respuesta[dto.Pagina[entity.Blog]]
// @Router       /api/blogs [get]
func (h *ContenidoHandler) ListarBlogs(c *fiber.Ctx) error {
	var f dto.FiltrosBlogs
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "filtros inválidos")
	}
	return responder(c, h.blogs.Listar(c.UserContext(), f))
}

// ObtenerBlog godoc
// @Summary      Obtener blog
// @Tags         blogs
// @Produce      json
// @Param        id   path  int  true  "ID del blog"
// @Success      200  {object}  dto.Respuesta[entity.Blog]
// @Router       /api/blogs/{id} [get]
func (h *ContenidoHandler) ObtenerBlog(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	return responder(c, h.blogs.Obtener(c.UserContext(), id))
}

// GuardarBlog godoc
// @Summary      Crear o actualizar blog
// @Description  Multipart: titulo, blog_slug, meta_title, meta_description, resumen, contenido_flexible (JSON), portada, quitar_portada.
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  ResultadoResponse[entity.Blog]
// @Failure      422  {object}  ResultadoResponse[entity.Blog]
// @Router       /api/blogs [post]
// @Router       /api/blogs/{id} [put]
func (h *ContenidoHandler) GuardarBlog(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var original *entity.Blog
	if c.Params("id") != "" {
		id, ok := idParam(c, "id")
		if !ok {
			return idInvalido(c)
		}
		r := h.blogs.Obtener(ctx, id)
		if !r.Success {
			return responder(c, r)
		}
		original = &r.Data
	}

	f := consola.NewFormularioBlog(h.blogs, original)
	f.CambiarTitulo(c.FormValue("titulo"))
	if s := strings.TrimSpace(c.FormValue("blog_slug")); s != "" {
		f.CambiarSlug(s)
	}
	f.MetaTitle = c.FormValue("meta_title")
	f.MetaDescription = c.FormValue("meta_description")
	f.Resumen = c.FormValue("resumen")
	f.ContenidoFlexible = c.FormValue("contenido_flexible")
	portada, err := archivo(c, "portada")
	if err != nil {
		return archivoIlegible(c, err)
	}
	switch {
	case portada != nil:
		if err := f.SeleccionarPortada(*portada); err != nil {
			return rechazoImagen(c, "portada", err)
		}
	case formBool(c, "quitar_portada"):
		f.Portada.Quitar()
	}
	res, err := f.Guardar(ctx)
	return responderResultado(c, res, err)
}

// AlternarBlog godoc
// @Summary      Publicar u ocultar blog
// @Tags         blogs
// @Produce      json
// @Param        id   path  int  true  "ID del blog"
// @Success      200  {object}  ResultadoResponse[dto.CambioToggle]
// @Router       /api/blogs/{id}/toggle [put]
func (h *ContenidoHandler) AlternarBlog(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	r := h.blogs.Obtener(c.UserContext(), id)
	if !r.Success {
		return responder(c, r)
	}
	res, err := consola.ConfirmarToggle(h.blogs, consola.SujetoBlog, id, r.Data.Titulo, r.Data.Estado).Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// EliminarBlog godoc
// @Summary      Eliminar blog
// @Tags         blogs
// @Produce      json
// @Param        id   path  int  true  "ID del blog"
// @Success      200  {object}  ResultadoResponse[any]
// @Router       /api/blogs/{id} [delete]
func (h *ContenidoHandler) EliminarBlog(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	res, err := consola.ConfirmarEliminar(h.blogs, consola.SujetoBlog, id, c.Query("titulo")).Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}
