package adminapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var _ ports.BlogsAPI = (*Blogs)(nil)

const rutaBlogs = "/admin/blogs"

// Blogs adaptador de /admin/blogs.
type Blogs struct{ c *Client }

func NewBlogs(c *Client) *Blogs { return &Blogs{c: c} }

func (s *Blogs) Listar(ctx context.Context, f dto.FiltrosBlogs) dto.Respuesta[dto.Pagina[entity.Blog]] {
	r := hacer[dto.BlogsPaginados](ctx, s.c, get(rutaBlogs, f.Query()))
	return mapear(r, func(p dto.BlogsPaginados) dto.Pagina[entity.Blog] {
		if p.Pagination == nil {
			return dto.PaginaUnica(p.Blogs)
		}
		if p.Blogs == nil {
			p.Blogs = []entity.Blog{}
		}
		return dto.Pagina[entity.Blog]{Items: p.Blogs, Paginacion: *p.Pagination}
	})
}

func (s *Blogs) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Blog] {
	return hacer[entity.Blog](ctx, s.c, get(rutaBlogs+ruta(id), nil))
}

func (s *Blogs) Crear(ctx context.Context, in dto.BlogRequest) dto.Respuesta[entity.Blog] {
	f := s.formulario(in)
	f.archivo("portada", in.Portada)
	return hacer[entity.Blog](ctx, s.c, conFormulario(http.MethodPost, rutaBlogs, f))
}

func (s *Blogs) Actualizar(ctx context.Context, id int64, in dto.BlogRequest) dto.Respuesta[entity.Blog] {
	f := s.formulario(in)
	f.metodoPUT()
	f.archivo("portada", in.Portada)
	f.campo("eliminar_portada", strconv.FormatBool(in.EliminarPortada && in.Portada == nil))
	return hacer[entity.Blog](ctx, s.c, conFormulario(http.MethodPost, rutaBlogs+ruta(id), f))
}

func (s *Blogs) formulario(in dto.BlogRequest) *formulario {
	f := nuevoFormulario()
	f.campo("titulo", in.Titulo)
	f.campo("blog_slug", in.Slug)
	f.opcional("meta_title", in.MetaTitle)
	f.opcional("meta_description", in.MetaDescription)
	f.opcional("resumen", in.Resumen)
	if len(in.ContenidoFlexible) > 0 {
		f.campo("contenido_flexible", string(in.ContenidoFlexible))
	}
	return f
}

func (s *Blogs) Toggle(ctx context.Context, id int64) dto.Respuesta[dto.CambioToggle] {
	return hacer[dto.CambioToggle](ctx, s.c, conJSON(http.MethodPut, rutaBlogs+ruta(id, "toggle"), nil))
}

func (s *Blogs) Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage] {
	return hacer[json.RawMessage](ctx, s.c, borrar(rutaBlogs+ruta(id)))
}
