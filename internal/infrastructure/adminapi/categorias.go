package adminapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var _ ports.CategoriasAPI = (*Categorias)(nil)

const rutaCategorias = "/admin/categorias"

// Categorias adaptador de /admin/categorias. El listado no está paginado.
type Categorias struct{ c *Client }

func NewCategorias(c *Client) *Categorias { return &Categorias{c: c} }

func (s *Categorias) Listar(ctx context.Context, f dto.FiltrosCategorias) dto.Respuesta[dto.Pagina[entity.Categoria]] {
	r := hacer[[]entity.Categoria](ctx, s.c, get(rutaCategorias, f.Query()))
	return mapear(r, dto.PaginaUnica[entity.Categoria])
}

func (s *Categorias) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Categoria] {
	return hacer[entity.Categoria](ctx, s.c, get(rutaCategorias+ruta(id), nil))
}

func (s *Categorias) Crear(ctx context.Context, in dto.CategoriaRequest) dto.Respuesta[entity.Categoria] {
	f := nuevoFormulario()
	f.campo("nombre", in.Nombre)
	f.campo("estado", string(estadoODefecto(in.Estado)))
	f.id("parent_id", in.ParentID)
	f.archivo("imagen", in.Imagen)
	return hacer[entity.Categoria](ctx, s.c, conFormulario(http.MethodPost, rutaCategorias, f))
}

// Actualizar envía POST con _method=PUT; eliminar_imagen=1 solo si se pidió y no hay imagen nueva.
func (s *Categorias) Actualizar(ctx context.Context, id int64, in dto.CategoriaRequest) dto.Respuesta[entity.Categoria] {
	f := nuevoFormulario()
	f.metodoPUT()
	f.campo("nombre", in.Nombre)
	f.opcional("estado", string(in.Estado))
	f.id("parent_id", in.ParentID)
	if in.Imagen != nil {
		f.archivo("imagen", in.Imagen)
	} else {
		f.bandera("eliminar_imagen", in.EliminarImagen)
	}
	return hacer[entity.Categoria](ctx, s.c, conFormulario(http.MethodPost, rutaCategorias+ruta(id), f))
}

// Desactivar es el borrado lógico: el backend pasa la categoría a inactivo.
func (s *Categorias) Desactivar(ctx context.Context, id int64) dto.Respuesta[entity.Categoria] {
	return hacer[entity.Categoria](ctx, s.c, borrar(rutaCategorias+ruta(id)))
}

func (s *Categorias) Activar(ctx context.Context, id int64) dto.Respuesta[entity.Categoria] {
	return hacer[entity.Categoria](ctx, s.c, conJSON(http.MethodPut, rutaCategorias+ruta(id, "activar"), nil))
}

func estadoODefecto(e entity.Estado) entity.Estado {
	if e == "" {
		return entity.EstadoActivo
	}
	return e
}
