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

var _ ports.EtiquetasAPI = (*Etiquetas)(nil)

const rutaEtiquetas = "/admin/etiquetas"

// Etiquetas adaptador de /admin/etiquetas.
type Etiquetas struct{ c *Client }

func NewEtiquetas(c *Client) *Etiquetas { return &Etiquetas{c: c} }

func (s *Etiquetas) Listar(ctx context.Context, f dto.FiltrosEtiquetas) dto.Respuesta[dto.Pagina[entity.Etiqueta]] {
	r := hacer[dto.EtiquetasPaginadas](ctx, s.c, get(rutaEtiquetas, f.Query()))
	return mapear(r, func(p dto.EtiquetasPaginadas) dto.Pagina[entity.Etiqueta] {
		if p.Etiquetas == nil {
			p.Etiquetas = []entity.Etiqueta{}
		}
		return dto.Pagina[entity.Etiqueta]{Items: p.Etiquetas, Paginacion: p.Pagination}
	})
}

// Activas devuelve hasta 100 etiquetas activas para selectores.
func (s *Etiquetas) Activas(ctx context.Context) dto.Respuesta[[]entity.Etiqueta] {
	r := s.Listar(ctx, dto.FiltrosEtiquetas{Estado: string(entity.EstadoActivo), PerPage: 100})
	return mapear(r, func(p dto.Pagina[entity.Etiqueta]) []entity.Etiqueta { return p.Items })
}

func (s *Etiquetas) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Etiqueta] {
	return hacer[entity.Etiqueta](ctx, s.c, get(rutaEtiquetas+ruta(id), nil))
}

func (s *Etiquetas) Crear(ctx context.Context, in dto.EtiquetaRequest) dto.Respuesta[entity.Etiqueta] {
	f := nuevoFormulario()
	f.campo("nombre", in.Nombre)
	f.campo("etiqueta_slug", in.Slug)
	f.campo("estado", string(estadoODefecto(in.Estado)))
	f.archivo("imagen", in.Imagen)
	return hacer[entity.Etiqueta](ctx, s.c, conFormulario(http.MethodPost, rutaEtiquetas, f))
}

// Actualizar envía eliminar_imagen como "true"/"false", formato que espera este endpoint.
func (s *Etiquetas) Actualizar(ctx context.Context, id int64, in dto.EtiquetaRequest) dto.Respuesta[entity.Etiqueta] {
	f := nuevoFormulario()
	f.metodoPUT()
	f.opcional("nombre", in.Nombre)
	f.opcional("etiqueta_slug", in.Slug)
	f.opcional("estado", string(in.Estado))
	f.archivo("imagen", in.Imagen)
	f.campo("eliminar_imagen", strconv.FormatBool(in.EliminarImagen && in.Imagen == nil))
	return hacer[entity.Etiqueta](ctx, s.c, conFormulario(http.MethodPost, rutaEtiquetas+ruta(id), f))
}

func (s *Etiquetas) Toggle(ctx context.Context, id int64) dto.Respuesta[dto.CambioToggle] {
	return hacer[dto.CambioToggle](ctx, s.c, conJSON(http.MethodPut, rutaEtiquetas+ruta(id, "toggle"), nil))
}

func (s *Etiquetas) Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage] {
	return hacer[json.RawMessage](ctx, s.c, borrar(rutaEtiquetas+ruta(id)))
}
