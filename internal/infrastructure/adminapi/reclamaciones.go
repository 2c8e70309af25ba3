package adminapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var _ ports.ReclamacionesAPI = (*Reclamaciones)(nil)

const rutaReclamaciones = "/admin/reclamaciones"

// Reclamaciones adaptador del libro de reclamaciones. data trae un paginador Laravel y las
// estadísticas llegan al mismo nivel que data.
type Reclamaciones struct{ c *Client }

func NewReclamaciones(c *Client) *Reclamaciones { return &Reclamaciones{c: c} }

func (s *Reclamaciones) Listar(ctx context.Context, f dto.FiltrosReclamaciones) dto.Respuesta[dto.PaginaReclamaciones] {
	r, body := hacerCrudo[dto.PaginadorReclamaciones](ctx, s.c, get(rutaReclamaciones, f.Query()))
	var extra struct {
		Estadisticas *entity.EstadisticasReclamaciones `json:"estadisticas"`
	}
	if r.Success && len(body) > 0 {
		if err := json.Unmarshal(body, &extra); err != nil {
			s.c.log.Warn().Err(err).Msg("reclamaciones: estadísticas ilegibles")
		}
	}
	return mapear(r, func(p dto.PaginadorReclamaciones) dto.PaginaReclamaciones {
		items := p.Data
		if items == nil {
			items = []entity.Reclamacion{}
		}
		return dto.PaginaReclamaciones{
			Pagina:       dto.Pagina[entity.Reclamacion]{Items: items, Paginacion: p.Paginacion},
			Estadisticas: extra.Estadisticas,
		}
	})
}

func (s *Reclamaciones) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Reclamacion] {
	return hacer[entity.Reclamacion](ctx, s.c, get(rutaReclamaciones+ruta(id), nil))
}

func (s *Reclamaciones) CambiarEstado(ctx context.Context, id int64, estado entity.EstadoReclamacion) dto.Respuesta[entity.Reclamacion] {
	if !estado.Valido() {
		return dto.Fallo[entity.Reclamacion]("Estado de reclamación inválido")
	}
	cuerpo := map[string]string{"estado": string(estado)}
	return hacer[entity.Reclamacion](ctx, s.c, conJSON(http.MethodPut, rutaReclamaciones+ruta(id, "estado"), cuerpo))
}
