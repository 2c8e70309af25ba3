package adminapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var _ ports.PedidosAPI = (*Pedidos)(nil)

const rutaPedidos = "/admin/pedidos"

// Pedidos adaptador de /admin/pedidos. La paginación llega fuera de data.
type Pedidos struct{ c *Client }

func NewPedidos(c *Client) *Pedidos { return &Pedidos{c: c} }

func (s *Pedidos) Listar(ctx context.Context, f dto.FiltrosPedidos) dto.Respuesta[dto.Pagina[entity.Pedido]] {
	r, body := hacerCrudo[[]entity.Pedido](ctx, s.c, get(rutaPedidos, f.Query()))
	if !r.Success {
		return mapear(r, dto.PaginaUnica[entity.Pedido])
	}
	var extra struct {
		Pagination *dto.Paginacion `json:"pagination"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &extra); err != nil {
			s.c.log.Warn().Err(err).Msg("pedidos: paginación ilegible")
		}
	}
	if extra.Pagination == nil {
		return mapear(r, dto.PaginaUnica[entity.Pedido])
	}
	return mapear(r, func(items []entity.Pedido) dto.Pagina[entity.Pedido] {
		if items == nil {
			items = []entity.Pedido{}
		}
		return dto.Pagina[entity.Pedido]{Items: items, Paginacion: *extra.Pagination}
	})
}

func (s *Pedidos) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Pedido] {
	return hacer[entity.Pedido](ctx, s.c, get(rutaPedidos+ruta(id), nil))
}

func (s *Pedidos) CambiarEstado(ctx context.Context, id int64, estado entity.EstadoPedido) dto.Respuesta[entity.CambioEstadoPedido] {
	if !estado.Valido() {
		return dto.Fallo[entity.CambioEstadoPedido]("Estado de pedido inválido")
	}
	cuerpo := map[string]string{"estado_pedido": string(estado)}
	return hacer[entity.CambioEstadoPedido](ctx, s.c, conJSON(http.MethodPut, rutaPedidos+ruta(id, "estado"), cuerpo))
}

// Estadisticas acepta fechas YYYY-MM-DD; vacías dejan que el backend elija el periodo.
func (s *Pedidos) Estadisticas(ctx context.Context, fechaInicio, fechaFin string) dto.Respuesta[entity.EstadisticasPedidos] {
	q := url.Values{}
	if v := strings.TrimSpace(fechaInicio); v != "" {
		q.Set("fecha_inicio", v)
	}
	if v := strings.TrimSpace(fechaFin); v != "" {
		q.Set("fecha_fin", v)
	}
	return hacer[entity.EstadisticasPedidos](ctx, s.c, get(rutaPedidos+"/estadisticas", q))
}
