package adminapi

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var (
	_ ports.DashboardAPI = (*Dashboard)(nil)
	_ ports.TiendasAPI   = (*Tiendas)(nil)
)

type Dashboard struct{ c *Client }

func NewDashboard(c *Client) *Dashboard { return &Dashboard{c: c} }

func (s *Dashboard) Estadisticas(ctx context.Context) dto.Respuesta[entity.DashboardStats] {
	return hacer[entity.DashboardStats](ctx, s.c, get("/admin/dashboard", nil))
}

const rutaTiendas = "/admin/tiendas"

// Tiendas catálogo de tiendas; solo alimenta selectores.
type Tiendas struct{ c *Client }

func NewTiendas(c *Client) *Tiendas { return &Tiendas{c: c} }

func (s *Tiendas) Listar(ctx context.Context) dto.Respuesta[[]entity.Tienda] {
	r := hacer[[]entity.Tienda](ctx, s.c, get(rutaTiendas, nil))
	if r.Success && r.Data == nil {
		r.Data = []entity.Tienda{}
	}
	return r
}

func (s *Tiendas) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Tienda] {
	return hacer[entity.Tienda](ctx, s.c, get(rutaTiendas+ruta(id), nil))
}
