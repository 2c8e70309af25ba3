package adminapi

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var _ ports.ClientesAPI = (*Clientes)(nil)

const rutaClientes = "/admin/clientes"

type Clientes struct{ c *Client }

func NewClientes(c *Client) *Clientes { return &Clientes{c: c} }

func (s *Clientes) Listar(ctx context.Context, f dto.FiltrosClientes) dto.Respuesta[dto.Pagina[entity.Cliente]] {
	r := hacer[dto.ClientesPaginados](ctx, s.c, get(rutaClientes, f.Query()))
	return mapear(r, func(p dto.ClientesPaginados) dto.Pagina[entity.Cliente] {
		items := p.Clientes
		if items == nil {
			items = []entity.Cliente{}
		}
		return dto.Pagina[entity.Cliente]{Items: items, Paginacion: p.Pagination}
	})
}

func (s *Clientes) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Cliente] {
	return hacer[entity.Cliente](ctx, s.c, get(rutaClientes+ruta(id), nil))
}
