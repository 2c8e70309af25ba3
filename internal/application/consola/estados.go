package consola

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// ErrSinCambios se devuelve al pedir el estado que la entidad ya tiene.
var ErrSinCambios = errors.New("el estado no cambia")

// EtiquetaEstadoPedido para selectores.
func EtiquetaEstadoPedido(e entity.EstadoPedido) string {
	switch e {
	case entity.PedidoPendiente:
		return "Pendiente"
	case entity.PedidoPagado:
		return "Pagado"
	case entity.PedidoEnviado:
		return "Enviado"
	case entity.PedidoCancelado:
		return "Cancelado"
	}
	return string(e)
}

// EtiquetaEstadoReclamacion para selectores.
func EtiquetaEstadoReclamacion(e entity.EstadoReclamacion) string {
	switch e {
	case entity.ReclamacionPendiente:
		return "Pendiente"
	case entity.ReclamacionEnProceso:
		return "En proceso"
	case entity.ReclamacionResuelta:
		return "Resuelto"
	}
	return string(e)
}

// ConfirmarEstadoPedido prepara el paso de p a destino. Solo se admiten las transiciones del
// flujo de pedidos; pedir el mismo estado devuelve ErrSinCambios.
func ConfirmarEstadoPedido(api ports.PedidosAPI, p entity.Pedido, destino entity.EstadoPedido) (*Confirmacion[entity.CambioEstadoPedido], error) {
	if p.EstadoPedido == destino {
		return nil, ErrSinCambios
	}
	if !p.EstadoPedido.PuedePasarA(destino) {
		return nil, fmt.Errorf("%w: un pedido %s no puede pasar a %s", domain.ErrValidacion, p.EstadoPedido, destino)
	}
	return NuevaConfirmacion(SujetoPedido, fmt.Sprintf("#%d", p.ID), string(destino),
		func(ctx context.Context) dto.Respuesta[entity.CambioEstadoPedido] {
			return api.CambiarEstado(ctx, p.ID, destino)
		}), nil
}

// ConfirmarEstadoReclamacion prepara el cambio de estado de una reclamación. Cualquier estado
// válido es alcanzable; pedir el actual devuelve ErrSinCambios.
func ConfirmarEstadoReclamacion(api ports.ReclamacionesAPI, r entity.Reclamacion, destino entity.EstadoReclamacion) (*Confirmacion[entity.Reclamacion], error) {
	if r.Estado == destino {
		return nil, ErrSinCambios
	}
	if !destino.Valido() {
		return nil, fmt.Errorf("%w: estado de reclamación %q", domain.ErrValidacion, destino)
	}
	return NuevaConfirmacion(SujetoReclamacion, r.NumeroReclamo, string(destino),
		func(ctx context.Context) dto.Respuesta[entity.Reclamacion] {
			return api.CambiarEstado(ctx, r.ID, destino)
		}), nil
}

// ConfirmarEstadoCarrusel alterna el estado de una diapositiva.
func ConfirmarEstadoCarrusel(api ports.CarruselAPI, it entity.ItemCarrusel) *Confirmacion[entity.ItemCarrusel] {
	return NuevaConfirmacion(SujetoCarrusel, "", string(it.Estado.Alternar()),
		func(ctx context.Context) dto.Respuesta[entity.ItemCarrusel] {
			return api.CambiarEstado(ctx, it.ID)
		})
}
