package ports

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// GeneradorComprobante produce el documento imprimible de un pedido (PDF).
type GeneradorComprobante interface {
	Generar(ctx context.Context, p entity.Pedido) ([]byte, error)
}
