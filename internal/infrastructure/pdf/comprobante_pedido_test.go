package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/pdf"
)

func pedidoDePrueba() entity.Pedido {
	return entity.Pedido{
		ID:             1024,
		Cliente:        entity.ClientePedido{Nombre: "Ana Torres", DNI: "45678912", Email: "ana@correo.pe"},
		Total:          decimal.RequireFromString("259.80"),
		DireccionEnvio: "Av. Arequipa 123, Lima",
		EstadoPedido:   entity.PedidoPagado,
		FechaPedido:    "2026-09-30T14:22:00Z",
		Items: []entity.ItemPedido{
			{
				Producto:    entity.ProductoPedido{Nombre: "Colágeno hidrolizado", SKU: "COL-500"},
				Cantidad:    2,
				PrecioVenta: decimal.RequireFromString("99.90"),
				Subtotal:    decimal.RequireFromString("199.80"),
			},
			{
				Producto:    entity.ProductoPedido{Nombre: "Vitamina C 1000mg"},
				Cantidad:    1,
				PrecioVenta: decimal.RequireFromString("60"),
				Subtotal:    decimal.RequireFromString("60"),
			},
		},
		Pagos: []entity.Pago{
			{Monto: decimal.RequireFromString("259.80"), Moneda: "PEN", MetodoPago: "tarjeta", EstadoPago: "aprobado"},
		},
	}
}

func TestGenerar_DevuelvePDF(t *testing.T) {
	out, err := pdf.NewComprobante("Tienda Natural").Generar(context.Background(), pedidoDePrueba())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerar_PedidoSinItemsNiPagos(t *testing.T) {
	p := pedidoDePrueba()
	p.Items, p.Pagos = nil, nil
	p.Cliente = entity.ClientePedido{Nombre: "Sin datos"}

	out, err := pdf.NewComprobante("Tienda").Generar(context.Background(), p)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
