// Package pdf genera el comprobante imprimible de un pedido con maroto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda               │  N° Pedido + Fecha + Estado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + DNI / contacto + dirección de envío       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | SKU | P.Unit | Subtotal            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGOS: método / estado / monto          TOTAL               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia del pedido                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/pkg/moneda"
)

var _ ports.GeneradorComprobante = (*Comprobante)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimario = &props.Color{Red: 34, Green: 94, Blue: 60}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generador ─────────────────────────────────────────────────────────────────

// Comprobante arma el PDF de un pedido con el nombre de la tienda en la cabecera.
type Comprobante struct {
	tienda string
}

func NewComprobante(tienda string) *Comprobante { return &Comprobante{tienda: tienda} }

// Generar devuelve los bytes del PDF. El pedido debe venir del detalle (con items y pagos).
func (g *Comprobante) Generar(_ context.Context, p entity.Pedido) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Pedido #%d", p.ID), true).
		WithAuthor(g.tienda, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.cabecera(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(cliente(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(encabezadoItems())
	m.AddRows(filasItems(p.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(pagosYTotal(p))
	m.AddRows(line.NewRow(3))
	m.AddRows(pie(p))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *Comprobante) cabecera(p entity.Pedido) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.tienda, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1}),
			text.New("Comprobante de pedido", props.Text{Size: 9, Top: 9, Color: colorGris}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("PEDIDO #%d", p.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha(p.FechaPedido), props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGris}),
			text.New("Estado: "+strings.ToUpper(string(p.EstadoPedido)), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 13, Color: colorPrimario,
			}),
		),
	)
}

func cliente(p entity.Pedido) core.Row {
	c := p.Cliente
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1}),
			text.New(c.Nombre, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("DNI: %s   |   Email: %s   |   Tel: %s",
				noVacio(c.DNI), noVacio(c.Email), noVacio(c.Telefono),
			), props.Text{Size: 8, Top: 11, Color: colorGris}),
			text.New("Envío: "+noVacio(p.DireccionEnvio), props.Text{Size: 8, Top: 15, Color: colorGris}),
		),
	)
}

func encabezadoItems() core.Row {
	h := func(s string, ancho int, a align.Type) core.Col {
		return col.New(ancho).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("SKU", 2, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func filasItems(items []entity.ItemPedido) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin productos", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGris}),
		))}
	}
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		out = append(out, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Cantidad), celda(align.Center))),
			col.New(5).Add(text.New(it.Producto.Nombre, celda(align.Left))),
			col.New(2).Add(text.New(noVacio(it.Producto.SKU), celda(align.Left))),
			col.New(2).Add(text.New(moneda.Formatear(it.PrecioVenta), celda(align.Right))),
			col.New(2).Add(text.New(moneda.Formatear(it.Subtotal), celda(align.Right))),
		))
	}
	return out
}

func pagosYTotal(p entity.Pedido) core.Row {
	pagos := make([]core.Component, 0, len(p.Pagos)+1)
	pagos = append(pagos, text.New("PAGOS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1}))
	if len(p.Pagos) == 0 {
		pagos = append(pagos, text.New("Sin pagos registrados", props.Text{Size: 8, Top: 6, Color: colorGris}))
	}
	for i, pg := range p.Pagos {
		pagos = append(pagos, text.New(fmt.Sprintf("%s · %s · %s", pg.MetodoPago, pg.EstadoPago, moneda.Formatear(pg.Monto)),
			props.Text{Size: 8, Top: float64(6 + 4*i), Color: colorGris}))
	}
	alto := float64(14 + 4*len(p.Pagos))
	return row.New(alto).Add(
		col.New(7).Add(pagos...),
		col.New(5).Add(
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Left, Color: colorPrimario, Top: 1}),
			text.New(moneda.Formatear(p.Total), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimario, Top: 1,
			}),
		),
	)
}

func pie(p entity.Pedido) core.Row {
	ref := fmt.Sprintf("PEDIDO-%d", p.ID)
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Referencia: "+ref, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6, Left: 3}),
			text.New("Presente este comprobante al recoger o consultar su pedido.", props.Text{
				Size: 8, Top: 14, Left: 3, Color: colorGris,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func celda(a align.Type) props.Text {
	return props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}
}

func noVacio(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// fecha recorta un timestamp ISO a su parte de fecha.
func fecha(iso string) string {
	if d, _, ok := strings.Cut(iso, "T"); ok {
		return d
	}
	if d, _, ok := strings.Cut(iso, " "); ok {
		return d
	}
	return noVacio(iso)
}
