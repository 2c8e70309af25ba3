package entity

import "github.com/shopspring/decimal"

// EstadoPedido sigue el ciclo pendiente -> pagado -> enviado, o cancelado.
type EstadoPedido string

const (
	PedidoPendiente EstadoPedido = "pendiente"
	PedidoPagado    EstadoPedido = "pagado"
	PedidoEnviado   EstadoPedido = "enviado"
	PedidoCancelado EstadoPedido = "cancelado"
)

// EstadosPedido en el orden en que se muestran en la consola.
var EstadosPedido = []EstadoPedido{PedidoPendiente, PedidoPagado, PedidoEnviado, PedidoCancelado}

// Valido indica si e es uno de los estados conocidos.
func (e EstadoPedido) Valido() bool {
	for _, x := range EstadosPedido {
		if x == e {
			return true
		}
	}
	return false
}

var transicionesPedido = map[EstadoPedido][]EstadoPedido{
	PedidoPendiente: {PedidoPagado, PedidoCancelado},
	PedidoPagado:    {PedidoEnviado, PedidoCancelado},
}

// Transiciones devuelve los estados a los que puede pasar un pedido en estado e.
// Enviado y cancelado son finales.
func (e EstadoPedido) Transiciones() []EstadoPedido {
	return transicionesPedido[e]
}

func (e EstadoPedido) PuedePasarA(destino EstadoPedido) bool {
	for _, x := range transicionesPedido[e] {
		if x == destino {
			return true
		}
	}
	return false
}

// ClientePedido es el cliente tal como viene anidado en un pedido.
type ClientePedido struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	DNI      string `json:"dni"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Tipo     string `json:"tipo"`
}

// ItemPedido es una línea del pedido.
type ItemPedido struct {
	ID          int64           `json:"id"`
	Producto    ProductoPedido  `json:"producto"`
	Cantidad    int             `json:"cantidad"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ProductoPedido es la forma del producto dentro de un ítem de pedido.
type ProductoPedido struct {
	ID              int64  `json:"id"`
	Nombre          string `json:"nombre"`
	SKU             string `json:"sku"`
	ImagenPrincipal string `json:"imagen_principal,omitempty"`
}

// Pago registrado contra un pedido.
type Pago struct {
	ID            int64           `json:"id"`
	Monto         decimal.Decimal `json:"monto"`
	Moneda        string          `json:"moneda"`
	MetodoPago    string          `json:"metodo_pago"`
	EstadoPago    string          `json:"estado_pago"` // pendiente | aprobado | rechazado
	CulqiChargeID string          `json:"culqi_charge_id,omitempty"`
	FechaPago     string          `json:"fecha_pago"`
}

// Pedido de un cliente.
type Pedido struct {
	ID                  int64           `json:"id"`
	Cliente             ClientePedido   `json:"cliente"`
	Total               decimal.Decimal `json:"total"`
	DireccionEnvio      string          `json:"direccion_envio"`
	EstadoPedido        EstadoPedido    `json:"estado_pedido"`
	CantidadItems       int             `json:"cantidad_items"`
	FechaPedido         string          `json:"fecha_pedido"`
	UltimaActualizacion string          `json:"ultima_actualizacion"`
	TienePagoAprobado   bool            `json:"tiene_pago_aprobado"`
	MetodosPago         []string        `json:"metodos_pago"`
	Items               []ItemPedido    `json:"items,omitempty"`
	Pagos               []Pago          `json:"pagos,omitempty"`
}

// CambioEstadoPedido es la respuesta de PUT /admin/pedidos/{id}/estado.
type CambioEstadoPedido struct {
	ID                 int64  `json:"id"`
	EstadoAnterior     string `json:"estado_anterior"`
	EstadoActual       string `json:"estado_actual"`
	FechaActualizacion string `json:"fecha_actualizacion"`
}

// ResumenPedidos agrega pedidos de un periodo.
type ResumenPedidos struct {
	TotalPedidos   int             `json:"total_pedidos"`
	Pendientes     int             `json:"pendientes"`
	Pagados        int             `json:"pagados"`
	Enviados       int             `json:"enviados"`
	Cancelados     int             `json:"cancelados"`
	MontoTotal     decimal.Decimal `json:"monto_total"`
	MontoPromedio  decimal.Decimal `json:"monto_promedio"`
	ClientesUnicos int             `json:"clientes_unicos"`
}

// VentasDia es un punto de la serie diaria de ventas.
type VentasDia struct {
	Fecha           string          `json:"fecha"`
	CantidadPedidos int             `json:"cantidad_pedidos"`
	TotalVentas     decimal.Decimal `json:"total_ventas"`
}

// EstadisticasPedidos es la respuesta de /admin/pedidos/estadisticas.
type EstadisticasPedidos struct {
	Resumen      ResumenPedidos `json:"resumen"`
	VentasPorDia []VentasDia    `json:"ventas_por_dia"`
	Periodo      struct {
		FechaInicio string `json:"fecha_inicio"`
		FechaFin    string `json:"fecha_fin"`
	} `json:"periodo"`
}
