package entity

import "github.com/shopspring/decimal"

// EstadoReclamacion del libro de reclamaciones.
type EstadoReclamacion string

const (
	ReclamacionPendiente EstadoReclamacion = "pendiente"
	ReclamacionEnProceso EstadoReclamacion = "en_proceso"
	ReclamacionResuelta  EstadoReclamacion = "resuelto"
)

// Valido indica si e es uno de los estados conocidos.
func (e EstadoReclamacion) Valido() bool {
	return e == ReclamacionPendiente || e == ReclamacionEnProceso || e == ReclamacionResuelta
}

// Tipos de reclamación.
const (
	TipoReclamo = "reclamo"
	TipoQueja   = "queja"
)

// Reclamacion es una entrada del libro de reclamaciones.
type Reclamacion struct {
	ID              int64             `json:"id"`
	NumeroReclamo   string            `json:"numero_reclamo"`
	TipoDocumento   string            `json:"tipo_documento"`
	NumeroDocumento string            `json:"numero_documento"`
	Nombres         string            `json:"nombres"`
	Apellidos       string            `json:"apellidos"`
	Telefono        string            `json:"telefono"`
	Email           string            `json:"email"`
	Direccion       string            `json:"direccion"`
	TipoBien        string            `json:"tipo_bien"`
	DescripcionBien string            `json:"descripcion_bien"`
	MontoReclamado  decimal.Decimal   `json:"monto_reclamado"`
	FechaIncidente  string            `json:"fecha_incidente"`
	TipoReclamo     string            `json:"tipo_reclamo"`
	DetalleReclamo  string            `json:"detalle_reclamo"`
	PedidoConcreto  string            `json:"pedido_concreto"`
	Estado          EstadoReclamacion `json:"estado"`
	CreatedAt       string            `json:"created_at,omitempty"`
	UpdatedAt       string            `json:"updated_at,omitempty"`
}

// NombreCompleto une nombres y apellidos.
func (r Reclamacion) NombreCompleto() string {
	if r.Apellidos == "" {
		return r.Nombres
	}
	return r.Nombres + " " + r.Apellidos
}

// EstadisticasReclamaciones acompaña al listado.
type EstadisticasReclamaciones struct {
	Total      int `json:"total"`
	Pendientes int `json:"pendientes"`
	EnProceso  int `json:"en_proceso"`
	Resueltas  int `json:"resueltas"`
	Reclamos   int `json:"reclamos"`
	Quejas     int `json:"quejas"`
}
