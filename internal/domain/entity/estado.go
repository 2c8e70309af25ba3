package entity

// Estado binario de las entidades del catálogo.
type Estado string

const (
	EstadoActivo   Estado = "activo"
	EstadoInactivo Estado = "inactivo"
)

// Alternar devuelve el estado opuesto. Alternar(Alternar(e)) == e para estados válidos.
func (e Estado) Alternar() Estado {
	if e == EstadoActivo {
		return EstadoInactivo
	}
	return EstadoActivo
}

// Valido indica si e es activo o inactivo.
func (e Estado) Valido() bool {
	return e == EstadoActivo || e == EstadoInactivo
}

// Referencia es la forma mínima {id, nombre} con la que el backend anida relaciones.
type Referencia struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
