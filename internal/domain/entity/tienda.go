package entity

// Tienda (marca/proveedor) a la que pertenece un producto.
type Tienda struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
