package entity

import "github.com/shopspring/decimal"

// ItemCarrusel es una diapositiva del carrusel de portada, opcionalmente enlazada a un producto.
type ItemCarrusel struct {
	ID              int64            `json:"id"`
	Imagen          string           `json:"imagen"`
	ImagenURL       string           `json:"imagen_url"`
	ImagenMobile    string           `json:"imagen_mobile,omitempty"`
	ImagenMobileURL string           `json:"imagen_mobile_url,omitempty"`
	ProductoID      *int64           `json:"producto_id,omitempty"`
	ProductoNombre  string           `json:"producto_nombre,omitempty"`
	ProductoPrecio  *decimal.Decimal `json:"producto_precio,omitempty"`
	Orden           int              `json:"orden"`
	Estado          Estado           `json:"estado"`
	CreatedAt       string           `json:"created_at,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
	Producto        *ProductoResumen `json:"producto,omitempty"`
}

// OrdenItem es el par {id, orden} que espera el endpoint de reordenamiento.
type OrdenItem struct {
	ID    int64 `json:"id"`
	Orden int   `json:"orden"`
}
