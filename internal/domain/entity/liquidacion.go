package entity

// Liquidacion es un producto destacado en la sección de liquidación.
type Liquidacion struct {
	ID         int64            `json:"id"`
	ProductoID int64            `json:"producto_id"`
	Imagen     string           `json:"imagen"`
	ImagenURL  string           `json:"imagen_url"`
	Orden      int              `json:"orden"`
	CreatedAt  string           `json:"created_at,omitempty"`
	UpdatedAt  string           `json:"updated_at,omitempty"`
	Producto   *ProductoResumen `json:"producto,omitempty"`
}

// MaxLiquidaciones es el máximo de ítems en la sección de liquidación.
const MaxLiquidaciones = 6
