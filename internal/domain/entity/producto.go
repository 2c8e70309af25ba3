package entity

import "github.com/shopspring/decimal"

// ImagenPorDefecto se muestra cuando un producto no tiene imágenes.
const ImagenPorDefecto = "/assets/images/no-image.png"

// MaxImagenesProducto es el máximo de imágenes activas por producto.
const MaxImagenesProducto = 10

// ProductoImagen es una de las imágenes de la galería de un producto.
type ProductoImagen struct {
	ID          int64  `json:"id"`
	ProductoID  int64  `json:"producto_id"`
	Imagen      string `json:"imagen"`
	ImagenURL   string `json:"imagen_url"`
	Orden       int    `json:"orden"`
	EsPrincipal bool   `json:"es_principal"`
	AltText     string `json:"alt_text"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Producto del catálogo. Precio y descuento se manejan con decimal para evitar errores de redondeo.
type Producto struct {
	ID            int64            `json:"id"`
	Nombre        string           `json:"nombre"`
	SKU           string           `json:"sku,omitempty"`
	Descripcion   string           `json:"descripcion"`
	CategoriaID   *int64           `json:"categoria_id,omitempty"`
	TiendaID      *int64           `json:"tienda_id,omitempty"`
	EtiquetaID    *int64           `json:"etiqueta_id,omitempty"`
	Precio        decimal.Decimal  `json:"precio"`
	PrecioDespues *decimal.Decimal `json:"precio_despues,omitempty"`
	Descuento     decimal.Decimal  `json:"descuento"`
	Beneficios    string           `json:"beneficios,omitempty"`
	ModoUso       string           `json:"modo_uso,omitempty"`
	Detalle       string           `json:"detalle,omitempty"`
	Stock         int              `json:"stock"`
	EsPack        bool             `json:"es_pack"`
	Estado        Estado           `json:"estado"`
	CreatedAt     string           `json:"created_at,omitempty"`
	UpdatedAt     string           `json:"updated_at,omitempty"`

	Imagenes           []ProductoImagen `json:"imagenes,omitempty"`
	ImagenPrincipalURL string           `json:"imagen_principal_url,omitempty"`
	TotalImagenes      int              `json:"total_imagenes,omitempty"`
	ImagenPrincipal    *ProductoImagen  `json:"imagen_principal,omitempty"`

	Categoria *Referencia `json:"categoria,omitempty"`
	Tienda    *Referencia `json:"tienda,omitempty"`
	Etiqueta  *Referencia `json:"etiqueta,omitempty"`
}

// ImagenURL resuelve la imagen a mostrar: la URL principal calculada por el backend, si no la ruta
// de la imagen principal bajo apiURL, y por último la imagen por defecto.
func (p Producto) ImagenURL(apiURL string) string {
	if p.ImagenPrincipalURL != "" {
		return p.ImagenPrincipalURL
	}
	if p.ImagenPrincipal != nil && p.ImagenPrincipal.Imagen != "" {
		return apiURL + "/" + p.ImagenPrincipal.Imagen
	}
	return ImagenPorDefecto
}

// ProductoResumen es la forma reducida usada por carrusel, liquidación y cyberwow.
type ProductoResumen struct {
	ID        int64           `json:"id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Estado    string          `json:"estado,omitempty"`
	Stock     int             `json:"stock,omitempty"`
	ImagenURL string          `json:"imagen_url,omitempty"`
}
