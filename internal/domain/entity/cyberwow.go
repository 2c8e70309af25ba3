package entity

// Tipos de banner CyberWow y cupos máximos por tipo.
const (
	BannerCategoria = "categoria"
	BannerTiendas   = "tiendas"
	BannerProducto  = "producto"

	MaxBannersProducto = 4
)

// BannerCyberWow es un banner de la campaña CyberWow. Según Tipo enlaza una categoría,
// un producto o un conjunto de tiendas.
type BannerCyberWow struct {
	ID          int64            `json:"id"`
	Titulo      string           `json:"titulo"`
	Imagen      string           `json:"imagen"`
	ImagenURL   string           `json:"imagen_url"`
	CategoriaID *int64           `json:"categoria_id,omitempty"`
	ProductoID  *int64           `json:"producto_id,omitempty"`
	Orden       int              `json:"orden"`
	Estado      Estado           `json:"estado"`
	Tipo        string           `json:"tipo,omitempty"`
	CreatedAt   string           `json:"created_at,omitempty"`
	UpdatedAt   string           `json:"updated_at,omitempty"`
	Categoria   *Referencia      `json:"categoria,omitempty"`
	Producto    *ProductoResumen `json:"producto,omitempty"`
	Tiendas     []Referencia     `json:"tiendas,omitempty"`
}

// EspaciosCyberWow indica qué cupos siguen libres.
type EspaciosCyberWow struct {
	Categoria bool `json:"categoria"`
	Tiendas   bool `json:"tiendas"`
	Productos int  `json:"productos"`
}

// Disponible indica si queda cupo para un banner del tipo dado.
func (e EspaciosCyberWow) Disponible(tipo string) bool {
	switch tipo {
	case BannerCategoria:
		return e.Categoria
	case BannerTiendas:
		return e.Tiendas
	case BannerProducto:
		return e.Productos > 0
	}
	return false
}

// DatosAuxiliaresCyberWow son las opciones para armar banners.
type DatosAuxiliaresCyberWow struct {
	Categorias          []Referencia      `json:"categorias"`
	Tiendas             []Referencia      `json:"tiendas"`
	Productos           []ProductoResumen `json:"productos"`
	EspaciosDisponibles EspaciosCyberWow  `json:"espacios_disponibles"`
}
