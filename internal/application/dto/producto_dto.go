package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// CrearProductoRequest se envía en multipart junto con las imágenes nuevas.
type CrearProductoRequest struct {
	Nombre      string
	SKU         string
	Descripcion string
	CategoriaID *int64
	TiendaID    *int64
	Precio      decimal.Decimal
	Descuento   decimal.Decimal
	Stock       int
	Estado      entity.Estado
	Beneficios  string
	ModoUso     string
	Detalle     string

	Imagenes []Archivo
	// ImagenPrincipalIndex apunta dentro de Imagenes; solo se envía si hay imágenes.
	ImagenPrincipalIndex int
}

// ActualizarProductoRequest es el cuerpo JSON de PUT /admin/productos/{id}.
// Los opcionales vacíos no se envían.
type ActualizarProductoRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Descuento   decimal.Decimal `json:"descuento"`
	Stock       int             `json:"stock"`
	Estado      entity.Estado   `json:"estado"`
	SKU         string          `json:"sku,omitempty"`
	CategoriaID *int64          `json:"categoria_id,omitempty"`
	TiendaID    *int64          `json:"tienda_id,omitempty"`
	Beneficios  string          `json:"beneficios,omitempty"`
	ModoUso     string          `json:"modo_uso,omitempty"`
	Detalle     string          `json:"detalle,omitempty"`
}

// AgregarImagenesRequest de POST /admin/productos/{id}/imagenes.
// ImagenPrincipalIndex nil significa que el backend conserva la principal actual.
type AgregarImagenesRequest struct {
	Imagenes             []Archivo
	ImagenPrincipalIndex *int
}

// ProductosPaginados es la forma cruda del listado de productos.
type ProductosPaginados struct {
	Productos  []entity.Producto `json:"productos"`
	Pagination Paginacion        `json:"pagination"`
}
