package dto

import "github.com/jhoicas/tienda-admin/internal/domain/entity"

// CarruselRequest para crear o actualizar un ítem del carrusel (multipart).
// Orden nil no se envía. En edición ProductoID nil se envía vacío para desvincular.
type CarruselRequest struct {
	Orden                *int
	Estado               entity.Estado
	ProductoID           *int64
	Imagen               *Archivo
	ImagenMobile         *Archivo
	EliminarImagen       bool
	EliminarImagenMobile bool
}

// BannerCyberWowRequest para crear o actualizar un banner. Según Tipo se usa CategoriaID,
// ProductoID o Tiendas.
type BannerCyberWowRequest struct {
	Tipo        string
	Titulo      string
	Estado      entity.Estado
	Imagen      *Archivo
	CategoriaID *int64
	ProductoID  *int64
	Tiendas     []int64
}

// LiquidacionRequest para crear o actualizar un ítem de liquidación (multipart).
type LiquidacionRequest struct {
	ProductoID     int64
	Orden          int
	Imagen         *Archivo
	EliminarImagen bool
}

// SiguienteOrden de GET /admin/liquidacion/siguiente-orden.
type SiguienteOrden struct {
	Orden int `json:"orden"`
}

// ProductosLiquidacion forma cruda del listado de productos para liquidación.
type ProductosLiquidacion struct {
	Productos []entity.ProductoResumen `json:"productos"`
	Paginacion
}
