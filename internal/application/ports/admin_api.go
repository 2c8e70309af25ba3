package ports

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// Puertos de salida hacia la API REST de la tienda. Cada adaptador (HTTP real, fake de pruebas)
// implementa estos contratos. Ningún método devuelve error: los fallos de red llegan como
// sobre con Success=false y un mensaje no vacío.

// AuthAPI login/logout contra /admin.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) dto.Respuesta[dto.LoginData]
	// Logout requiere el token en el contexto.
	Logout(ctx context.Context) dto.Respuesta[json.RawMessage]
}

// CategoriasAPI usa activar/desactivar separados.
type CategoriasAPI interface {
	Listar(ctx context.Context, f dto.FiltrosCategorias) dto.Respuesta[dto.Pagina[entity.Categoria]]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Categoria]
	Crear(ctx context.Context, in dto.CategoriaRequest) dto.Respuesta[entity.Categoria]
	Actualizar(ctx context.Context, id int64, in dto.CategoriaRequest) dto.Respuesta[entity.Categoria]
	Desactivar(ctx context.Context, id int64) dto.Respuesta[entity.Categoria]
	Activar(ctx context.Context, id int64) dto.Respuesta[entity.Categoria]
}

// ProductosAPI incluye la gestión de la galería de imágenes.
type ProductosAPI interface {
	Listar(ctx context.Context, f dto.FiltrosProductos) dto.Respuesta[dto.Pagina[entity.Producto]]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Producto]
	Crear(ctx context.Context, in dto.CrearProductoRequest) dto.Respuesta[entity.Producto]
	Actualizar(ctx context.Context, id int64, in dto.ActualizarProductoRequest) dto.Respuesta[entity.Producto]
	Desactivar(ctx context.Context, id int64) dto.Respuesta[entity.Producto]
	Activar(ctx context.Context, id int64) dto.Respuesta[entity.Producto]

	AgregarImagenes(ctx context.Context, id int64, in dto.AgregarImagenesRequest) dto.Respuesta[json.RawMessage]
	EliminarImagen(ctx context.Context, id, imagenID int64) dto.Respuesta[json.RawMessage]
	ReordenarImagenes(ctx context.Context, id int64, ordenes map[int64]int) dto.Respuesta[json.RawMessage]
	CambiarImagenPrincipal(ctx context.Context, id, imagenID int64) dto.Respuesta[entity.ProductoImagen]
	ActualizarImagen(ctx context.Context, id, imagenID int64, altText string) dto.Respuesta[entity.ProductoImagen]
}

// EtiquetasAPI usa un toggle único.
type EtiquetasAPI interface {
	Listar(ctx context.Context, f dto.FiltrosEtiquetas) dto.Respuesta[dto.Pagina[entity.Etiqueta]]
	Activas(ctx context.Context) dto.Respuesta[[]entity.Etiqueta]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Etiqueta]
	Crear(ctx context.Context, in dto.EtiquetaRequest) dto.Respuesta[entity.Etiqueta]
	Actualizar(ctx context.Context, id int64, in dto.EtiquetaRequest) dto.Respuesta[entity.Etiqueta]
	Toggle(ctx context.Context, id int64) dto.Respuesta[dto.CambioToggle]
	Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage]
}

// BlogsAPI usa un toggle único.
type BlogsAPI interface {
	Listar(ctx context.Context, f dto.FiltrosBlogs) dto.Respuesta[dto.Pagina[entity.Blog]]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Blog]
	Crear(ctx context.Context, in dto.BlogRequest) dto.Respuesta[entity.Blog]
	Actualizar(ctx context.Context, id int64, in dto.BlogRequest) dto.Respuesta[entity.Blog]
	Toggle(ctx context.Context, id int64) dto.Respuesta[dto.CambioToggle]
	Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage]
}

// CarruselAPI admite borrado real y reordenamiento.
type CarruselAPI interface {
	Listar(ctx context.Context, f dto.FiltrosCarrusel) dto.Respuesta[dto.Pagina[entity.ItemCarrusel]]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.ItemCarrusel]
	Crear(ctx context.Context, in dto.CarruselRequest) dto.Respuesta[entity.ItemCarrusel]
	Actualizar(ctx context.Context, id int64, in dto.CarruselRequest) dto.Respuesta[entity.ItemCarrusel]
	Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage]
	CambiarEstado(ctx context.Context, id int64) dto.Respuesta[entity.ItemCarrusel]
	Reordenar(ctx context.Context, items []entity.OrdenItem) dto.Respuesta[json.RawMessage]
	DesvincularProducto(ctx context.Context, id int64) dto.Respuesta[entity.ItemCarrusel]
	ProductosDisponibles(ctx context.Context) dto.Respuesta[[]entity.ProductoResumen]
}

// CyberWowAPI banners de campaña con cupos por tipo.
type CyberWowAPI interface {
	Listar(ctx context.Context) dto.Respuesta[dto.Pagina[entity.BannerCyberWow]]
	DatosAuxiliares(ctx context.Context) dto.Respuesta[entity.DatosAuxiliaresCyberWow]
	Crear(ctx context.Context, in dto.BannerCyberWowRequest) dto.Respuesta[entity.BannerCyberWow]
	Actualizar(ctx context.Context, id int64, in dto.BannerCyberWowRequest) dto.Respuesta[entity.BannerCyberWow]
	Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage]
}

// LiquidacionAPI admite borrado real.
type LiquidacionAPI interface {
	Listar(ctx context.Context) dto.Respuesta[dto.Pagina[entity.Liquidacion]]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Liquidacion]
	Crear(ctx context.Context, in dto.LiquidacionRequest) dto.Respuesta[entity.Liquidacion]
	Actualizar(ctx context.Context, id int64, in dto.LiquidacionRequest) dto.Respuesta[entity.Liquidacion]
	Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage]
	SiguienteOrden(ctx context.Context) dto.Respuesta[dto.SiguienteOrden]
	ProductosActivos(ctx context.Context) dto.Respuesta[[]entity.ProductoResumen]
}

// PedidosAPI solo lectura más cambio de estado.
type PedidosAPI interface {
	Listar(ctx context.Context, f dto.FiltrosPedidos) dto.Respuesta[dto.Pagina[entity.Pedido]]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Pedido]
	CambiarEstado(ctx context.Context, id int64, estado entity.EstadoPedido) dto.Respuesta[entity.CambioEstadoPedido]
	Estadisticas(ctx context.Context, fechaInicio, fechaFin string) dto.Respuesta[entity.EstadisticasPedidos]
}

// ReclamacionesAPI libro de reclamaciones.
type ReclamacionesAPI interface {
	Listar(ctx context.Context, f dto.FiltrosReclamaciones) dto.Respuesta[dto.PaginaReclamaciones]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Reclamacion]
	CambiarEstado(ctx context.Context, id int64, estado entity.EstadoReclamacion) dto.Respuesta[entity.Reclamacion]
}

// ClientesAPI solo lectura.
type ClientesAPI interface {
	Listar(ctx context.Context, f dto.FiltrosClientes) dto.Respuesta[dto.Pagina[entity.Cliente]]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Cliente]
}

// DashboardAPI contadores de inicio.
type DashboardAPI interface {
	Estadisticas(ctx context.Context) dto.Respuesta[entity.DashboardStats]
}

// TiendasAPI catálogo de tiendas para selectores.
type TiendasAPI interface {
	Listar(ctx context.Context) dto.Respuesta[[]entity.Tienda]
	Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Tienda]
}
