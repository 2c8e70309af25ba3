package consola

import (
	"context"
	"sync"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// PorPagina es el tamaño de página por defecto de los listados paginados.
const PorPagina = 10

// SinFiltros para las pantallas que siempre listan todo.
type SinFiltros struct{}

func ListadoProductos(api ports.ProductosAPI) *Listado[entity.Producto, dto.FiltrosProductos] {
	return NewListado(func(ctx context.Context, f dto.FiltrosProductos, p int) dto.Respuesta[dto.Pagina[entity.Producto]] {
		f.Page = p
		return api.Listar(ctx, f)
	}, dto.FiltrosProductos{PerPage: PorPagina}, "Error al cargar productos")
}

func ListadoCategorias(api ports.CategoriasAPI) *Listado[entity.Categoria, dto.FiltrosCategorias] {
	return NewListado(func(ctx context.Context, f dto.FiltrosCategorias, _ int) dto.Respuesta[dto.Pagina[entity.Categoria]] {
		return api.Listar(ctx, f)
	}, dto.FiltrosCategorias{}, "Error al cargar categorías")
}

func ListadoEtiquetas(api ports.EtiquetasAPI) *Listado[entity.Etiqueta, dto.FiltrosEtiquetas] {
	return NewListado(func(ctx context.Context, f dto.FiltrosEtiquetas, p int) dto.Respuesta[dto.Pagina[entity.Etiqueta]] {
		f.Page = p
		return api.Listar(ctx, f)
	}, dto.FiltrosEtiquetas{PerPage: PorPagina}, "Error al cargar etiquetas")
}

func ListadoBlogs(api ports.BlogsAPI) *Listado[entity.Blog, dto.FiltrosBlogs] {
	return NewListado(func(ctx context.Context, f dto.FiltrosBlogs, p int) dto.Respuesta[dto.Pagina[entity.Blog]] {
		f.Page = p
		return api.Listar(ctx, f)
	}, dto.FiltrosBlogs{PerPage: PorPagina}, "Error al cargar blogs")
}

func ListadoCarrusel(api ports.CarruselAPI) *Listado[entity.ItemCarrusel, dto.FiltrosCarrusel] {
	return NewListado(func(ctx context.Context, f dto.FiltrosCarrusel, _ int) dto.Respuesta[dto.Pagina[entity.ItemCarrusel]] {
		return api.Listar(ctx, f)
	}, dto.FiltrosCarrusel{}, "Error al cargar el carrusel")
}

func ListadoCyberWow(api ports.CyberWowAPI) *Listado[entity.BannerCyberWow, SinFiltros] {
	return NewListado(func(ctx context.Context, _ SinFiltros, _ int) dto.Respuesta[dto.Pagina[entity.BannerCyberWow]] {
		return api.Listar(ctx)
	}, SinFiltros{}, "Error al cargar banners")
}

func ListadoLiquidacion(api ports.LiquidacionAPI) *Listado[entity.Liquidacion, SinFiltros] {
	return NewListado(func(ctx context.Context, _ SinFiltros, _ int) dto.Respuesta[dto.Pagina[entity.Liquidacion]] {
		return api.Listar(ctx)
	}, SinFiltros{}, "Error al cargar liquidaciones")
}

func ListadoPedidos(api ports.PedidosAPI) *Listado[entity.Pedido, dto.FiltrosPedidos] {
	return NewListado(func(ctx context.Context, f dto.FiltrosPedidos, p int) dto.Respuesta[dto.Pagina[entity.Pedido]] {
		f.Page = p
		return api.Listar(ctx, f)
	}, dto.FiltrosPedidos{PerPage: PorPagina}, "Error al cargar pedidos")
}

func ListadoClientes(api ports.ClientesAPI) *Listado[entity.Cliente, dto.FiltrosClientes] {
	return NewListado(func(ctx context.Context, f dto.FiltrosClientes, p int) dto.Respuesta[dto.Pagina[entity.Cliente]] {
		f.Page = p
		return api.Listar(ctx, f)
	}, dto.FiltrosClientes{PerPage: PorPagina}, "Error al cargar clientes")
}

// ListadoReclamaciones conserva además las estadísticas del libro de la última carga.
type ListadoReclamaciones struct {
	*Listado[entity.Reclamacion, dto.FiltrosReclamaciones]

	mu           sync.Mutex
	estadisticas *entity.EstadisticasReclamaciones
}

func NewListadoReclamaciones(api ports.ReclamacionesAPI) *ListadoReclamaciones {
	l := &ListadoReclamaciones{}
	l.Listado = NewListado(func(ctx context.Context, f dto.FiltrosReclamaciones, p int) dto.Respuesta[dto.Pagina[entity.Reclamacion]] {
		f.Page = p
		r := api.Listar(ctx, f)
		out := dto.Respuesta[dto.Pagina[entity.Reclamacion]]{
			Success: r.Success, Message: r.Message, Errors: r.Errors, Status: r.Status,
			Data: r.Data.Pagina,
		}
		if r.Success && r.Data.Estadisticas != nil && ctx.Err() == nil {
			l.mu.Lock()
			l.estadisticas = r.Data.Estadisticas
			l.mu.Unlock()
		}
		return out
	}, dto.FiltrosReclamaciones{PerPage: PorPagina}, "Error al cargar reclamaciones")
	return l
}

func (l *ListadoReclamaciones) Estadisticas() *entity.EstadisticasReclamaciones {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.estadisticas
}
