package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC *auth.UseCase
	Cookie CookieConfig

	Categorias    ports.CategoriasAPI
	Productos     ports.ProductosAPI
	Etiquetas     ports.EtiquetasAPI
	Blogs         ports.BlogsAPI
	Carrusel      ports.CarruselAPI
	CyberWow      ports.CyberWowAPI
	Liquidacion   ports.LiquidacionAPI
	Pedidos       ports.PedidosAPI
	Reclamaciones ports.ReclamacionesAPI
	Clientes      ports.ClientesAPI
	Dashboard     ports.DashboardAPI
	Tiendas       ports.TiendasAPI
	Comprobante   ports.GeneradorComprobante

	Log zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	sesion := SesionMiddleware(deps.Cookie.Secret, deps.Cookie.Nombre, deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", sesion, authHandler.Logout)
	api.Get("/auth/sesion", sesion, authHandler.Sesion)

	// Todo lo demás exige sesión de administrador. Las rutas de auth van antes: fiber resuelve
	// en orden de registro.
	protected := api.Group("/", sesion, RequireAdmin())

	catalogo := NewCatalogoHandler(deps.Categorias, deps.Productos)
	categorias := protected.Group("/categorias")
	categorias.Get("/", catalogo.ListarCategorias)
	categorias.Post("/", catalogo.GuardarCategoria)
	categorias.Get("/:id", catalogo.ObtenerCategoria)
	categorias.Put("/:id", catalogo.GuardarCategoria)
	categorias.Put("/:id/alternar", catalogo.AlternarCategoria)

	productos := protected.Group("/productos")
	productos.Get("/", catalogo.ListarProductos)
	productos.Post("/", catalogo.GuardarProducto)
	productos.Get("/:id", catalogo.ObtenerProducto)
	productos.Put("/:id", catalogo.GuardarProducto)
	productos.Put("/:id/alternar", catalogo.AlternarProducto)
	productos.Put("/:id/imagenes/mover", catalogo.MoverImagenProducto)
	productos.Put("/:id/imagenes/:img/principal", catalogo.ImagenPrincipal)
	productos.Put("/:id/imagenes/:img", catalogo.ActualizarImagen)
	productos.Delete("/:id/imagenes/:img", catalogo.EliminarImagen)

	contenido := NewContenidoHandler(deps.Etiquetas, deps.Blogs)
	etiquetas := protected.Group("/etiquetas")
	etiquetas.Get("/", contenido.ListarEtiquetas)
	etiquetas.Get("/activas", contenido.EtiquetasActivas)
	etiquetas.Post("/", contenido.GuardarEtiqueta)
	etiquetas.Get("/:id", contenido.ObtenerEtiqueta)
	etiquetas.Put("/:id", contenido.GuardarEtiqueta)
	etiquetas.Put("/:id/toggle", contenido.AlternarEtiqueta)
	etiquetas.Delete("/:id", contenido.EliminarEtiqueta)

	blogs := protected.Group("/blogs")
	blogs.Get("/", contenido.ListarBlogs)
	blogs.Post("/", contenido.GuardarBlog)
	blogs.Get("/:id", contenido.ObtenerBlog)
	blogs.Put("/:id", contenido.GuardarBlog)
	blogs.Put("/:id/toggle", contenido.AlternarBlog)
	blogs.Delete("/:id", contenido.EliminarBlog)

	promo := NewPromocionesHandler(deps.Carrusel, deps.CyberWow, deps.Liquidacion)
	carrusel := protected.Group("/carrusel")
	carrusel.Get("/", promo.ListarCarrusel)
	carrusel.Get("/productos-disponibles", promo.ProductosCarrusel)
	carrusel.Put("/mover", promo.MoverCarrusel)
	carrusel.Post("/", promo.GuardarCarrusel)
	carrusel.Put("/:id", promo.GuardarCarrusel)
	carrusel.Put("/:id/estado", promo.EstadoCarrusel)
	carrusel.Put("/:id/desvincular-producto", promo.DesvincularCarrusel)
	carrusel.Delete("/:id", promo.EliminarCarrusel)

	cyberwow := protected.Group("/cyberwow")
	cyberwow.Get("/", promo.ListarCyberWow)
	cyberwow.Get("/datos-auxiliares", promo.DatosCyberWow)
	cyberwow.Post("/banners/:tipo", promo.CrearCyberWow)
	cyberwow.Put("/banners/:id", promo.ActualizarCyberWow)
	cyberwow.Delete("/banners/:id", promo.EliminarCyberWow)

	liquidacion := protected.Group("/liquidacion")
	liquidacion.Get("/", promo.ListarLiquidacion)
	liquidacion.Get("/productos", promo.ProductosLiquidacion)
	liquidacion.Post("/", promo.GuardarLiquidacion)
	liquidacion.Put("/:id", promo.GuardarLiquidacion)
	liquidacion.Delete("/:id", promo.EliminarLiquidacion)

	ventas := NewVentasHandler(VentasDeps{
		Pedidos:       deps.Pedidos,
		Reclamaciones: deps.Reclamaciones,
		Clientes:      deps.Clientes,
		Dashboard:     deps.Dashboard,
		Tiendas:       deps.Tiendas,
		Comprobante:   deps.Comprobante,
		Log:           deps.Log,
	})
	protected.Get("/dashboard", ventas.Dashboard)
	protected.Get("/tiendas", ventas.Tiendas)

	pedidos := protected.Group("/pedidos")
	pedidos.Get("/", ventas.ListarPedidos)
	pedidos.Get("/estadisticas", ventas.EstadisticasPedidos)
	pedidos.Get("/:id", ventas.ObtenerPedido)
	pedidos.Put("/:id/estado", ventas.EstadoPedido)
	pedidos.Get("/:id/comprobante", ventas.Comprobante)

	reclamaciones := protected.Group("/reclamaciones")
	reclamaciones.Get("/", ventas.ListarReclamaciones)
	reclamaciones.Get("/:id", ventas.ObtenerReclamacion)
	reclamaciones.Put("/:id/estado", ventas.EstadoReclamacion)

	clientes := protected.Group("/clientes")
	clientes.Get("/", ventas.ListarClientes)
	clientes.Get("/:id", ventas.ObtenerCliente)
}
