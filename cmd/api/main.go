package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/pflag"

	"github.com/jhoicas/tienda-admin/docs"
	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/adminapi"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/almacen"
	infrapdf "github.com/jhoicas/tienda-admin/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/tienda-admin/internal/interfaces/http"
	"github.com/jhoicas/tienda-admin/pkg/config"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

// @title						Tienda Admin API
// @version					1.0
// @description				BFF de la consola de administración de la tienda.
// @BasePath					/
// @securityDefinitions.apikey	Sesion
// @in							cookie
// @name						admin_sesion
func main() {
	flags := pflag.NewFlagSet("api", pflag.ExitOnError)
	flags.String("backend.api_url", "", "URL base de la API de la tienda")
	flags.String("sesion.store", "", "almacén de sesiones: memoria, postgres o redis")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Backend.APIURL).
		Str("store", cfg.Sesion.Store).
		Msg("iniciando consola")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	sesiones, err := almacen.Abrir(ctx, cfg, log.Componente("sesiones"))
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de sesiones")
	}
	defer sesiones.Cerrar()
	go sesiones.PurgarCada(ctx, 15*time.Minute, log.Componente("sesiones"))

	// Sin fuente: cada petición del BFF lleva su token en el contexto.
	api := adminapi.New(cfg.Backend, log.Componente("adminapi"), nil)
	authUC := auth.NewUseCase(adminapi.NewAuth(api), sesiones.Repo, cfg.Sesion.TTL, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Backend.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    40 << 20,
		ErrorHandler: httpRouter.ErrorHandler(log.Componente("http")),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Componente("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Admin API",
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC: authUC,
		Cookie: httpRouter.CookieConfig{
			Nombre:  cfg.Sesion.CookieName,
			Secret:  cfg.JWT.Secret,
			Issuer:  cfg.JWT.Issuer,
			Segura:  cfg.App.Env == "production",
			MaxEdad: time.Duration(cfg.JWT.Expiration) * time.Minute,
		},
		Categorias:    adminapi.NewCategorias(api),
		Productos:     adminapi.NewProductos(api),
		Etiquetas:     adminapi.NewEtiquetas(api),
		Blogs:         adminapi.NewBlogs(api),
		Carrusel:      adminapi.NewCarrusel(api),
		CyberWow:      adminapi.NewCyberWow(api),
		Liquidacion:   adminapi.NewLiquidacion(api),
		Pedidos:       adminapi.NewPedidos(api),
		Reclamaciones: adminapi.NewReclamaciones(api),
		Clientes:      adminapi.NewClientes(api),
		Dashboard:     adminapi.NewDashboard(api),
		Tiendas:       adminapi.NewTiendas(api),
		Comprobante:   infrapdf.NewComprobante(cfg.App.Name),
		Log:           log.Componente("bff"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
