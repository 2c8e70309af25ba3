package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/adminapi"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/almacen"
	infrapdf "github.com/jhoicas/tienda-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-admin/pkg/config"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

// cli reúne lo que necesitan los subcomandos. preparar lo arma desde la configuración;
// las pruebas lo construyen con fakes.
type cli struct {
	out     io.Writer
	archivo string

	uc          *auth.UseCase
	pedidos     ports.PedidosAPI
	comprobante ports.GeneradorComprobante
	cerrar      func()
}

func nuevoRaiz(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	raiz := &cobra.Command{
		Use:           "admincli",
		Short:         "Consola de administración de la tienda en la terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.preparar(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.cerrar != nil {
				c.cerrar()
			}
		},
	}
	pf := raiz.PersistentFlags()
	pf.StringVar(&c.archivo, "sesion-archivo", archivoPorDefecto(), "archivo donde se guarda el ID de sesión")
	pf.String("backend.api_url", "", "URL base de la API de la tienda")
	pf.String("sesion.store", "", "almacén de sesiones: memoria, postgres o redis")

	raiz.AddCommand(c.cmdLogin(), c.cmdLogout(), c.cmdSesion(), c.cmdPedidos())
	return raiz
}

func (c *cli) preparar(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "admincli",
		Out:     os.Stderr,
	})
	if cfg.Sesion.Store == "memoria" {
		log.Warn().Msg("con SESION_STORE=memoria la sesión no sobrevive entre comandos")
	}

	sesiones, err := almacen.Abrir(cmd.Context(), cfg, log.Componente("sesiones"))
	if err != nil {
		return err
	}
	api := adminapi.New(cfg.Backend, log.Componente("adminapi"), nil)

	c.uc = auth.NewUseCase(adminapi.NewAuth(api), sesiones.Repo, cfg.Sesion.TTL, log.Zerolog())
	c.pedidos = adminapi.NewPedidos(api)
	c.comprobante = infrapdf.NewComprobante(cfg.App.Name)
	c.cerrar = sesiones.Cerrar
	return nil
}

func archivoPorDefecto() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".tienda-admin-sesion"
	}
	return filepath.Join(dir, "tienda-admin", "sesion")
}

// ── Archivo de sesión ────────────────────────────────────────────────────────

func (c *cli) leerSesionID() (string, error) {
	b, err := os.ReadFile(c.archivo)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (c *cli) guardarSesionID(id string) error {
	if err := os.MkdirAll(filepath.Dir(c.archivo), 0o700); err != nil {
		return err
	}
	return os.WriteFile(c.archivo, []byte(id+"\n"), 0o600)
}

func (c *cli) borrarSesionID() error {
	err := os.Remove(c.archivo)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
