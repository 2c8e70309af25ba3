package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/pkg/moneda"
)

var errSinSesion = errors.New("no hay sesión activa: ejecute admincli login")

// ── login / logout / sesion ──────────────────────────────────────────────────

func (c *cli) cmdLogin() *cobra.Command {
	var in dto.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión contra el backend y guarda la sesión",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Password == "" {
				in.Password = os.Getenv("TIENDA_ADMIN_PASSWORD")
			}
			return c.login(cmd.Context(), in)
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "correo del administrador")
	cmd.Flags().StringVar(&in.Password, "password", "", "contraseña (o TIENDA_ADMIN_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *cli) login(ctx context.Context, in dto.LoginRequest) error {
	s := auth.NewSesionVacia(c.uc)
	defer s.Cerrar()

	r := s.Iniciar(ctx, in)
	if !r.Success {
		return fmt.Errorf("login rechazado: %s", r.Message)
	}
	if err := c.guardarSesionID(s.ID()); err != nil {
		return fmt.Errorf("guardar sesión en %s: %w", c.archivo, err)
	}
	a := s.Admin()
	fmt.Fprintf(c.out, "Sesión iniciada como %s (%s)\n", a.Email, a.Tipo)
	return nil
}

func (c *cli) cmdLogout() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión guardada",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.logout(cmd.Context())
		},
	}
}

func (c *cli) logout(ctx context.Context) error {
	id, err := c.leerSesionID()
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintln(c.out, "No había sesión")
		return nil
	}
	s := auth.NewSesion(ctx, c.uc, id)
	defer s.Cerrar()

	r := s.Terminar(ctx)
	if err := c.borrarSesionID(); err != nil {
		return err
	}
	if !r.Success && r.Message != "" {
		fmt.Fprintf(c.out, "Sesión local cerrada; el backend respondió: %s\n", r.Message)
		return nil
	}
	fmt.Fprintln(c.out, "Sesión cerrada")
	return nil
}

func (c *cli) cmdSesion() *cobra.Command {
	return &cobra.Command{
		Use:   "sesion",
		Short: "Muestra el administrador de la sesión guardada",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.sesion(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Cerrar()
			a := s.Admin()
			fmt.Fprintf(c.out, "%s (%s) id=%d admin=%t\n", a.Email, a.Tipo, a.ID, s.EsAdmin())
			return nil
		},
	}
}

// sesion recupera la sesión guardada y exige que siga vigente.
func (c *cli) sesion(ctx context.Context) (*auth.Sesion, error) {
	id, err := c.leerSesionID()
	if err != nil {
		return nil, err
	}
	s := auth.NewSesion(ctx, c.uc, id)
	if !s.EstaAutenticado() {
		s.Cerrar()
		return nil, errSinSesion
	}
	return s, nil
}

// conSesion corre fn con el token de la sesión guardada en el contexto.
func (c *cli) conSesion(ctx context.Context, fn func(ctx context.Context) error) error {
	s, err := c.sesion(ctx)
	if err != nil {
		return err
	}
	defer s.Cerrar()
	if !s.EsAdmin() {
		return errors.New("la sesión no es de administrador")
	}
	return fn(ports.ConToken(ctx, s.TokenActual()))
}

// ── pedidos ──────────────────────────────────────────────────────────────────

func (c *cli) cmdPedidos() *cobra.Command {
	pedidos := &cobra.Command{Use: "pedidos", Short: "Consulta de pedidos"}

	var f dto.FiltrosPedidos
	listar := &cobra.Command{
		Use:   "listar",
		Short: "Lista pedidos con filtros",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.conSesion(cmd.Context(), func(ctx context.Context) error {
				return c.listarPedidos(ctx, f)
			})
		},
	}
	lf := listar.Flags()
	lf.StringVar(&f.Estado, "estado", "", "pendiente, pagado, enviado o cancelado")
	lf.StringVar(&f.Buscar, "buscar", "", "texto libre")
	lf.StringVar(&f.FechaDesde, "desde", "", "fecha inicial (AAAA-MM-DD)")
	lf.StringVar(&f.FechaHasta, "hasta", "", "fecha final (AAAA-MM-DD)")
	lf.IntVar(&f.Page, "pagina", 1, "página")
	lf.IntVar(&f.PerPage, "por-pagina", 15, "pedidos por página")

	var destino string
	comprobante := &cobra.Command{
		Use:   "comprobante <id>",
		Short: "Descarga el comprobante PDF de un pedido",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("id de pedido inválido: %q", args[0])
			}
			if destino == "" {
				destino = fmt.Sprintf("pedido-%d.pdf", id)
			}
			return c.conSesion(cmd.Context(), func(ctx context.Context) error {
				return c.descargarComprobante(ctx, id, destino)
			})
		},
	}
	comprobante.Flags().StringVarP(&destino, "salida", "o", "", "archivo destino (por defecto pedido-<id>.pdf)")

	pedidos.AddCommand(listar, comprobante)
	return pedidos
}

func (c *cli) listarPedidos(ctx context.Context, f dto.FiltrosPedidos) error {
	if f.Estado != "" && !entity.EstadoPedido(f.Estado).Valido() {
		return fmt.Errorf("estado desconocido %q", f.Estado)
	}
	r := c.pedidos.Listar(ctx, f)
	if !r.Success {
		return errors.New(r.Message)
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFECHA\tCLIENTE\tESTADO\tITEMS\tTOTAL")
	for _, p := range r.Data.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			p.ID, p.FechaPedido, p.Cliente.Nombre, p.EstadoPedido, p.CantidadItems, moneda.Formatear(p.Total))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pg := r.Data.Paginacion
	fmt.Fprintf(c.out, "Página %d de %d (%d pedidos)\n", pg.CurrentPage, pg.LastPage, pg.Total)
	return nil
}

func (c *cli) descargarComprobante(ctx context.Context, id int64, destino string) error {
	r := c.pedidos.Obtener(ctx, id)
	if !r.Success {
		return errors.New(r.Message)
	}
	pdf, err := c.comprobante.Generar(ctx, r.Data)
	if err != nil {
		return fmt.Errorf("generar comprobante: %w", err)
	}
	if err := os.WriteFile(destino, pdf, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Comprobante del pedido #%d guardado en %s\n", id, destino)
	return nil
}
