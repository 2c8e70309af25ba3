package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-admin/internal/application/consola"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// VentasHandler expone pedidos, reclamaciones, clientes y el tablero.
type VentasHandler struct {
	pedidos       ports.PedidosAPI
	reclamaciones ports.ReclamacionesAPI
	clientes      ports.ClientesAPI
	dashboard     ports.DashboardAPI
	tiendas       ports.TiendasAPI
	comprobante   ports.GeneradorComprobante
	log           zerolog.Logger
}

// VentasDeps dependencias del handler de ventas.
type VentasDeps struct {
	Pedidos       ports.PedidosAPI
	Reclamaciones ports.ReclamacionesAPI
	Clientes      ports.ClientesAPI
	Dashboard     ports.DashboardAPI
	Tiendas       ports.TiendasAPI
	Comprobante   ports.GeneradorComprobante
	Log           zerolog.Logger
}

func NewVentasHandler(d VentasDeps) *VentasHandler {
	return &VentasHandler{
		pedidos:       d.Pedidos,
		reclamaciones: d.Reclamaciones,
		clientes:      d.Clientes,
		dashboard:     d.Dashboard,
		tiendas:       d.Tiendas,
		comprobante:   d.Comprobante,
		log:           d.Log,
	}
}

// CambioEstadoRequest cuerpo de los cambios de estado de pedidos y reclamaciones.
type CambioEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// cambioRechazado responde a una transición que no llegó a enviarse al backend.
func cambioRechazado(c *fiber.Ctx, err error) error {
	if errors.Is(err, consola.ErrSinCambios) {
		return errorJSON(c, fiber.StatusConflict, "SIN_CAMBIOS", err.Error())
	}
	return errorJSON(c, fiber.StatusUnprocessableEntity, "TRANSICION_INVALIDA", err.Error())
}

// leerCambioEstado devuelve false si ya respondió con el error; el handler debe retornar sin escribir.
func leerCambioEstado(c *fiber.Ctx) (CambioEstadoRequest, bool) {
	var in CambioEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		_ = errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
		return in, false
	}
	if err := validate.Struct(in); err != nil {
		_ = errorJSON(c, fiber.StatusUnprocessableEntity, "VALIDATION", "estado es requerido")
		return in, false
	}
	return in, true
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// Dashboard godoc
// @Summary      Contadores del tablero
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.Respuesta[entity.DashboardStats]
// @Router       /api/dashboard [get]
func (h *VentasHandler) Dashboard(c *fiber.Ctx) error {
	return responder(c, h.dashboard.Estadisticas(c.UserContext()))
}

// Tiendas godoc
// @Summary      Catálogo de tiendas
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.Respuesta[[]entity.Tienda]
// @Router       /api/tiendas [get]
func (h *VentasHandler) Tiendas(c *fiber.Ctx) error {
	return responder(c, h.tiendas.Listar(c.UserContext()))
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// ListarPedidos godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Param        estado       query  string  false  "pendiente | pagado | enviado | cancelado | todos"
// @Param        cliente_id   query  int     false  "Cliente"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD"
// @Param        monto_min    query  string  false  "Monto mínimo"
// @Param        monto_max    query  string  false  "Monto máximo"
// @Param        buscar       query  string  false  "Texto a buscar"
// @Param        page         query  int     false  "Página"
// @Param        per_page     query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.Respuesta[dto.Pagina[entity.Pedido]]
// @Router       /api/pedidos [get]
func (h *VentasHandler) ListarPedidos(c *fiber.Ctx) error {
	var f dto.FiltrosPedidos
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "filtros inválidos")
	}
	return responder(c, h.pedidos.Listar(c.UserContext(), f))
}

// ObtenerPedido godoc
// @Summary      Detalle de pedido
// @Tags         pedidos
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.Respuesta[entity.Pedido]
// @Router       /api/pedidos/{id} [get]
func (h *VentasHandler) ObtenerPedido(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	return responder(c, h.pedidos.Obtener(c.UserContext(), id))
}

// EstadoPedido godoc
// @Summary      Cambiar estado de pedido
// @Description  Solo se admiten pendiente→pagado|cancelado y pagado→enviado|cancelado.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del pedido"
// @Param        body  body  CambioEstadoRequest  true  "estado destino"
// @Success      200  {object}  ResultadoResponse[entity.CambioEstadoPedido]
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/estado [put]
func (h *VentasHandler) EstadoPedido(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	in, ok := leerCambioEstado(c)
	if !ok {
		return nil
	}
	r := h.pedidos.Obtener(c.UserContext(), id)
	if !r.Success {
		return responder(c, r)
	}
	conf, err := consola.ConfirmarEstadoPedido(h.pedidos, r.Data, entity.EstadoPedido(in.Estado))
	if err != nil {
		return cambioRechazado(c, err)
	}
	res, err := conf.Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// EstadisticasPedidos godoc
// @Summary      Estadísticas de pedidos en un rango
// @Tags         pedidos
// @Produce      json
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.Respuesta[entity.EstadisticasPedidos]
// @Router       /api/pedidos/estadisticas [get]
func (h *VentasHandler) EstadisticasPedidos(c *fiber.Ctx) error {
	return responder(c, h.pedidos.Estadisticas(c.UserContext(), c.Query("fecha_inicio"), c.Query("fecha_fin")))
}

// Comprobante godoc
// @Summary      Comprobante PDF de un pedido
// @Tags         pedidos
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.Respuesta[entity.Pedido]
// @Router       /api/pedidos/{id}/comprobante [get]
func (h *VentasHandler) Comprobante(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	r := h.pedidos.Obtener(c.UserContext(), id)
	if !r.Success {
		return responder(c, r)
	}
	pdf, err := h.comprobante.Generar(c.UserContext(), r.Data)
	if err != nil {
		h.log.Error().Err(err).Int64("pedido", id).Msg("generar comprobante")
		return errorJSON(c, fiber.StatusInternalServerError, "PDF", "no se pudo generar el comprobante")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="pedido-%d.pdf"`, id))
	return c.Send(pdf)
}

// ── Reclamaciones ─────────────────────────────────────────────────────────────

// ListarReclamaciones godoc
// @Summary      Libro de reclamaciones
// @Tags         reclamaciones
// @Produce      json
// @Param        estado        query  string  false  "pendiente | en_proceso | resuelto | todos"
// @Param        tipo_reclamo  query  string  false  "reclamo | queja"
// @Param        fecha_desde   query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta   query  string  false  "YYYY-MM-DD"
// @Param        buscar        query  string  false  "Texto a buscar"
// @Param        page          query  int     false  "Página"
// @Param        per_page      query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.Respuesta[dto.PaginaReclamaciones]
// @Router       /api/reclamaciones [get]
func (h *VentasHandler) ListarReclamaciones(c *fiber.Ctx) error {
	var f dto.FiltrosReclamaciones
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "filtros inválidos")
	}
	return responder(c, h.reclamaciones.Listar(c.UserContext(), f))
}

// ObtenerReclamacion godoc
// @Summary      Detalle de reclamación
// @Tags         reclamaciones
// @Produce      json
// @Param        id   path  int  true  "ID de la reclamación"
// @Success      200  {object}  dto.Respuesta[entity.Reclamacion]
// @Router       /api/reclamaciones/{id} [get]
func (h *VentasHandler) ObtenerReclamacion(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	return responder(c, h.reclamaciones.Obtener(c.UserContext(), id))
}

// EstadoReclamacion godoc
// @Summary      Cambiar estado de reclamación
// @Tags         reclamaciones
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID de la reclamación"
// @Param        body  body  CambioEstadoRequest  true  "estado destino"
// @Success      200  {object}  ResultadoResponse[entity.Reclamacion]
// @Router       /api/reclamaciones/{id}/estado [put]
func (h *VentasHandler) EstadoReclamacion(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	in, ok := leerCambioEstado(c)
	if !ok {
		return nil
	}
	r := h.reclamaciones.Obtener(c.UserContext(), id)
	if !r.Success {
		return responder(c, r)
	}
	conf, err := consola.ConfirmarEstadoReclamacion(h.reclamaciones, r.Data, entity.EstadoReclamacion(in.Estado))
	if err != nil {
		return cambioRechazado(c, err)
	}
	res, err := conf.Confirmar(c.UserContext())
	return responderResultado(c, res, err)
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// ListarClientes godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Param        tipo      query  string  false  "Tipo de cliente"
// @Param        user_id   query  int     false  "Usuario"
// @Param        buscar    query  string  false  "Texto a buscar"
// @Param        page      query  int     false  "Página"
// @Param        per_page  query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.Respuesta[dto.Pagina[entity.Cliente]]
// @Router       /api/clientes [get]
func (h *VentasHandler) ListarClientes(c *fiber.Ctx) error {
	var f dto.FiltrosClientes
	if err := c.QueryParser(&f); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "filtros inválidos")
	}
	return responder(c, h.clientes.Listar(c.UserContext(), f))
}

// ObtenerCliente godoc
// @Summary      Detalle de cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.Respuesta[entity.Cliente]
// @Router       /api/clientes/{id} [get]
func (h *VentasHandler) ObtenerCliente(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return idInvalido(c)
	}
	return responder(c, h.clientes.Obtener(c.UserContext(), id))
}
