package http

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/pkg/jwt"
)

var validate = validator.New()

// CookieConfig parámetros de la cookie de sesión.
type CookieConfig struct {
	Nombre  string
	Secret  string
	Issuer  string
	Segura  bool
	MaxEdad time.Duration
}

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	uc     *auth.UseCase
	cookie CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SesionResponse
// @Failure      401   {object}  dto.Respuesta[dto.LoginData]
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "VALIDATION", "email válido y password son requeridos")
	}
	r, s := h.uc.IniciarSesion(c.UserContext(), in)
	if s == nil {
		if r.Success {
			r.Success = false
		}
		return responder(c, r)
	}

	exp := h.cookie.MaxEdad
	if !s.ExpiraEn.IsZero() {
		exp = time.Until(s.ExpiraEn)
	}
	tok, err := jwt.Generate(h.cookie.Secret, s.ID, s.Admin.ID, s.Admin.Tipo, h.cookie.Issuer, exp)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "no se pudo firmar la sesión")
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Nombre,
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(exp),
		HTTPOnly: true,
		Secure:   h.cookie.Segura,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(sesionResponse(s))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Respuesta[any]
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	r := h.uc.CerrarSesion(c.UserContext(), GetSesion(c))
	c.ClearCookie(h.cookie.Nombre)
	// La sesión local ya no existe aunque el backend haya fallado: el cierre fue exitoso.
	msg := "Sesión cerrada"
	if r.Success && r.Message != "" {
		msg = r.Message
	}
	return c.JSON(dto.Exito[json.RawMessage](nil, msg))
}

// Sesion godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SesionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/sesion [get]
func (h *AuthHandler) Sesion(c *fiber.Ctx) error {
	return c.JSON(sesionResponse(GetSesion(c)))
}

func sesionResponse(s *entity.Sesion) dto.SesionResponse {
	out := dto.SesionResponse{Admin: s.Admin, EsAdmin: s.Admin.EsAdmin()}
	if !s.ExpiraEn.IsZero() {
		out.ExpiraEn = s.ExpiraEn.Format(time.RFC3339)
	}
	return out
}
