package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/pkg/jwt"
)

// LocalSesion es la clave de Locals donde queda la sesión recuperada.
const LocalSesion = "sesion"

// SesionMiddleware valida la cookie de sesión (o un Bearer con el mismo JWT), recupera la sesión
// del almacén y deja el token del backend en el contexto de usuario para que las llamadas salientes
// lo lleven.
func SesionMiddleware(jwtSecret, cookie string, uc *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(cookie)
		if tokenString == "" {
			if h := c.Get(fiber.HeaderAuthorization); h != "" {
				parts := strings.SplitN(h, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
					return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
				}
				tokenString = strings.TrimSpace(parts[1])
			}
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "sesión requerida"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "sesión inválida o expirada"})
		}
		s, err := uc.Recuperar(c.UserContext(), claims.SesionID)
		if err != nil {
			if errors.Is(err, domain.ErrSesionExpirada) {
				c.ClearCookie(cookie)
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: err.Error()})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_STORE", Message: "no se pudo verificar la sesión, intente más tarde"})
		}
		c.Locals(LocalSesion, s)
		c.SetUserContext(ports.ConToken(c.UserContext(), s.Token))
		return c.Next()
	}
}

// GetSesion devuelve la sesión del contexto (después de SesionMiddleware).
func GetSesion(c *fiber.Ctx) *entity.Sesion {
	s, _ := c.Locals(LocalSesion).(*entity.Sesion)
	return s
}

// GetAdmin devuelve el usuario de la sesión, nil si no hay.
func GetAdmin(c *fiber.Ctx) *entity.Admin {
	if s := GetSesion(c); s != nil {
		return s.Admin
	}
	return nil
}
