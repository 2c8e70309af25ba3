package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
)

// RequireAdmin deja pasar solo a usuarios de tipo admin. Debe usarse DESPUÉS de SesionMiddleware.
//
//   - 401 si no hay sesión en el contexto.
//   - 403 si el usuario existe pero no es admin.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := GetAdmin(c)
		if admin == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "sesión no encontrada",
			})
		}
		if !admin.EsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el usuario '" + admin.Email + "' no tiene acceso a la consola",
			})
		}
		return c.Next()
	}
}
