package repository

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// SesionRepository define el puerto de persistencia de sesiones de administrador (DIP).
// Obtener devuelve nil, nil si la sesión no existe o ya expiró.
type SesionRepository interface {
	Guardar(ctx context.Context, s *entity.Sesion) error
	Obtener(ctx context.Context, id string) (*entity.Sesion, error)
	Eliminar(ctx context.Context, id string) error
}
