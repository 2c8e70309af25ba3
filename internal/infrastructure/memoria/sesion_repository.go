// Package memoria guarda sesiones en el proceso. Sirve para desarrollo y pruebas; se pierden al reiniciar.
package memoria

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
)

var _ repository.SesionRepository = (*SesionRepository)(nil)

type SesionRepository struct {
	mu       sync.RWMutex
	sesiones map[string]entity.Sesion
	now      func() time.Time
}

func NewSesionRepository() *SesionRepository {
	return &SesionRepository{sesiones: make(map[string]entity.Sesion), now: time.Now}
}

func (r *SesionRepository) Guardar(_ context.Context, s *entity.Sesion) error {
	cp := *s
	if s.Admin != nil {
		a := *s.Admin
		cp.Admin = &a
	}
	r.mu.Lock()
	r.sesiones[s.ID] = cp
	r.mu.Unlock()
	return nil
}

func (r *SesionRepository) Obtener(_ context.Context, id string) (*entity.Sesion, error) {
	r.mu.RLock()
	s, ok := r.sesiones[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !s.Vigente(r.now()) {
		r.mu.Lock()
		delete(r.sesiones, id)
		r.mu.Unlock()
		return nil, nil
	}
	return &s, nil
}

func (r *SesionRepository) Eliminar(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.sesiones, id)
	r.mu.Unlock()
	return nil
}
