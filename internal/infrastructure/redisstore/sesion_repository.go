// Package redisstore guarda las sesiones de la consola en Redis con expiración nativa.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
	"github.com/jhoicas/tienda-admin/pkg/config"
)

var _ repository.SesionRepository = (*SesionRepo)(nil)

const prefijo = "tienda-admin:sesion:"

// Cliente es el subconjunto de go-redis que usa el repositorio.
type Cliente interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewClient conecta y verifica Redis.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// SesionRepo serializa la sesión en JSON; la clave vence con la sesión.
type SesionRepo struct {
	rdb Cliente
	// ttl se aplica a las sesiones sin ExpiraEn.
	ttl time.Duration
	now func() time.Time
}

func NewSesionRepository(rdb Cliente, ttl time.Duration) *SesionRepo {
	return &SesionRepo{rdb: rdb, ttl: ttl, now: time.Now}
}

func clave(id string) string { return prefijo + id }

func (r *SesionRepo) Guardar(ctx context.Context, s *entity.Sesion) error {
	ttl := r.ttl
	if !s.ExpiraEn.IsZero() {
		ttl = s.ExpiraEn.Sub(r.now())
		if ttl <= 0 {
			return fmt.Errorf("guardar sesión %s: ya expiró", s.ID)
		}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := r.rdb.Set(ctx, clave(s.ID), b, ttl).Err(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Obtener devuelve nil, nil si la clave no existe o la sesión ya venció.
func (r *SesionRepo) Obtener(ctx context.Context, id string) (*entity.Sesion, error) {
	b, err := r.rdb.Get(ctx, clave(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener sesión: %w", err)
	}
	var s entity.Sesion
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if !s.Vigente(r.now()) {
		return nil, nil
	}
	return &s, nil
}

func (r *SesionRepo) Eliminar(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, clave(id)).Err(); err != nil {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}
