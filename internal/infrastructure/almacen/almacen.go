// Package almacen elige el repositorio de sesiones según SESION_STORE.
package almacen

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-admin/internal/domain/repository"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/memoria"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/redisstore"
	"github.com/jhoicas/tienda-admin/pkg/config"
)

// Sesiones es el almacén abierto. Cerrar libera la conexión subyacente.
type Sesiones struct {
	Repo repository.SesionRepository
	// Purgar borra las sesiones vencidas; nil cuando el almacén las expira solo.
	Purgar func(ctx context.Context) (int64, error)
	Cerrar func()
}

// Abrir conecta el almacén configurado. En postgres crea la tabla si hace falta.
func Abrir(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Sesiones, error) {
	switch cfg.Sesion.Store {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, postgres.NewTxRunner(pool)); err != nil {
			pool.Close()
			return nil, err
		}
		repo := postgres.NewSesionRepository(pool)
		log.Info().Str("store", "postgres").Msg("almacén de sesiones listo")
		return &Sesiones{Repo: repo, Purgar: repo.PurgarExpiradas, Cerrar: pool.Close}, nil

	case "redis":
		rdb, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		log.Info().Str("store", "redis").Str("addr", cfg.Redis.Addr).Msg("almacén de sesiones listo")
		return &Sesiones{
			Repo:   redisstore.NewSesionRepository(rdb, cfg.Sesion.TTL),
			Cerrar: func() { _ = rdb.Close() },
		}, nil

	case "memoria", "":
		log.Warn().Str("store", "memoria").Msg("las sesiones se pierden al reiniciar")
		return &Sesiones{Repo: memoria.NewSesionRepository(), Cerrar: func() {}}, nil
	}
	return nil, fmt.Errorf("almacén de sesiones desconocido %q", cfg.Sesion.Store)
}

// PurgarCada ejecuta Purgar con el intervalo dado hasta que ctx termine.
func (s *Sesiones) PurgarCada(ctx context.Context, intervalo time.Duration, log zerolog.Logger) {
	if s.Purgar == nil {
		return
	}
	t := time.NewTicker(intervalo)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := s.Purgar(ctx)
			if err != nil {
				log.Error().Err(err).Msg("purgar sesiones vencidas")
				continue
			}
			if n > 0 {
				log.Info().Int64("borradas", n).Msg("sesiones vencidas purgadas")
			}
		}
	}
}
