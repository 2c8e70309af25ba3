package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
)

var _ repository.SesionRepository = (*SesionRepo)(nil)

var esquema = []string{
	`CREATE TABLE IF NOT EXISTS admin_sesiones (
		id        UUID PRIMARY KEY,
		token     TEXT NOT NULL,
		admin     JSONB NOT NULL,
		creada_en TIMESTAMPTZ NOT NULL,
		expira_en TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS admin_sesiones_expira_en_idx ON admin_sesiones (expira_en)`,
}

// claveEsquema identifica el advisory lock de la migración de admin_sesiones.
const claveEsquema int64 = 0x5e5104

// EnsureSchema crea la tabla de sesiones si no existe.
func EnsureSchema(ctx context.Context, tx *TxRunner) error {
	return tx.RunBloqueado(ctx, claveEsquema, func(tx pgx.Tx) error {
		for _, stmt := range esquema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("esquema admin_sesiones: %w", err)
			}
		}
		return nil
	})
}

// SesionRepo guarda las sesiones de la consola en admin_sesiones. El admin se serializa como JSONB.
type SesionRepo struct {
	q   Querier
	now func() time.Time
}

// NewSesionRepository acepta pool o tx.
func NewSesionRepository(q Querier) *SesionRepo {
	return &SesionRepo{q: q, now: time.Now}
}

// Guardar inserta o reemplaza la sesión.
func (r *SesionRepo) Guardar(ctx context.Context, s *entity.Sesion) error {
	admin, err := json.Marshal(s.Admin)
	if err != nil {
		return fmt.Errorf("serializar admin: %w", err)
	}
	query := `
		INSERT INTO admin_sesiones (id, token, admin, creada_en, expira_en)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET token = EXCLUDED.token, admin = EXCLUDED.admin, expira_en = EXCLUDED.expira_en`
	if _, err := r.q.Exec(ctx, query, s.ID, s.Token, admin, s.CreadaEn, nullTime(s.ExpiraEn)); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Obtener devuelve nil, nil si no existe o ya expiró.
func (r *SesionRepo) Obtener(ctx context.Context, id string) (*entity.Sesion, error) {
	query := `
		SELECT id, token, admin, creada_en, expira_en
		FROM admin_sesiones
		WHERE id = $1 AND (expira_en IS NULL OR expira_en > $2)`
	var (
		s      entity.Sesion
		admin  []byte
		expira *time.Time
	)
	err := r.q.QueryRow(ctx, query, id, r.now()).Scan(&s.ID, &s.Token, &admin, &s.CreadaEn, &expira)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener sesión: %w", err)
	}
	if err := json.Unmarshal(admin, &s.Admin); err != nil {
		return nil, fmt.Errorf("leer admin de la sesión: %w", err)
	}
	if expira != nil {
		s.ExpiraEn = *expira
	}
	return &s, nil
}

func (r *SesionRepo) Eliminar(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM admin_sesiones WHERE id = $1`, id); err != nil {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}

// PurgarExpiradas borra las sesiones vencidas y devuelve cuántas eran.
func (r *SesionRepo) PurgarExpiradas(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM admin_sesiones WHERE expira_en IS NOT NULL AND expira_en <= $1`, r.now())
	if err != nil {
		if esTablaInexistente(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("purgar sesiones: %w", err)
	}
	return tag.RowsAffected(), nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
