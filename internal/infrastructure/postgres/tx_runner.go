package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner abre transacciones sobre el pool de sesiones.
type TxRunner struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ejecuta fn en una transacción: commit si fn no falla, rollback en cualquier otro caso.
func (r *TxRunner) Run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, r.opts)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	return nil
}

// RunBloqueado serializa fn entre procesos con un advisory lock de transacción.
// Lo usa EnsureSchema cuando varias réplicas del BFF arrancan a la vez.
func (r *TxRunner) RunBloqueado(ctx context.Context, clave int64, fn func(tx pgx.Tx) error) error {
	return r.Run(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, clave); err != nil {
			return fmt.Errorf("advisory lock %d: %w", clave, err)
		}
		return fn(tx)
	})
}
