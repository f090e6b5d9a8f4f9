package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ledger-engine/internal/ledger"
	"ledger-engine/internal/pkg/logging"
)

// Sink persists the final state of every account touched by a run.
// It never sees intermediate balances or individual transactions.
type Sink struct {
	pool  *pgxpool.Pool
	runID string
	log   *logging.Logger
}

// New opens a connection pool and returns a Sink bound to runID.
func New(ctx context.Context, cfg *Config, runID string, log *logging.Logger) (*Sink, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dsn: %w", err)
	}
	poolConfig.MaxConns = cfg.MaxOpenConns
	poolConfig.MinConns = cfg.MaxIdleConns
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("postgres sink connected")
	return &Sink{pool: pool, runID: runID, log: log}, nil
}

// Close releases the pool.
func (s *Sink) Close() {
	s.pool.Close()
}

// WriteStates upserts the final balances of every account in states,
// tagged with the sink's run id.
func (s *Sink) WriteStates(ctx context.Context, states []ledger.AccountState) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const upsert = `
		INSERT INTO account_snapshots (run_id, account_id, available, held, locked)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (run_id, account_id) DO UPDATE
		SET available = EXCLUDED.available, held = EXCLUDED.held, locked = EXCLUDED.locked
	`

	for _, state := range states {
		if _, err := tx.Exec(ctx, upsert,
			s.runID, state.ID, state.Available.String(), state.Held.String(), state.Locked,
		); err != nil {
			return fmt.Errorf("client %d: failed to persist snapshot: %w", state.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot batch: %w", err)
	}

	s.log.Info("postgres sink wrote run snapshot", map[string]interface{}{
		"accounts": len(states),
	})
	return nil
}
