// Package postgres persists the final AccountState of a completed run,
// adapted from the teacher's internal/infrastructure/database/postgres
// package: same pgxpool-backed connection pool setup, narrowed to a
// single upsert-per-account-per-run — the engine never persists
// intermediate state or per-transaction history.
package postgres

import "time"

// Config holds the sink's pool configuration. DSN is a standard
// postgres:// connection string, taken directly from internal/config
// rather than assembled from discrete host/port/user fields — a batch
// CLI tool has one DSN flag, not a service's env-var surface.
type Config struct {
	DSN             string
	MaxOpenConns    int32
	MaxIdleConns    int32
	ConnMaxLifetime time.Duration
}

// NewConfig builds a Config from a DSN with the teacher's pool defaults.
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:             dsn,
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: 30 * time.Minute,
	}
}
