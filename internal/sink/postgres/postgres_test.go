//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"ledger-engine/internal/config"
	"ledger-engine/internal/ledger"
	"ledger-engine/internal/ledger/money"
	"ledger-engine/internal/pkg/logging"
)

const schema = `
CREATE TABLE account_snapshots (
	run_id TEXT NOT NULL,
	account_id INT NOT NULL,
	available TEXT NOT NULL,
	held TEXT NOT NULL,
	locked BOOLEAN NOT NULL,
	PRIMARY KEY (run_id, account_id)
);
`

func TestSink_WriteStates_UpsertsFinalBalances(t *testing.T) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("ledger"),
		tcpostgres.WithPassword("ledger"),
		tcpostgres.WithInitScripts(),
		testcontainers.WithWaitStrategy(wait.ForListeningPort("5432/tcp")),
	)
	require.NoError(t, err)
	defer func() { require.NoError(t, container.Terminate(ctx)) }()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	log := logging.New(&config.Config{LogLevel: "error", LogFormat: "text"}, "run-1")
	sink, err := New(ctx, NewConfig(dsn), "run-1", log)
	require.NoError(t, err)
	defer sink.Close()

	_, err = sink.pool.Exec(ctx, schema)
	require.NoError(t, err)

	states := []ledger.AccountState{
		{ID: 1, Available: money.MustFromInt(10), Held: money.Zero, Locked: false},
		{ID: 2, Available: money.MustFromInt(5), Held: money.MustFromInt(1), Locked: true},
	}
	require.NoError(t, sink.WriteStates(ctx, states))

	var available string
	err = sink.pool.QueryRow(ctx,
		"SELECT available FROM account_snapshots WHERE run_id=$1 AND account_id=$2", "run-1", 1,
	).Scan(&available)
	require.NoError(t, err)
	require.Equal(t, "10.0000", available)
}
