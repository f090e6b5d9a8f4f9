// Command ledger replays a CSV transaction stream through the ledger
// engine and writes the final account states back out as CSV.
package main

import (
	"context"
	"fmt"
	"os"

	"ledger-engine/internal/audit"
	"ledger-engine/internal/config"
	iocsv "ledger-engine/internal/io/csv"
	"ledger-engine/internal/ledger"
	"ledger-engine/internal/ledger/broker"
	"ledger-engine/internal/metrics"
	"ledger-engine/internal/pkg/components"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "ledger:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	container, err := components.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize run: %w", err)
	}
	defer container.Close(ctx)

	input, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer input.Close()

	transactions := iocsv.DecodeTransactions(input, func(derr *iocsv.DecodeError) {
		metrics.DecodeErrors.Inc()
		container.Log.Warn("skipped malformed record", map[string]interface{}{"error": derr.Error()})
	})

	onError := func(tx ledger.Transaction, err error) {
		code := "unknown"
		if lerr, ok := err.(ledger.Error); ok {
			code = string(lerr.Code)
		}
		metrics.TransactionsRejected.WithLabelValues(tx.Kind().String(), code).Inc()
	}
	onApply := func(tx ledger.Transaction) {
		metrics.TransactionsApplied.WithLabelValues(tx.Kind().String()).Inc()
	}

	var states []ledger.AccountState
	switch cfg.Mode {
	case "sequential":
		states = broker.Sequential(transactions, onError, onApply)
	default:
		states = broker.Concurrent(transactions, onError, onApply)
	}

	metrics.AccountsOpen.Set(float64(len(states)))

	if err := reportRun(ctx, container, states); err != nil {
		container.Log.Error("failed to report run audit events", err, nil)
	}

	if cfg.SortOutput {
		states = iocsv.SortByAccount(states)
	}

	if container.Sink != nil {
		if err := container.Sink.WriteStates(ctx, states); err != nil {
			container.Log.Error("failed to persist run snapshot", err, nil)
		}
	}

	if err := iocsv.EncodeAccountStates(os.Stdout, states); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}

func reportRun(ctx context.Context, container *components.Container, states []ledger.AccountState) error {
	locked := audit.DetectLockedAccounts(states)
	for _, id := range locked {
		metrics.AccountsLocked.Inc()
		if err := container.Publisher.PublishAccountLocked(audit.AccountLockedEvent{
			RunID: container.RunID, AccountID: uint16(id),
		}); err != nil {
			return err
		}
	}

	return container.Publisher.PublishRunCompleted(audit.RunCompletedEvent{
		RunID:           container.RunID,
		AccountsTouched: len(states),
		AccountsLocked:  len(locked),
	})
}
