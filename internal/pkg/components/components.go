// Package components assembles the ambient services one engine run
// needs, adapted from the teacher's own Container/GetInstance pattern:
// a single struct built once per process, wiring config, logging, the
// optional Kafka audit publisher, the optional Postgres snapshot sink,
// and the optional admin HTTP surface. Unlike the teacher's singleton
// (one long-lived server process) this container is scoped to a single
// run and always shut down by its caller — cmd/ledger/main.go calls
// New exactly once per run, and the container keeps the teacher's
// New/Close lifecycle shape.
package components

import (
	"context"
	"fmt"

	"ledger-engine/internal/admin"
	"ledger-engine/internal/audit"
	auditkafka "ledger-engine/internal/audit/kafka"
	"ledger-engine/internal/config"
	"ledger-engine/internal/pkg/logging"
	"ledger-engine/internal/runid"
	sinkpostgres "ledger-engine/internal/sink/postgres"
)

// Container holds every ambient dependency for one engine run.
type Container struct {
	Config    *config.Config
	RunID     string
	Log       *logging.Logger
	Publisher audit.EventPublisher
	Sink      *sinkpostgres.Sink
	Admin     *admin.Server
}

// New builds a Container from cfg: builds the run-scoped logger first
// (so every later step can log against it), then the optional Kafka
// publisher, Postgres sink, and admin surface, in that order.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	runID := runid.New()
	c := &Container{Config: cfg, RunID: runID, Log: logging.New(cfg, runID)}

	c.Log.Info("run starting", map[string]interface{}{
		"mode":  cfg.Mode,
		"input": cfg.InputPath,
	})

	if err := c.initPublisher(); err != nil {
		return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
	}

	if err := c.initSink(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize postgres sink: %w", err)
	}

	c.initAdmin()

	return c, nil
}

func (c *Container) initPublisher() error {
	if !c.Config.KafkaEnabled {
		c.Log.Info("kafka disabled, using no-op event publisher")
		c.Publisher = audit.NewNoOpEventPublisher()
		return nil
	}

	kafkaConfig := auditkafka.NewConfig(c.Config.KafkaBrokers)
	publisher, err := audit.NewKafkaEventPublisher(kafkaConfig, c.Log)
	if err != nil {
		c.Log.Warn("failed to initialize kafka, using no-op event publisher", map[string]interface{}{
			"error": err.Error(),
		})
		c.Publisher = audit.NewNoOpEventPublisher()
		return nil
	}

	c.Publisher = publisher
	return nil
}

func (c *Container) initSink(ctx context.Context) error {
	if c.Config.PostgresDSN == "" {
		return nil
	}

	sinkConfig := sinkpostgres.NewConfig(c.Config.PostgresDSN)
	sink, err := sinkpostgres.New(ctx, sinkConfig, c.RunID, c.Log)
	if err != nil {
		return err
	}
	c.Sink = sink
	return nil
}

func (c *Container) initAdmin() {
	if !c.Config.ServeAdmin {
		return
	}
	c.Admin = admin.New(c.Config.AdminAddr, c.Log)
	c.Admin.Start()
}

// Close releases every resource the container opened, in reverse order
// of initialization.
func (c *Container) Close(ctx context.Context) error {
	if c.Admin != nil {
		if err := c.Admin.Shutdown(ctx); err != nil {
			c.Log.Error("admin surface shutdown failed", err, nil)
		}
	}
	if c.Sink != nil {
		c.Sink.Close()
	}
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			c.Log.Error("failed to close event publisher", err, nil)
		}
	}
	return nil
}
