// Package config assembles the engine's run configuration from CLI flags
// layered over environment defaults, adapted from the teacher's
// src/config/config.go env-var loader (same getEnv/getEnvAsBool
// helpers), extended with the flag set a batch CLI tool
// needs: input path, dispatch mode, output ordering, and the optional
// sinks (Kafka audit events, Postgres final-state snapshot, admin HTTP
// surface).
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Config is the fully resolved set of knobs for one engine run.
type Config struct {
	InputPath string

	Mode        string // "sequential" or "concurrent"
	SortOutput  bool
	LogLevel    string
	LogFormat   string

	KafkaEnabled bool
	KafkaBrokers string

	PostgresDSN string

	ServeAdmin bool
	AdminAddr  string
}

// Parse builds a Config from CLI args, falling back to environment
// variables for anything a flag doesn't override. args is normally
// os.Args[1:].
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)

	mode := fs.String("mode", getEnv("LEDGER_MODE", "concurrent"), "dispatch mode: sequential or concurrent")
	sortOutput := fs.Bool("sort-output", getEnvAsBool("LEDGER_SORT_OUTPUT", false), "sort output rows by account id")
	logLevel := fs.String("log-level", getEnv("LOG_LEVEL", "info"), "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", getEnv("LOG_FORMAT", "text"), "log format: text or json")
	kafkaEnabled := fs.Bool("kafka-enabled", getEnvAsBool("KAFKA_ENABLED", false), "publish account/run audit events to Kafka")
	kafkaBrokers := fs.String("kafka-brokers", getEnv("KAFKA_BROKERS", "localhost:9092"), "comma-separated Kafka broker addresses")
	postgresDSN := fs.String("postgres-dsn", getEnv("POSTGRES_DSN", ""), "Postgres DSN to persist final account states; empty disables the sink")
	serveAdmin := fs.Bool("serve-admin", getEnvAsBool("SERVE_ADMIN", false), "serve a /healthz and /metrics admin surface for the run's duration")
	adminAddr := fs.String("admin-addr", getEnv("ADMIN_ADDR", ":8080"), "address for the admin HTTP surface")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *mode != "sequential" && *mode != "concurrent" {
		return nil, fmt.Errorf("invalid --mode %q: must be sequential or concurrent", *mode)
	}

	positional := fs.Args()
	if len(positional) != 1 {
		return nil, fmt.Errorf("usage: ledger [flags] <input.csv>")
	}

	return &Config{
		InputPath:    positional[0],
		Mode:         *mode,
		SortOutput:   *sortOutput,
		LogLevel:     *logLevel,
		LogFormat:    *logFormat,
		KafkaEnabled: *kafkaEnabled,
		KafkaBrokers: *kafkaBrokers,
		PostgresDSN:  *postgresDSN,
		ServeAdmin:   *serveAdmin,
		AdminAddr:    *adminAddr,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}
