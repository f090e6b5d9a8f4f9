// Package kafka wraps a Sarama sync producer for the engine's audit
// event stream, adapted from the teacher's
// internal/infrastructure/messaging/kafka package: same Config shape,
// same ToSaramaConfig tuning, same sync-producer wrapper.
package kafka

import (
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

// Config holds Kafka producer configuration.
type Config struct {
	Brokers           []string
	ClientID          string
	EnableIdempotence bool
	CompressionType   string
	RequiredAcks      string
	MaxRetries        int
	RetryBackoff      time.Duration
}

// NewConfig builds a Config from the comma-separated broker list coming
// out of internal/config.
func NewConfig(brokers string) *Config {
	return &Config{
		Brokers:           strings.Split(brokers, ","),
		ClientID:          "ledger-engine",
		EnableIdempotence: false,
		CompressionType:   "snappy",
		RequiredAcks:      "all",
		MaxRetries:        5,
		RetryBackoff:      100 * time.Millisecond,
	}
}

// ToSaramaConfig converts Config to a sarama.Config.
func (c *Config) ToSaramaConfig() (*sarama.Config, error) {
	config := sarama.NewConfig()

	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.Idempotent = c.EnableIdempotence
	config.Producer.Retry.Max = c.MaxRetries
	config.Producer.Retry.Backoff = c.RetryBackoff

	if !c.EnableIdempotence {
		config.Net.MaxOpenRequests = 10
	} else {
		config.Net.MaxOpenRequests = 1
	}

	switch c.RequiredAcks {
	case "all", "-1":
		config.Producer.RequiredAcks = sarama.WaitForAll
	case "1":
		config.Producer.RequiredAcks = sarama.WaitForLocal
	case "0":
		config.Producer.RequiredAcks = sarama.NoResponse
	default:
		return nil, fmt.Errorf("invalid required acks value: %s", c.RequiredAcks)
	}

	switch c.CompressionType {
	case "none":
		config.Producer.Compression = sarama.CompressionNone
	case "gzip":
		config.Producer.Compression = sarama.CompressionGZIP
	case "snappy":
		config.Producer.Compression = sarama.CompressionSnappy
	case "lz4":
		config.Producer.Compression = sarama.CompressionLZ4
	case "zstd":
		config.Producer.Compression = sarama.CompressionZSTD
	default:
		return nil, fmt.Errorf("invalid compression type: %s", c.CompressionType)
	}

	config.ClientID = c.ClientID
	config.Version = sarama.V3_0_0_0

	return config, nil
}
