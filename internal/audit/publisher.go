// Package audit publishes account- and run-level events to Kafka,
// adapted from the teacher's internal/infrastructure/messaging package:
// same EventPublisher interface / KafkaEventPublisher / NoOpEventPublisher
// split, narrowed to the two events an engine run can honestly report —
// an account getting locked and the run finishing — never a
// per-transaction event, since the core guarantees no intermediate
// state is observable.
package audit

import (
	"strconv"

	"ledger-engine/internal/audit/kafka"
	"ledger-engine/internal/ledger"
	"ledger-engine/internal/pkg/logging"
)

// AccountLockedEvent reports an account transitioning into the locked
// state via a chargeback.
type AccountLockedEvent struct {
	RunID     string `json:"run_id"`
	AccountID uint16 `json:"account_id"`
}

// RunCompletedEvent reports a finished engine run.
type RunCompletedEvent struct {
	RunID            string `json:"run_id"`
	AccountsTouched  int    `json:"accounts_touched"`
	AccountsLocked   int    `json:"accounts_locked"`
	TransactionsSeen int    `json:"transactions_seen"`
}

// EventPublisher publishes audit events for one engine run.
type EventPublisher interface {
	PublishAccountLocked(event AccountLockedEvent) error
	PublishRunCompleted(event RunCompletedEvent) error
	Close() error
	IsHealthy() bool
}

// KafkaEventPublisher implements EventPublisher over a Kafka producer.
type KafkaEventPublisher struct {
	producer *kafka.Producer
}

// NewKafkaEventPublisher creates a Kafka-backed EventPublisher.
func NewKafkaEventPublisher(config *kafka.Config, log *logging.Logger) (*KafkaEventPublisher, error) {
	producer, err := kafka.NewProducer(config, log)
	if err != nil {
		return nil, err
	}
	return &KafkaEventPublisher{producer: producer}, nil
}

func (p *KafkaEventPublisher) PublishAccountLocked(event AccountLockedEvent) error {
	key := strconv.Itoa(int(event.AccountID))
	return p.producer.PublishEvent(kafka.TopicAccountLocked, key, event)
}

func (p *KafkaEventPublisher) PublishRunCompleted(event RunCompletedEvent) error {
	return p.producer.PublishEvent(kafka.TopicRunCompleted, event.RunID, event)
}

func (p *KafkaEventPublisher) Close() error     { return p.producer.Close() }
func (p *KafkaEventPublisher) IsHealthy() bool  { return p.producer.IsHealthy() }

// NoOpEventPublisher discards every event; used when Kafka is disabled.
type NoOpEventPublisher struct{}

func NewNoOpEventPublisher() *NoOpEventPublisher { return &NoOpEventPublisher{} }

func (p *NoOpEventPublisher) PublishAccountLocked(event AccountLockedEvent) error { return nil }
func (p *NoOpEventPublisher) PublishRunCompleted(event RunCompletedEvent) error   { return nil }
func (p *NoOpEventPublisher) Close() error                                       { return nil }
func (p *NoOpEventPublisher) IsHealthy() bool                                    { return true }

// DetectLockedAccounts returns the account ids among states that are
// locked, for PublishAccountLocked fan-out after a run.
func DetectLockedAccounts(states []ledger.AccountState) []ledger.AccountId {
	var locked []ledger.AccountId
	for _, s := range states {
		if s.Locked {
			locked = append(locked, s.ID)
		}
	}
	return locked
}
