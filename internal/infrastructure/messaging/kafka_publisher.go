package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smt_scheduler/internal/domain/entities"
	"smt_scheduler/internal/infrastructure/logging"
	"smt_scheduler/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
)

const (
	// EventTypeScheduled is the ce-type of a committed placement.
	EventTypeScheduled = "work-order.scheduled"
	DefaultTopic       = "smt.schedule.events"
	eventSource        = "smt-scheduler"
	specVersion        = "1.0"
)

var ErrPublisherUnavailable = errors.New("schedule event publisher unavailable")

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ MessageWriter = (*kafka.Writer)(nil)

// Config holds broker and breaker settings.
type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	RequiredAcks int // 0: none, 1: leader, -1: all replicas

	// Breaker trips after FailureThreshold consecutive failures and stays
	// open for OpenTimeout.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

func DefaultConfig(brokers []string) Config {
	return Config{
		Brokers:          brokers,
		Topic:            DefaultTopic,
		BatchTimeout:     10 * time.Millisecond,
		RequiredAcks:     -1,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}
}

// NewWriter builds a synchronous writer for the configured topic.
func NewWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		Async:        false,
	}
}

// KafkaSchedulePublisher sends one message per committed placement, keyed by
// work order id so events of the same order stay on one partition.
type KafkaSchedulePublisher struct {
	writer  MessageWriter
	breaker *gobreaker.CircuitBreaker
	log     *logging.Logger
}

var _ interfaces.IScheduleEventPublisher = (*KafkaSchedulePublisher)(nil)

func NewKafkaSchedulePublisher(writer MessageWriter, cfg Config, log *logging.Logger) *KafkaSchedulePublisher {
	if log == nil {
		log = logging.Nop()
	}
	log = log.WithComponent("schedule.publisher")
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:    "kafka-schedule-publisher",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &KafkaSchedulePublisher{
		writer:  writer,
		breaker: gobreaker.NewCircuitBreaker(settings),
		log:     log,
	}
}

func (p *KafkaSchedulePublisher) PublishScheduled(ctx context.Context, event entities.ScheduleEvent) error {
	msg, err := newScheduledMessage(event)
	if err != nil {
		return err
	}

	_, err = p.breaker.Execute(func() (interface{}, error) {
		return nil, p.writer.WriteMessages(ctx, msg)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrPublisherUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.EventID, err)
	}
	return nil
}

// State exposes the breaker state for health reporting.
func (p *KafkaSchedulePublisher) State() gobreaker.State {
	return p.breaker.State()
}

func (p *KafkaSchedulePublisher) Close() error {
	return p.writer.Close()
}

func newScheduledMessage(event entities.ScheduleEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.WorkOrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "ce-specversion", Value: []byte(specVersion)},
			{Key: "ce-type", Value: []byte(EventTypeScheduled)},
			{Key: "ce-source", Value: []byte(eventSource)},
			{Key: "ce-id", Value: []byte(event.EventID)},
			{Key: "ce-time", Value: []byte(event.OccurredAt.UTC().Format(time.RFC3339))},
			{Key: "ce-runid", Value: []byte(event.RunID)},
			{Key: "content-type", Value: []byte("application/json")},
		},
		Time: event.OccurredAt,
	}, nil
}
