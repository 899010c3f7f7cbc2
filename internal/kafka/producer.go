package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
	"github.com/SscSPs/exchange_audit_app/internal/core/ports/events"
	"github.com/shopspring/decimal"
)

// AuditLogEvent is the message value written to the audit topic.
type AuditLogEvent struct {
	AuditLogID      string          `json:"auditLogId"`
	ActingUser      string          `json:"actingUser"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	SourceAmount    decimal.Decimal `json:"sourceAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	RateApplied     decimal.Decimal `json:"rateApplied"`
	Timestamp       time.Time       `json:"timestamp"`
}

func newAuditLogEvent(entry domain.AuditLogEntry) AuditLogEvent {
	return AuditLogEvent{
		AuditLogID:      entry.AuditLogID,
		ActingUser:      entry.ActingUser,
		FromCurrency:    entry.FromCurrencyCode,
		ToCurrency:      entry.ToCurrencyCode,
		SourceAmount:    entry.SourceAmount,
		ConvertedAmount: entry.ConvertedAmount,
		RateApplied:     entry.RateApplied,
		Timestamp:       entry.Timestamp,
	}
}

type AuditProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

var _ events.AuditEventPublisher = (*AuditProducer)(nil)

// NewAuditProducer connects a synchronous producer to brokers.
func NewAuditProducer(brokers []string, topic string, log *slog.Logger) (*AuditProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("Kafka audit producer created", slog.String("topic", topic), slog.Any("brokers", brokers))
	return NewAuditProducerWith(producer, topic, log), nil
}

// NewAuditProducerWith wraps an existing sarama.SyncProducer.
func NewAuditProducerWith(producer sarama.SyncProducer, topic string, log *slog.Logger) *AuditProducer {
	return &AuditProducer{producer: producer, topic: topic, log: log}
}

// PublishAuditLog sends entry keyed by its audit log ID. It returns early with
// ctx.Err() if ctx is done before the broker acknowledges.
func (p *AuditProducer) PublishAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	eventData, err := json.Marshal(newAuditLogEvent(entry))
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(entry.AuditLogID),
		Value: sarama.ByteEncoder(eventData),
	}

	type result struct {
		partition int32
		offset    int64
		err       error
	}
	resultCh := make(chan result, 1)

	go func() {
		partition, offset, err := p.producer.SendMessage(msg)
		resultCh <- result{partition, offset, err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return fmt.Errorf("send audit event %s: %w", entry.AuditLogID, res.err)
		}
		p.log.Debug("Audit event published",
			slog.String("audit_log_id", entry.AuditLogID),
			slog.Int("partition", int(res.partition)),
			slog.Int64("offset", res.offset))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *AuditProducer) Close() error {
	if p.producer == nil {
		return nil
	}
	p.log.Info("Closing kafka audit producer")
	return p.producer.Close()
}

// NoOpPublisher is used when no brokers are configured.
type NoOpPublisher struct {
	log *slog.Logger
}

var _ events.AuditEventPublisher = (*NoOpPublisher)(nil)

func NewNoOpPublisher(log *slog.Logger) *NoOpPublisher {
	return &NoOpPublisher{log: log}
}

func (p *NoOpPublisher) PublishAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	p.log.Debug("Kafka disabled, audit event not published", slog.String("audit_log_id", entry.AuditLogID))
	return nil
}

func (p *NoOpPublisher) Close() error {
	return nil
}
