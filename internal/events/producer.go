package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	TopicAccountCreated = "account.created"
	TopicAccountDeleted = "account.deleted"
)

// AccountEvent is the lifecycle message other services consume. It never
// carries password material.
type AccountEvent struct {
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Producer publishes account lifecycle events. A nil *Producer is a valid
// no-op publisher, so the server can run without Kafka.
type Producer struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
}

func NewProducer(brokers []string, logger *zap.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return &Producer{producer: producer, logger: logger}, nil
}

func (p *Producer) AccountCreated(userID, email string) error {
	return p.publish(TopicAccountCreated, userID, email)
}

func (p *Producer) AccountDeleted(userID, email string) error {
	return p.publish(TopicAccountDeleted, userID, email)
}

func (p *Producer) publish(topic, userID, email string) error {
	if p == nil {
		return nil
	}

	event := AccountEvent{
		EventID:    uuid.New().String(),
		UserID:     userID,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(userID), // partition by user
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.Info("event published",
		zap.String("topic", topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
