package eventpublisher

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/config"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
)

// Publisher writes lifecycle records to the lot events topic. Records are
// keyed by lot id so every record of one lot lands on one partition in
// order.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
}

// NewPublisher creates a Kafka publisher for lifecycle records.
func NewPublisher(cfg config.KafkaConfig, logger logger.Interface) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      logger,
	}
}

// Publish writes one lifecycle record.
func (p *Publisher) Publish(ctx context.Context, event eventv1.LotEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.TracerFromError(err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(event.LotID, 10)),
		Value: value,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "event_id", Value: event.ID},
			logger.Field{Key: "event_type", Value: event.Type},
			logger.Field{Key: "lot_id", Value: event.LotID},
		)
		return errors.NewErrorDetails("failed to publish lot event", string(errors.KafkaPublishError), "")
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
