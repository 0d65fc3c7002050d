package consumer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
	historyv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/history/v1"
	"github.com/muhammadchandra19/auctionhouse/internal/infrastructure/postgresql/lotevent"
	"github.com/muhammadchandra19/auctionhouse/pkg/config"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
	"github.com/muhammadchandra19/auctionhouse/pkg/postgresql"
)

// LotEventConsumer drains the lot events topic into postgres.
type LotEventConsumer struct {
	kafkaReader *kafka.Reader

	historyUsecase historyv1.Usecase
	logger         logger.Interface

	msgChan chan kafka.Message
	dbTx    postgresql.Transaction
}

// NewLotEventConsumer creates a new LotEventConsumer.
func NewLotEventConsumer(
	config config.KafkaConfig,
	historyUsecase historyv1.Usecase,
	logger logger.Interface,
	dbTx postgresql.Transaction,
) *LotEventConsumer {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	return &LotEventConsumer{
		kafkaReader:    kafkaReader,
		historyUsecase: historyUsecase,
		logger:         logger,
		dbTx:           dbTx,
		msgChan:        make(chan kafka.Message),
	}
}

// Start starts the LotEventConsumer.
func (c *LotEventConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "starting lot event consumer", logger.Field{
		Key:   "action",
		Value: "lot_event_consumer_start",
	})

	defer close(c.msgChan)

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "context done", logger.Field{
				Key:   "action",
				Value: "lot_event_consumer_stop",
			})
			return
		default:
			msg, err := c.kafkaReader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.ErrorContext(ctx, err, logger.Field{
					Key:   "action",
					Value: "read_message",
				})
				continue
			}

			c.msgChan <- msg
		}
	}
}

// Stop stops the LotEventConsumer.
func (c *LotEventConsumer) Stop() error {
	c.logger.InfoContext(context.Background(), "stopping lot event consumer", logger.Field{
		Key:   "action",
		Value: "lot_event_consumer_stop",
	})
	return c.kafkaReader.Close()
}

// Subscribe subscribes to the LotEventConsumer.
func (c *LotEventConsumer) Subscribe(ctx context.Context) {
	c.logger.InfoContext(ctx, "subscribing to lot event consumer", logger.Field{
		Key:   "action",
		Value: "lot_event_consumer_subscribe",
	})

	for msg := range c.msgChan {
		var record eventv1.LotEvent
		if err := json.Unmarshal(msg.Value, &record); err != nil {
			// TODO: route undecodable messages to a dead letter topic
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "unmarshal_record",
			})

			continue
		}

		if err := c.handleRecord(ctx, &record); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "handle_record",
			})

			continue
		}

		if err := c.kafkaReader.CommitMessages(ctx, msg); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "commit_message",
			})
		}
	}
}

func (c *LotEventConsumer) handleRecord(ctx context.Context, record *eventv1.LotEvent) error {
	txCtx, err := c.dbTx.Begin(ctx)
	if err != nil {
		return err
	}

	defer c.dbTx.Rollback(txCtx)

	row := &lotevent.LotEvent{}
	row.FromRecord(*record)

	if err := c.historyUsecase.StoreRecord(txCtx, row); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "store_record",
		})

		return err
	}

	if err := c.dbTx.Commit(txCtx); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "commit_transaction",
		})

		return err
	}

	return nil
}
