package kafka

import (
	"context"
	"errors"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// Consumer читает топик постов и логирует полученные события.
// Персистенции на стороне консьюмера нет: событие никуда не пишется,
// обработка ограничивается записью в лог.
type Consumer struct {
	r   *kafka.Reader
	log *slog.Logger
}

// NewConsumer создаёт группового читателя топика.
func NewConsumer(brokers []string, topic, group string, log *slog.Logger) *Consumer {
	return &Consumer{
		r: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: group,
		}),
		log: log,
	}
}

// Run читает сообщения до отмены контекста.
func (c *Consumer) Run(ctx context.Context) {
	const op = "posts.kafka.Consumer.Run"

	for {
		m, err := c.r.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}

			c.log.Error("consume_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			continue
		}

		c.log.Info("post_event_received",
			slog.String("op", op),
			slog.String("key", string(m.Key)),
			slog.Int("bytes", len(m.Value)),
			slog.String("value", string(m.Value)),
		)
	}
}

// Close закрывает читателя.
func (c *Consumer) Close() error {
	return c.r.Close()
}
