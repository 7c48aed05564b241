package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// EnsureTopic создаёт топик постов на брокере, если его ещё нет.
// Один partition и одна replica — конфигурация одноброкерного стенда.
func EnsureTopic(ctx context.Context, brokers []string, topic string) error {
	const op = "posts.kafka.EnsureTopic"

	client := &kafka.Client{Addr: kafka.TCP(brokers...)}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if terr := resp.Errors[topic]; terr != nil && !errors.Is(terr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("%s: %w", op, terr)
	}

	return nil
}
