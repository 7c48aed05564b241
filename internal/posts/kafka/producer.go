// kafka — публикация событий о созданных постах и log-only консьюмер.
// Публикация best-effort: запись в БД — источник истины, событие — лишь
// уведомление. Отказ брокера фиксируется в логе и метрике, но никогда
// не всплывает как ошибка запроса.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avorobeva/go-post-board/internal/posts/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var publishTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "posts_publish_total",
		Help: "Post event publish attempts by result.",
	},
	[]string{"result"},
)

// postEvent — полезная нагрузка события в топике.
// Форма повторяет ответ POST /api/posts; поля версии у события нет.
type postEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Producer пишет события в топик постов.
type Producer struct {
	w *kafka.Writer
}

// NewProducer создаёт писатель в указанный топик.
// Подтверждение — один лидер (RequireOne): доставка at-most-once,
// ретраев поверх клиентских дефолтов нет.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// PublishPostCreated сериализует пост в JSON и отправляет в топик.
// Ключ сообщения — id поста. Дедлайн берётся из ctx: вызывающая сторона
// обязана ограничить время публикации.
func (p *Producer) PublishPostCreated(ctx context.Context, post *models.Post) error {
	const op = "posts.kafka.PublishPostCreated"

	value, err := json.Marshal(postEvent{
		ID:        post.ID.String(),
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		CreatedAt: post.CreatedAt,
	})
	if err != nil {
		publishTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(post.ID.String()),
		Value: value,
	})
	if err != nil {
		publishTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}

	publishTotal.WithLabelValues("sent").Inc()
	return nil
}

// Close закрывает писатель.
func (p *Producer) Close() error {
	return p.w.Close()
}
