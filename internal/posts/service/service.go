// service содержит бизнес-логику posts-сервиса: создание и чтение постов
// и публикацию события о созданном посте в топик.
//
// Порядок side-эффектов фиксирован: сначала коммит записи в БД (источник
// истины), затем попытка публикации. Неудачная публикация логируется и
// не откатывает запись и не превращается в ошибку запроса.
package service

import (
	"context"

	"github.com/avorobeva/go-post-board/internal/posts/config"
	"github.com/avorobeva/go-post-board/internal/posts/models"
	"github.com/avorobeva/go-post-board/internal/posts/storage"

	"errors"
)

var (
	// ErrInvalidTitle — заголовок пустой или длиннее 200 символов.
	// Транспорт: HTTP 400.
	ErrInvalidTitle = errors.New("invalid title")

	// ErrInvalidContent — текст пустой или длиннее 5000 символов.
	// Транспорт: HTTP 400.
	ErrInvalidContent = errors.New("invalid content")

	// ErrPostNotFound — пост с указанным id не существует.
	// Транспорт: HTTP 404.
	ErrPostNotFound = errors.New("post not found")
)

// EventProducer публикует событие о созданном посте.
type EventProducer interface {
	PublishPostCreated(ctx context.Context, post *models.Post) error
}

// Service описывает бизнес-логику posts-сервиса.
type Service struct {
	storage  storage.Storage
	producer EventProducer // может быть nil, если публикация не сконфигурирована
	cfg      config.KafkaConfig
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, producer EventProducer, cfg config.KafkaConfig) *Service {
	return &Service{
		storage:  storage,
		producer: producer,
		cfg:      cfg,
	}
}
