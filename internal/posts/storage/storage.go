package storage

import (
	"context"
	"errors"

	"github.com/avorobeva/go-post-board/internal/posts/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (id).
	ErrAlreadyExists = errors.New("already exists")
)

// PostStorage выполняет операции над постами.
type PostStorage interface {
	// SavePost создает новый пост в БД.
	SavePost(ctx context.Context, post *models.Post) error
	// PostByID находит пост по ID.
	PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	// ListPosts возвращает все посты, новые первыми.
	ListPosts(ctx context.Context) ([]models.Post, error)
	// PostsByAuthor возвращает посты автора, новые первыми.
	PostsByAuthor(ctx context.Context, author string) ([]models.Post, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	PostStorage
	Close()
}
