package storage

import (
	"context"
	"errors"

	"github.com/avorobeva/go-post-board/internal/auth/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByUsername находит пользователя по username.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	Close()
}
