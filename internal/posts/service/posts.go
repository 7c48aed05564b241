package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/avorobeva/go-post-board/internal/posts/models"
	"github.com/avorobeva/go-post-board/internal/posts/storage"
	logctx "github.com/avorobeva/go-post-board/pkg/log"

	"github.com/google/uuid"
)

const (
	maxTitleLen   = 200
	maxContentLen = 5000
)

// CreatePost сохраняет пост и публикует событие о его создании.
// author — subject проверенного токена; из тела запроса автор не берётся.
//
// Публикация выполняется после коммита, под собственным дедлайном, и
// её отказ не всплывает: пост уже записан, событие — лишь уведомление.
func (s *Service) CreatePost(ctx context.Context, author, title, content string) (*models.Post, error) {
	const op = "posts.service.CreatePost"

	lg := logctx.From(ctx)

	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTitle)
	}

	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > maxContentLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidContent)
	}

	post := &models.Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.producer != nil {
		// Дедлайн публикации отвязан от дедлайна запроса: даже мёртвый
		// брокер задержит ответ не дольше PublishTimeout.
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PublishTimeout)
		defer cancel()

		if err := s.producer.PublishPostCreated(pubCtx, post); err != nil {
			lg.Error("post_publish_failed",
				slog.String("op", op),
				slog.String("post_id", post.ID.String()),
				slog.String("err", err.Error()),
			)
		}
	}

	return post, nil
}

// PostByID возвращает пост по идентификатору.
func (s *Service) PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	const op = "posts.service.PostByID"

	post, err := s.storage.PostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

// ListPosts возвращает все посты, новые первыми.
func (s *Service) ListPosts(ctx context.Context) ([]models.Post, error) {
	const op = "posts.service.ListPosts"

	posts, err := s.storage.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

// PostsByAuthor возвращает посты автора, новые первыми.
func (s *Service) PostsByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	const op = "posts.service.PostsByAuthor"

	posts, err := s.storage.PostsByAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}
