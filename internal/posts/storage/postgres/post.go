package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avorobeva/go-post-board/internal/posts/models"
	"github.com/avorobeva/go-post-board/internal/posts/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SavePost создает новый пост в БД.
func (s *Storage) SavePost(ctx context.Context, post *models.Post) error {
	const op = "posts.storage.postgres.SavePost"

	query := `
		INSERT INTO posts(id, title, content, author, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.Author,
		post.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PostByID находит пост по ID.
func (s *Storage) PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	const op = "posts.storage.postgres.PostByID"

	query := `
		SELECT id, title, content, author, created_at
		FROM posts
		WHERE id = $1
	`

	var post models.Post
	err := s.db.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Author,
		&post.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &post, nil
}

// ListPosts возвращает все посты, новые первыми.
func (s *Storage) ListPosts(ctx context.Context) ([]models.Post, error) {
	const op = "posts.storage.postgres.ListPosts"

	query := `
		SELECT id, title, content, author, created_at
		FROM posts
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanPosts(rows, op)
}

// PostsByAuthor возвращает посты автора, новые первыми.
func (s *Storage) PostsByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	const op = "posts.storage.postgres.PostsByAuthor"

	query := `
		SELECT id, title, content, author, created_at
		FROM posts
		WHERE author = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.Query(ctx, query, author)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanPosts(rows, op)
}

func scanPosts(rows pgx.Rows, op string) ([]models.Post, error) {
	posts := make([]models.Post, 0)

	for rows.Next() {
		var post models.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.Author,
			&post.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}
