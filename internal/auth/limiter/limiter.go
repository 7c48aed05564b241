package limiter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter — минимальный контракт ограничителя попыток входа.
// Окно фиксированное, счётчик ведётся по username независимо от того,
// существует ли такой пользователь: по ответу лимитера нельзя понять,
// есть ли учётная запись.
type LoginLimiter interface {
	// Allow регистрирует попытку входа и сообщает, не превышен ли лимит.
	Allow(ctx context.Context, username string) (bool, error)
	// Reset сбрасывает счётчик после успешного входа.
	Reset(ctx context.Context, username string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisLimiter struct {
	rdb         *redis.Client
	prefix      string
	maxAttempts int
	window      time.Duration
}

// NewRedisLimiter создаёт лимитер на Redis из URL (например, redis://host:6379/0).
// Если prefix пустой — используется "auth:login:".
func NewRedisLimiter(redisURL, prefix string, maxAttempts int, window time.Duration) (LoginLimiter, error) {
	if prefix == "" {
		prefix = "auth:login:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisLimiter{
		rdb:         rdb,
		prefix:      prefix,
		maxAttempts: maxAttempts,
		window:      window,
	}, nil
}

func (l *redisLimiter) key(username string) string { return l.prefix + username }

// Allow инкрементирует счётчик окна; TTL выставляется при первой попытке.
func (l *redisLimiter) Allow(ctx context.Context, username string) (bool, error) {
	key := l.key(username)

	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if n == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return false, err
		}
	}

	return n <= int64(l.maxAttempts), nil
}

func (l *redisLimiter) Reset(ctx context.Context, username string) error {
	return l.rdb.Del(ctx, l.key(username)).Err()
}

func (l *redisLimiter) Close() error {
	return l.rdb.Close()
}
