// service содержит бизнес-логику auth-сервиса:
// регистрацию и аутентификацию пользователей, выпуск и локальную проверку
// access-токенов, работу с хранилищем через интерфейсы пакета storage.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; экземпляр безопасен для
//     конкурентного использования при потокобезопасном storage.Storage.
//   - Секрет подписи — неизменяемое значение конфигурации, переданное при
//     создании Service; в одном процессе (и в одном тесте) может жить
//     несколько Service с разными секретами.
//   - Ошибки возвращаются обёрнутыми и маппятся транспортом на HTTP-статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/avorobeva/go-post-board/internal/auth/config"
	"github.com/avorobeva/go-post-board/internal/auth/limiter"
	"github.com/avorobeva/go-post-board/internal/auth/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Обе причины неразличимы в ответе, чтобы исключить перечисление
	// пользователей. Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен некорректен по формату или подписи.
	// Подпись чужим секретом сюда же: отдельной диагностики
	// "неверный секрет" нет. Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк (now >= exp).
	// Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrUserExists — username или email уже заняты.
	// Транспорт: HTTP 409.
	ErrUserExists = errors.New("username or email already registered")

	// ErrInvalidUsername — username не проходит валидацию.
	// Транспорт: HTTP 400.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidEmail — email имеет некорректный формат.
	// Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не удовлетворяет политике сложности.
	// Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой.
	// Транспорт: HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrTooManyAttempts — превышен лимит попыток входа.
	// Транспорт: HTTP 429.
	ErrTooManyAttempts = errors.New("too many login attempts")
)

// Service описывает бизнес-логику auth-сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
	limiter limiter.LoginLimiter // может быть nil, если лимитер не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// SetLoginLimiter устанавливает ограничитель попыток входа (опционально).
func (s *Service) SetLoginLimiter(l limiter.LoginLimiter) {
	s.limiter = l
}
