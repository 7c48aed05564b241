package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/avorobeva/go-post-board/internal/auth/models"
	"github.com/avorobeva/go-post-board/internal/auth/storage"
	logctx "github.com/avorobeva/go-post-board/pkg/log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

// RegisterUser регистрирует нового пользователя.
// Пустая роль означает models.RoleUser.
func (s *Service) RegisterUser(ctx context.Context, username, email, password, role string) (*models.User, error) {
	const op = "auth.service.RegisterUser"

	username = strings.TrimSpace(username)
	if !usernameRe.MatchString(username) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidUsername)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if role == "" {
		role = models.RoleUser
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        normEmail,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// LoginUser выполняет вход по username+пароль и выпускает access-токен.
// Неизвестный username и неверный пароль возвращают одну и ту же ошибку.
func (s *Service) LoginUser(ctx context.Context, username, password string) (*models.AccessToken, error) {
	const op = "auth.service.LoginUser"

	lg := logctx.From(ctx)

	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// Недоступный лимитер не блокирует вход: доступность важнее
			// лимита, факт деградации фиксируем в логе.
			lg.Warn("login_limiter_unavailable",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else if !allowed {
			return nil, fmt.Errorf("%s: %w", op, ErrTooManyAttempts)
		}
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			lg.Warn("login_limiter_reset_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	now := time.Now().UTC()
	token, err := s.generateAccessToken(ctx, user.Username, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AccessToken{
		Token:     token,
		ExpiresAt: now.Add(s.cfg.AccessTokenTTL),
	}, nil
}

// CurrentUser проверяет access-токен и возвращает пользователя из subject.
func (s *Service) CurrentUser(ctx context.Context, accessToken string) (*models.User, error) {
	const op = "auth.service.CurrentUser"

	username, err := s.validateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Токен валиден, но учётной записи уже нет.
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "auth.service.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
// bcrypt.CompareHashAndPassword не завершается раньше на несовпадении,
// тайминг ответа не выдаёт, в каком месте пароль разошёлся.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	const op = "auth.service.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика по умолчанию: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	const op = "auth.service.validatePassword"

	if len(pw) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}
