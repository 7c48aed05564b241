package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	logctx "github.com/avorobeva/go-post-board/pkg/log"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims — клеймы access-токена: только sub/iat/exp.
// Набор сознательно минимальный и общий с posts-сервисом: любой клейм,
// который проверяет лишь одна из сторон, ломает инвариант
// "оба верификатора дают одинаковый вердикт для любого входа".
type accessClaims struct {
	jwt.RegisteredClaims
}

// generateAccessToken подписывает клеймы {sub: username, iat: now, exp: now+TTL}
// секретом процесса (HS256) и возвращает токен строкой.
func (s *Service) generateAccessToken(ctx context.Context, username string, now time.Time) (string, error) {
	const op = "auth.service.token.generateAccessToken"

	lg := logctx.From(ctx)

	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		lg.Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// validateAccessToken проверяет подпись (только HS256) и срок действия токена,
// возвращает subject. Сравнение exp инклюзивное и без leeway: токен с
// exp == now уже просрочен — ровно так же считает верификатор posts-сервиса.
func (s *Service) validateAccessToken(tokenStr string) (string, error) {
	const op = "auth.service.token.validateAccessToken"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims.Subject, nil
}
