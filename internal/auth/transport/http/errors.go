package http

import (
	"errors"
	"net/http"

	"github.com/avorobeva/go-post-board/internal/auth/service"
	"github.com/avorobeva/go-post-board/pkg/httperr"
)

// writeServiceError маппит ошибки бизнес-слоя на HTTP-статусы.
// Все три причины отказа в аутентификации (неверные креды, битый токен,
// просроченный токен) дают одинаковый 401: тело не различает причину.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired):
		httperr.Unauthenticated(w, r)
	case errors.Is(err, service.ErrUserExists):
		httperr.Write(w, r, http.StatusConflict, "already_exists", "username or email already registered")
	case errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrEmptyPassword):
		httperr.InvalidArgument(w, r)
	case errors.Is(err, service.ErrTooManyAttempts):
		httperr.Write(w, r, http.StatusTooManyRequests, "resource_exhausted", "too many attempts")
	default:
		httperr.Internal(w, r)
	}
}
