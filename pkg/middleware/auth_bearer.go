package middleware

import (
	"context"
	"net/http"
	"strings"
)

// AuthBearer извлекает Bearer-токен из Authorization и кладёт "сырой" токен
// в контекст. Токен здесь не проверяется: его валидирует сам сервис
// (auth-service — библиотекой выпуска, posts-service — своим верификатором).
func AuthBearer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")

			if auth != "" {
				const prefix = "Bearer "
				if strings.HasPrefix(auth, prefix) && len(auth) > len(prefix) {
					token := strings.TrimSpace(auth[len(prefix):])

					if token != "" {
						ctx := context.WithValue(r.Context(), ctxKeyAuthToken{}, token)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AuthTokenFrom возвращает сырой Bearer-токен из контекста
// и признак его наличия.
func AuthTokenFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyAuthToken{}).(string)
	return v, ok && v != ""
}
