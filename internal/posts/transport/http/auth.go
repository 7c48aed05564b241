package http

import (
	"context"
	"net/http"

	"github.com/avorobeva/go-post-board/pkg/httperr"
	"github.com/avorobeva/go-post-board/pkg/middleware"
)

type ctxKeyPrincipal struct{}

// Authenticate проверяет Bearer-токен верификатором сервиса и кладёт
// subject в контекст как принципала запроса. Отсутствие токена, битая
// подпись и истёкший срок дают одинаковый 401.
//
// Принятый subject действует до конца запроса: повторных обращений к
// auth-сервису нет, им же штампуется автор создаваемого поста.
func (h *Handlers) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := middleware.AuthTokenFrom(r.Context())
		if !ok {
			httperr.Unauthenticated(w, r)
			return
		}

		subject, err := h.verifier.Subject(raw)
		if err != nil {
			httperr.Unauthenticated(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyPrincipal{}, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalFrom возвращает аутентифицированного принципала запроса.
func principalFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyPrincipal{}).(string)
	return v, ok && v != ""
}
