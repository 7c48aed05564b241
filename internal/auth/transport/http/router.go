package http

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/avorobeva/go-post-board/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	Ready   *atomic.Bool // readiness-флаг процесса; nil означает "всегда готов".
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(h *Handlers, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.AuthBearer(),         // вынимаем Bearer токен в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	registerRoutes(root, h, opts.Ready)
	return root
}

// registerRoutes — единая точка регистрации всех эндпойнтов.
func registerRoutes(r chi.Router, h *Handlers, ready *atomic.Bool) {
	r.Post("/token", h.Token)
	r.Post("/users/", h.CreateUser)
	r.Get("/users/me/", h.Me)

	r.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if ready == nil || ready.Load() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})
	r.Handle("/metrics", promhttp.Handler())
}
