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
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.AuthBearer(), // сырой Bearer токен в контекст; проверит Authenticate
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	registerRoutes(root, h, opts.Ready)
	return root
}

// registerRoutes — единая точка регистрации всех эндпойнтов.
// Чтение публичное, запись и "мои посты" — только с валидным токеном.
func registerRoutes(r chi.Router, h *Handlers, ready *atomic.Bool) {
	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Get("/by-author/{author}", h.PostsByAuthor)
		r.Get("/{id}", h.PostByID)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)
			r.Post("/", h.CreatePost)
			r.Get("/my-posts", h.MyPosts)
		})
	})

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
