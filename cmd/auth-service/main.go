package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avorobeva/go-post-board/internal/auth/config"
	"github.com/avorobeva/go-post-board/internal/auth/limiter"
	"github.com/avorobeva/go-post-board/internal/auth/service"
	"github.com/avorobeva/go-post-board/internal/auth/storage/postgres"
	transport "github.com/avorobeva/go-post-board/internal/auth/transport/http"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting auth-service", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Подключение к БД c таймаутом.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := postgres.New(dbCtx, cfg.DB.DatabaseURL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer str.Close()
	log.Info("postgres_connected")

	// Сервис.
	srvc := service.New(str, cfg.Auth)

	// Ограничитель попыток входа — опционален.
	if cfg.Limiter.RedisURL != "" {
		lim, err := limiter.NewRedisLimiter(cfg.Limiter.RedisURL, "", cfg.Limiter.MaxAttempts, cfg.Limiter.Window)
		if err != nil {
			log.Error("limiter_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = lim.Close() }()
		srvc.SetLoginLimiter(lim)
		log.Info("login_limiter_enabled")
	}

	var ready atomic.Bool

	handlers := transport.NewHandlers(srvc)
	router := transport.NewRouter(handlers, transport.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Request,
		Ready:   &ready,
	})

	addr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", slog.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	ready.Store(true)

	// Ожидание сигнала завершения или фатальной ошибки сервера.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	ready.Store(false)

	// Graceful stop с таймаутом.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
	}

	log.Info("service_stopped")
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}
