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

	"github.com/avorobeva/go-post-board/internal/posts/config"
	"github.com/avorobeva/go-post-board/internal/posts/kafka"
	"github.com/avorobeva/go-post-board/internal/posts/service"
	"github.com/avorobeva/go-post-board/internal/posts/storage/postgres"
	"github.com/avorobeva/go-post-board/internal/posts/token"
	transport "github.com/avorobeva/go-post-board/internal/posts/transport/http"
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
	log.Info("starting posts-service", "env", cfg.Env)

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

	// Топик создаётся на старте: один partition, одна replica.
	topicCtx, topicCancel := context.WithTimeout(rootCtx, 10*time.Second)
	err = kafka.EnsureTopic(topicCtx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
	topicCancel()
	if err != nil {
		// Недоступный брокер не мешает стартовать: публикация best-effort.
		log.Warn("kafka_topic_ensure_failed", slog.String("err", err.Error()))
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer func() { _ = producer.Close() }()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup, log)
	defer func() { _ = consumer.Close() }()
	go consumer.Run(rootCtx)

	// Сервис и верификатор токенов.
	srvc := service.New(str, producer, cfg.Kafka)
	verifier := token.NewVerifier(cfg.Auth.JWTSecret)

	var ready atomic.Bool

	handlers := transport.NewHandlers(srvc, verifier)
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
