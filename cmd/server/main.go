package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/config"  // Environment config loader
	"github.com/iliyamo/renttrack/internal/events"  // RabbitMQ publisher and log consumer
	"github.com/iliyamo/renttrack/internal/handler" // HTTP handlers
	"github.com/iliyamo/renttrack/internal/kv"      // Settings storage
	"github.com/iliyamo/renttrack/internal/logger"  // zap setup
	"github.com/iliyamo/renttrack/internal/mockapi" // Simulated backend
	"github.com/iliyamo/renttrack/internal/router"  // Route table
)

func main() {
	cfg, err := config.Load() // Load environment config
	if err != nil {
		panic(err)
	}
	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeKV, err := kv.Open(ctx, cfg) // memory, file, redis or mysql
	if err != nil {
		return err
	}
	defer func() { _ = closeKV() }()

	opts, err := mockapi.OptionsFromConfig(cfg, log)
	if err != nil {
		return err
	}
	opts.KV = store

	if cfg.Events.Enabled {
		pub := events.NewAMQPPublisher(cfg.RabbitMQURL, cfg.Events.Queue, log)
		defer func() { _ = pub.Close() }()
		opts.Publisher = pub

		if cfg.Events.Consume {
			consumer := &events.Consumer{URL: cfg.RabbitMQURL, Queue: cfg.Events.Queue, Dir: cfg.Events.LogDir, Log: log}
			go func() {
				if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("events consumer stopped", zap.Error(err))
				}
			}()
		}
	}

	facade, err := mockapi.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = facade.Close() }()

	e := router.New(handler.New(facade), facade, log) // Register application routes

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.String("kv", cfg.KVBackend))

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
