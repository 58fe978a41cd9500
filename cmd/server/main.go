package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	mealmetrics "mealog/internal/meals/metrics"
	"mealog/internal/meals/service"
	"mealog/internal/meals/store"
	"mealog/internal/platform/config"
	"mealog/internal/platform/httpserver"
	"mealog/internal/platform/logger"
	"mealog/internal/platform/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("mealog stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	var closers closerStack
	defer closers.closeAll(log)

	blobs, err := buildBlobStore(ctx, cfg, &closers)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	publisher, err := buildPublisher(ctx, cfg.Kafka, &closers)
	if err != nil {
		return fmt.Errorf("init change feed: %w", err)
	}

	records := service.New(store.New(blobs),
		service.WithLogger(log),
		service.WithMetrics(mealmetrics.New(prometheus.DefaultRegisterer)),
		service.WithPublisher(publisher),
		service.WithDefaultTimeLabel(cfg.DefaultTimeLabel),
	)

	router := newRouter(records, log, metrics.New(prometheus.DefaultRegisterer))
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// readyz reports 503 until this returns
		return records.Initialize(gctx)
	})
	g.Go(func() error {
		log.Info("starting mealog", "addr", cfg.Addr, "storage", cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down mealog")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}
