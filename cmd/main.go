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

	"golang.org/x/sync/errgroup"

	"crowdfund/internal/adapter/broadcast"
	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// main is the entry point of the crowdfund ledger. It loads configuration,
// picks the storage backend (optionally migrating PostgreSQL first), wires
// the use case to the event stream hub and serves HTTP until a termination
// signal arrives.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("ledger stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("ledger stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	var repo port.LedgerRepository
	switch cfg.Ledger.StorageBackend() {
	case configs.StoragePostgres:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		repo = postgres.NewLedgerRepository(pool)
	default:
		logger.Warn("using in-memory storage; ledger state is lost on exit")
		repo = memory.NewLedgerRepository()
	}

	hub := broadcast.NewHub(logger, cfg.Ledger.StreamBuffer, cfg.Ledger.StreamWriteTimeout)
	svc := usecase.NewLedgerUseCase(repo,
		usecase.WithPublisher(hub),
		usecase.WithLogger(logger),
	)

	if cfg.Ledger.Seed {
		if err := db.Seed(ctx, svc); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo campaigns seeded")
	}

	handler := httpadapter.NewHandler(svc, hub, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
