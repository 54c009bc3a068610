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
	"time"

	charmlog "charm.land/log/v2"
	kitlog "github.com/go-kit/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/hicampus/hicampus/cockroach"
	"github.com/hicampus/hicampus/cockroach/migrator"
	"github.com/hicampus/hicampus/config"
	"github.com/hicampus/hicampus/metrics"
	"github.com/hicampus/hicampus/service"
	httptransport "github.com/hicampus/hicampus/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	errLogger := slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	}))
	infoLogger := slog.New(charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
	}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := pgxpool.New(ctx, cfg.CockroachURL)
	if err != nil {
		return fmt.Errorf("open cockroach connection pool: %w", err)
	}

	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		return fmt.Errorf("ping cockroach: %w", err)
	}

	migrationStart := time.Now()
	infoLogger.Info("starting cockroach migrations")

	if err := migrator.Migrate(ctx, dbPool, cockroach.MigrationsFS); err != nil {
		return fmt.Errorf("migrate cockroach schema: %w", err)
	}

	infoLogger.Info("finished cockroach migrations", "took", time.Since(migrationStart))

	m := metrics.New()
	svc := service.New(service.Config{
		Store:    cockroach.New(dbPool),
		Metrics:  m,
		TokenKey: cfg.TokenKey,
		TokenTTL: cfg.TokenTTL,
	})

	httpLogger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	httpLogger = kitlog.With(httpLogger, "ts", kitlog.DefaultTimestampUTC)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           httptransport.New(svc, httpLogger, m),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		infoLogger.Info("starting hicampus server", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start hicampus server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		infoLogger.Info("shutting down hicampus server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			errLogger.Error("shutdown hicampus server", "error", err)
			return fmt.Errorf("shutdown hicampus server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
