package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"

	"fleet-monitor/reporting/internal/catalog"
	"fleet-monitor/reporting/internal/config"
	"fleet-monitor/reporting/internal/domain"
	"fleet-monitor/reporting/internal/logging"
	"fleet-monitor/reporting/internal/metrics"
	"fleet-monitor/reporting/internal/service"
	"fleet-monitor/reporting/internal/store"
	"fleet-monitor/reporting/internal/tracing"
	transport "fleet-monitor/reporting/internal/transport/http"
)

const serviceName = "fleet-reporting"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using system environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("service stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("vehicle catalog loaded",
		slog.String("source", cfg.CatalogSource),
		slog.Int("vehicles", cat.Len()),
	)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		m.CatalogVehicles.Set(float64(cat.Len()))
	}

	opts := []service.Option{service.WithMetrics(m)}
	if cfg.TracingEnabled {
		tp, err := tracing.NewProvider(os.Stderr, serviceName)
		if err != nil {
			return err
		}
		otel.SetTracerProvider(tp)
		opts = append(opts, service.WithTracerProvider(tp))
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				logger.Error("tracer shutdown failed", slog.String("error", err.Error()))
			}
		}()
		logger.Info("tracing enabled", slog.String("exporter", "stdout"))
	}

	svc := service.NewReportService(cat, logger, opts...)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           transport.NewRouter(svc, m, logger),
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}
	logger.Info("HTTP server shut down successfully")
	return nil
}

// loadCatalog reads the catalog once; source connections are closed as
// soon as the vehicles are in memory.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case config.SourceFile:
		return catalog.Load(ctx, store.NewFileStore(cfg.CatalogFile))

	case config.SourcePostgres:
		pg, err := store.NewPostgresStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer pg.Close()
		return catalog.Load(ctx, pg)

	case config.SourceRedis:
		rs, err := store.NewRedisStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer rs.Close()
		return catalog.Load(ctx, rs)

	default:
		return catalog.Load(ctx, catalog.Static(domain.DefaultVehicles))
	}
}
