package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lumora/internal/delivery"
	"lumora/internal/domain"
	"lumora/internal/infrastructure"
	"lumora/internal/infrastructure/platform"
	"lumora/internal/scheduler"
	"lumora/internal/usecase"
	"lumora/pkg/config"
	"lumora/pkg/logger"
	"lumora/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info("Starting server")

	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}
	log.Info("Server stopped")
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	registry := domain.DefaultRegistry()

	clientOpts := []platform.Option{
		platform.WithMetricsSource(platform.NewRandomMetricsGenerator()),
	}
	if cfg.Sync.LiveChecks {
		prober := platform.NewHTTPProber(cfg.Sync.ProbeTimeout, cfg.Sync.ProbeRateLimit, log, m)
		clientOpts = append(clientOpts, platform.WithProber(prober))
		log.Info("Live connection checks enabled")
	}

	factory := platform.NewFactory(registry,
		platform.WithDefaultCredentials(domain.Credentials{
			APIKey:      cfg.Demo.APIKey,
			APIURL:      cfg.Demo.APIURL,
			SiteID:      cfg.Demo.SiteID,
			ProjectID:   cfg.Demo.ProjectID,
			PublisherID: cfg.Demo.PublisherID,
		}),
		platform.WithStrictCredentials(cfg.Sync.StrictCredentials),
		platform.WithClientOptions(clientOpts...),
	)

	campaigns, closeStore, err := openCampaignStore(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer closeStore()

	syncService := usecase.NewSyncService(registry, factory, log, m, cfg.Sync.CallTimeout)
	platformService := usecase.NewPlatformService(registry, factory, campaigns, log)
	dashboardService := usecase.NewDashboardService(
		registry,
		campaigns,
		usecase.DemoSource(infrastructure.DemoCampaigns),
		log,
		m,
	)

	job, err := scheduler.NewPlatformSyncJob(cfg.Scheduler, registry, domain.Credentials{}, syncService, dashboardService, log, cfg.Sync.CallTimeout)
	if err != nil {
		return err
	}
	if err := job.Start(ctx); err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	handlers := delivery.NewHTTPHandlers(registry, syncService, platformService, dashboardService, log)
	router := delivery.NewHTTPRouter(handlers, log, m, reg, cfg.Server.RequestTimeout).SetupRoutes()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Server.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// Redis when REDIS_URL is set, memory otherwise
func openCampaignStore(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (domain.CampaignRepository, func(), error) {
	if cfg.RedisURL == "" {
		log.Info("Using in-memory campaign store")
		return infrastructure.NewCampaignRepository(log), func() {}, nil
	}

	client, err := infrastructure.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Using Redis campaign store")

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Redis client")
		}
	}
	return infrastructure.NewRedisCampaignRepository(client, cfg.CampaignTTL, log), closeFn, nil
}
