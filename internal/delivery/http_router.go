package delivery

import (
	"time"

	"lumora/internal/delivery/middleware"
	"lumora/pkg/logger"
	"lumora/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type HTTPRouter struct {
	handlers       *HTTPHandlers
	logger         *logger.Logger
	metrics        *metrics.Metrics
	gatherer       prometheus.Gatherer
	requestTimeout time.Duration
}

func NewHTTPRouter(
	handlers *HTTPHandlers,
	logger *logger.Logger,
	metrics *metrics.Metrics,
	gatherer prometheus.Gatherer,
	requestTimeout time.Duration,
) *HTTPRouter {
	return &HTTPRouter{
		handlers:       handlers,
		logger:         logger,
		metrics:        metrics,
		gatherer:       gatherer,
		requestTimeout: requestTimeout,
	}
}

func (r *HTTPRouter) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.Recovery(r.logger))
	router.Use(middleware.Metrics(r.metrics))
	router.Use(middleware.Timeout(r.requestTimeout))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}

	router.Use(cors.New(config))

	router.GET("/health", r.handlers.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/", r.handlers.GetAPIInfo)
		v1.GET("", r.handlers.GetAPIInfo)

		platforms := v1.Group("/platforms")
		{
			platforms.GET("", r.handlers.ListPlatforms)
			platforms.POST("/:platform/sync", r.handlers.SyncPlatform)
			platforms.GET("/:platform/sync", r.handlers.GetSyncStatus)
			platforms.GET("/:platform/campaigns/:id/metrics", r.handlers.GetCampaignMetrics)
		}

		v1.GET("/dashboard", r.handlers.GetDashboard)
		v1.GET("/compare", r.handlers.ComparePlatforms)
	}

	router.GET("/metrics", middleware.PrometheusHandler(r.gatherer))

	return router
}
