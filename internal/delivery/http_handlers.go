package delivery

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lumora/internal/domain"
	"lumora/internal/usecase"
	"lumora/pkg/logger"

	"github.com/gin-gonic/gin"
)

// handles HTTP requests
type HTTPHandlers struct {
	registry         *domain.Registry
	syncService      *usecase.SyncService
	platformService  *usecase.PlatformService
	dashboardService *usecase.DashboardService
	logger           *logger.Logger
}

// creates new HTTP handlers
func NewHTTPHandlers(
	registry *domain.Registry,
	syncService *usecase.SyncService,
	platformService *usecase.PlatformService,
	dashboardService *usecase.DashboardService,
	logger *logger.Logger,
) *HTTPHandlers {
	return &HTTPHandlers{
		registry:         registry,
		syncService:      syncService,
		platformService:  platformService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// ListPlatforms returns every platform, or only open-source ones with ?openSourceOnly=true
func (h *HTTPHandlers) ListPlatforms(c *gin.Context) {
	list := h.platformService.ListPlatforms(c.Query("openSourceOnly") == "true")
	c.JSON(http.StatusOK, list)
}

// SyncPlatform runs a sync with the credentials in the (optional) JSON body
// and stores the returned campaigns.
func (h *HTTPHandlers) SyncPlatform(c *gin.Context) {
	ctx := c.Request.Context()
	log := h.logger.WithContext(ctx)

	platform, ok := h.platformParam(c)
	if !ok {
		return
	}

	var creds domain.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Debug("Ignoring unreadable credentials body")
		creds = domain.Credentials{}
	}

	payload, err := h.syncService.Sync(ctx, platform, creds)
	if err != nil {
		h.writeError(c, platform, err, "Failed to sync platform")
		return
	}

	if err := h.dashboardService.StoreSynced(ctx, platform, payload.Synced); err != nil {
		// the sync itself succeeded; the dashboard just stays stale
		log.WithError(err).WithField("platform", platform).Warn("Failed to store synced campaigns")
	}

	c.JSON(http.StatusOK, payload)
}

// GetSyncStatus reports whether a platform has been synced
func (h *HTTPHandlers) GetSyncStatus(c *gin.Context) {
	platform, ok := h.platformParam(c)
	if !ok {
		return
	}

	status, err := h.platformService.SyncStatus(c.Request.Context(), platform)
	if err != nil {
		h.writeError(c, platform, err, "Failed to get sync status")
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *HTTPHandlers) GetCampaignMetrics(c *gin.Context) {
	platform, ok := h.platformParam(c)
	if !ok {
		return
	}
	campaignID := c.Param("id")

	creds := domain.Credentials{
		APIKey:      c.Query("apiKey"),
		APIURL:      c.Query("apiUrl"),
		SiteID:      c.Query("siteId"),
		ProjectID:   c.Query("projectId"),
		PublisherID: c.Query("publisherId"),
	}

	m, err := h.platformService.GetCampaignMetrics(c.Request.Context(), platform, campaignID, creds)
	if err != nil {
		h.writeError(c, platform, err, "Failed to get campaign metrics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"platform":   platform,
		"campaignId": campaignID,
		"metrics":    m,
	})
}

// GetDashboard returns campaigns and their summary, filtered by ?platform= and ?status=
func (h *HTTPHandlers) GetDashboard(c *gin.Context) {
	filter, ok := h.parseCampaignFilter(c)
	if !ok {
		return
	}

	view, err := h.dashboardService.Dashboard(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, filter.Platform, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"campaigns": view.Campaigns,
		"summary":   view.Summary,
		"total":     len(view.Campaigns),
		"source":    view.Source,
	})
}

// ComparePlatforms ranks ?platforms=a,b by ?metric= (spend by default)
func (h *HTTPHandlers) ComparePlatforms(c *gin.Context) {
	var platforms []domain.PlatformID
	for _, raw := range strings.Split(c.Query("platforms"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		platforms = append(platforms, domain.PlatformID(raw))
	}

	metric := c.DefaultQuery("metric", "spend")

	report, err := h.dashboardService.ComparePlatforms(c.Request.Context(), platforms, metric)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownMetric) {
			h.abort(c, http.StatusBadRequest, fmt.Sprintf("Unknown metric %q (use spend, roas, conversions or impressions)", metric))
			return
		}
		h.writeError(c, "", err, "Failed to compare platforms")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"metric":     report.Metric,
		"comparison": report.Comparison,
		"winner":     report.Winner,
		"source":     report.Source,
	})
}

func (h *HTTPHandlers) GetAPIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api_version": "v1",
		"service":     "Lumora",
		"version":     "1.0.0",
		"description": "Ad platform integrations: sync campaigns and aggregate their performance",
		"endpoints": gin.H{
			"platforms": gin.H{
				"path":        "/api/v1/platforms",
				"description": "List supported platforms",
				"parameters":  gin.H{"openSourceOnly": "Optional: true to list open-source platforms only"},
			},
			"sync": gin.H{
				"path":        "/api/v1/platforms/:platform/sync",
				"description": "POST runs a sync with optional JSON credentials, GET returns the sync status",
				"methods":     []string{"GET", "POST"},
			},
			"campaign_metrics": gin.H{
				"path":        "/api/v1/platforms/:platform/campaigns/:id/metrics",
				"description": "Fetch the metrics of one campaign",
			},
			"dashboard": gin.H{
				"path":        "/api/v1/dashboard",
				"description": "Campaigns plus totals",
				"parameters":  gin.H{"platform": "Optional: platform id or all", "status": "Optional: active, paused, completed, draft or all"},
			},
			"compare": gin.H{
				"path":        "/api/v1/compare",
				"description": "Rank platforms by a metric",
				"parameters":  gin.H{"platforms": "Optional: comma separated ids", "metric": "spend, roas, conversions or impressions"},
				"example":     "/api/v1/compare?platforms=meta,google&metric=roas",
			},
		},
	})
}

// HealthCheck returns the health status of the service
func (h *HTTPHandlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"service":    "lumora",
		"version":    "1.0.0",
		"request_id": c.GetString(string(logger.RequestIDKey)),
	})
}

func (h *HTTPHandlers) platformParam(c *gin.Context) (domain.PlatformID, bool) {
	platform, err := h.registry.Lookup(c.Param("platform"))
	if err != nil {
		h.abort(c, http.StatusBadRequest, "Invalid platform")
		return "", false
	}
	return platform, true
}

// "all" and empty both mean no filter
func (h *HTTPHandlers) parseCampaignFilter(c *gin.Context) (domain.CampaignFilter, bool) {
	var filter domain.CampaignFilter

	if raw := c.Query("platform"); raw != "" && raw != "all" {
		platform, err := h.registry.Lookup(raw)
		if err != nil {
			h.abort(c, http.StatusBadRequest, "Invalid platform")
			return filter, false
		}
		filter.Platform = platform
	}

	if raw := c.Query("status"); raw != "" && raw != "all" {
		status := domain.CampaignStatus(raw)
		if !status.Valid() {
			h.abort(c, http.StatusBadRequest, "Invalid status")
			return filter, false
		}
		filter.Status = status
	}

	return filter, true
}

// writeError maps domain errors to a status code and user-facing message
func (h *HTTPHandlers) writeError(c *gin.Context, platform domain.PlatformID, err error, fallback string) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrUnknownPlatform):
		h.abort(c, http.StatusBadRequest, "Invalid platform")
	case errors.Is(err, domain.ErrUnsupportedAuth):
		h.abort(c, http.StatusBadRequest, fmt.Sprintf("Platform %s requires OAuth authentication (coming soon)", platform))
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.abort(c, http.StatusBadRequest, fmt.Sprintf("Invalid credentials for platform %s", platform))
	case errors.Is(err, domain.ErrConnectionFailure):
		h.abort(c, http.StatusBadGateway, "Failed to connect to platform")
	case errors.Is(err, domain.ErrNotFound):
		h.abort(c, http.StatusNotFound, "Campaign not found")
	default:
		h.logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		h.abort(c, http.StatusInternalServerError, fallback)
	}
}

func (h *HTTPHandlers) abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":    false,
		"error":      message,
		"request_id": c.GetString(string(logger.RequestIDKey)),
	})
}
