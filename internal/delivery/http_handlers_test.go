package delivery

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lumora/internal/domain"
	"lumora/internal/infrastructure"
	"lumora/internal/infrastructure/platform"
	"lumora/internal/usecase"
	"lumora/pkg/logger"
	"lumora/pkg/metrics"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	gin.SetMode(gin.TestMode)
}

type failingProber struct{}

func (failingProber) Probe(context.Context, domain.PlatformID, string, string) error {
	return errors.New("dial tcp: connection refused")
}

func newTestRouter(t *testing.T, factoryOpts ...platform.FactoryOption) *gin.Engine {
	t.Helper()

	log := logger.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	registry := domain.DefaultRegistry()
	factory := platform.NewFactory(registry, factoryOpts...)
	repo := infrastructure.NewCampaignRepository(log)

	handlers := NewHTTPHandlers(
		registry,
		usecase.NewSyncService(registry, factory, log, m, time.Second),
		usecase.NewPlatformService(registry, factory, repo, log),
		usecase.NewDashboardService(registry, repo, usecase.DemoSource(infrastructure.DemoCampaigns), log, m),
		log,
	)
	return NewHTTPRouter(handlers, log, m, reg, 5*time.Second).SetupRoutes()
}

func serve(router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "lumora", body["service"])
	assert.NotEmpty(t, body["request_id"])
}

func TestGetAPIInfo(t *testing.T) {
	w := serve(newTestRouter(t), http.MethodGet, "/api/v1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "endpoints")
}

func TestListPlatforms(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name           string
		target         string
		wantTotal      float64
		wantOpenSource float64
	}{
		{"all", "/api/v1/platforms", 10, 5},
		{"open source only", "/api/v1/platforms?openSourceOnly=true", 5, 5},
		{"flag not true", "/api/v1/platforms?openSourceOnly=yes", 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusOK, w.Code)

			body := decode(t, w)
			assert.Equal(t, tt.wantTotal, body["total"])
			assert.Equal(t, tt.wantOpenSource, body["openSourceCount"])
			assert.Len(t, body["platforms"], int(tt.wantTotal))
		})
	}
}

func TestSyncPlatform(t *testing.T) {
	tests := []struct {
		name        string
		platform    string
		body        string
		factoryOpts []platform.FactoryOption
		wantStatus  int
		wantError   string
	}{
		{name: "with credentials", platform: "revive", body: `{"apiUrl":"https://ads.example.com","apiKey":"k"}`, wantStatus: http.StatusOK},
		{name: "empty body uses demo credentials", platform: "plausible", wantStatus: http.StatusOK},
		{name: "malformed body ignored", platform: "posthog", body: `{not json`, wantStatus: http.StatusOK},
		{name: "unknown platform", platform: "friendster", wantStatus: http.StatusBadRequest, wantError: "Invalid platform"},
		{name: "oauth platform", platform: "tiktok", body: `{"apiKey":"k"}`, wantStatus: http.StatusBadRequest, wantError: "Platform tiktok requires OAuth authentication (coming soon)"},
		{
			name:        "strict missing fields",
			platform:    "matomo",
			body:        `{"apiKey":"k"}`,
			factoryOpts: []platform.FactoryOption{platform.WithStrictCredentials(true)},
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid credentials for platform matomo",
		},
		{
			name:        "connection failure",
			platform:    "ethicalads",
			factoryOpts: []platform.FactoryOption{platform.WithClientOptions(platform.WithProber(failingProber{}))},
			wantStatus:  http.StatusBadGateway,
			wantError:   "Failed to connect to platform",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, tt.factoryOpts...)

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			w := serve(router, http.MethodPost, "/api/v1/platforms/"+tt.platform+"/sync", body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			resp := decode(t, w)
			if tt.wantError != "" {
				assert.Equal(t, false, resp["success"])
				assert.Equal(t, tt.wantError, resp["error"])
				assert.NotEmpty(t, resp["request_id"])
				return
			}

			assert.Equal(t, true, resp["success"])
			assert.Len(t, resp["campaigns"], 2)
			assert.NotContains(t, resp, "Synced")
			cfg := resp["platform"].(map[string]any)
			assert.Equal(t, tt.platform, cfg["id"])
		})
	}
}

func TestSyncThenStatusAndDashboard(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodGet, "/api/v1/platforms/revive/sync", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecase.StatusNeverSynced, decode(t, w)["status"])

	w = serve(router, http.MethodPost, "/api/v1/platforms/revive/sync", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/api/v1/platforms/revive/sync", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode(t, w)
	assert.Equal(t, usecase.StatusReady, status["status"])
	assert.Equal(t, true, status["connected"])
	assert.NotNil(t, status["lastSync"])

	w = serve(router, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode(t, w)
	assert.Equal(t, usecase.SourceStore, dash["source"])
	assert.Equal(t, 2.0, dash["total"])
}

func TestGetSyncStatus_OAuth(t *testing.T) {
	w := serve(newTestRouter(t), http.MethodGet, "/api/v1/platforms/meta/sync", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecase.StatusOAuthRequired, decode(t, w)["status"])
}

func TestGetCampaignMetrics(t *testing.T) {
	router := newTestRouter(t)

	t.Run("found", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/v1/platforms/revive/campaigns/revive-1/metrics?apiKey=k&apiUrl=https://ads.example.com", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decode(t, w)
		assert.Equal(t, "revive-1", body["campaignId"])
		m := body["metrics"].(map[string]any)
		assert.Contains(t, m, "spend")
		assert.Contains(t, m, "roas")
	})

	t.Run("missing campaign", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/v1/platforms/revive/campaigns/nope/metrics", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("oauth platform", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/v1/platforms/google/campaigns/1/metrics", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetDashboard(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantTotal  float64
	}{
		{"demo dataset", "", http.StatusOK, 10},
		{"all is no filter", "?platform=all&status=all", http.StatusOK, 10},
		{"platform and status", "?platform=google&status=paused", http.StatusOK, 1},
		{"platform only", "?platform=meta", http.StatusOK, 5},
		{"bad status", "?status=archived", http.StatusBadRequest, 0},
		{"bad platform", "?platform=myspace", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, "/api/v1/dashboard"+tt.query, nil)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			body := decode(t, w)
			assert.Equal(t, tt.wantTotal, body["total"])
			assert.Equal(t, usecase.SourceDemo, body["source"])
			assert.Contains(t, body, "summary")
		})
	}
}

func TestComparePlatforms(t *testing.T) {
	router := newTestRouter(t)

	t.Run("spend", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/v1/compare?platforms=google,meta", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decode(t, w)
		assert.Equal(t, "spend", body["metric"])
		assert.Equal(t, "meta", body["winner"])
		assert.Len(t, body["comparison"], 2)
	})

	t.Run("unknown metric", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/v1/compare?metric=likes", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown metric")
	})

	t.Run("unknown platform", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/v1/compare?platforms=meta,orkut", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	serve(router, http.MethodGet, "/health", nil)

	w := serve(router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
