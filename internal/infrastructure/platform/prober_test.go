package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lumora/internal/domain"
	"lumora/pkg/logger"
	"lumora/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProber(t *testing.T) (*HTTPProber, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return NewHTTPProber(time.Second, 100, logger.NewNop(), m), m
}

func TestHTTPProber_Success(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p, m := newTestProber(t)

	err := p.Probe(context.Background(), domain.PlatformPlausible, server.URL, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer k1", gotAuth)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlatformProbeCalls.WithLabelValues("plausible", "success")))
}

func TestHTTPProber_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	p, m := newTestProber(t)

	err := p.Probe(context.Background(), domain.PlatformMatomo, server.URL, "bad")
	assert.ErrorContains(t, err, "status 401")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlatformProbeCalls.WithLabelValues("matomo", "error_401")))
}

func TestHTTPProber_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p, m := newTestProber(t)

	err := p.Probe(context.Background(), domain.PlatformRevive, url, "k")
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlatformProbeFailures.WithLabelValues("revive", "network_error")))
}

func TestHTTPProber_MissingURL(t *testing.T) {
	p, m := newTestProber(t)

	err := p.Probe(context.Background(), domain.PlatformRevive, "", "k")
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlatformProbeFailures.WithLabelValues("revive", "missing_url")))
}

func TestHTTPProber_WiredIntoClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p, _ := newTestProber(t)
	c := NewMatomoClient("1", "k", server.URL, WithProber(p))

	ok, err := c.TestConnection(context.Background())
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrConnectionFailure)
}
