package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Platform sync metrics
	PlatformSyncsTotal      *prometheus.CounterVec
	PlatformSyncDuration    *prometheus.HistogramVec
	PlatformSyncsInProgress prometheus.Gauge
	CampaignsSynced         *prometheus.CounterVec

	// Platform probe metrics
	PlatformProbeCalls    *prometheus.CounterVec
	PlatformProbeDuration *prometheus.HistogramVec
	PlatformProbeFailures *prometheus.CounterVec

	// Dashboard metrics
	DashboardQueries *prometheus.CounterVec
}

// registers every series on reg; pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		PlatformSyncsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_syncs_total",
				Help: "Total number of platform syncs by outcome",
			},
			[]string{"platform", "outcome"},
		),

		PlatformSyncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "platform_sync_duration_seconds",
				Help:    "Platform sync duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"platform"},
		),

		PlatformSyncsInProgress: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "platform_syncs_in_progress",
				Help: "Number of platform syncs currently in progress",
			},
		),

		CampaignsSynced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_campaigns_synced_total",
				Help: "Total number of campaigns returned by platform syncs",
			},
			[]string{"platform"},
		),

		PlatformProbeCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_probe_calls_total",
				Help: "Total number of platform connection probes",
			},
			[]string{"platform", "status"},
		),

		PlatformProbeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "platform_probe_duration_seconds",
				Help:    "Platform connection probe duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"platform"},
		),

		PlatformProbeFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_probe_failures_total",
				Help: "Total number of failed platform connection probes",
			},
			[]string{"platform", "error_type"},
		),

		DashboardQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_queries_total",
				Help: "Total number of dashboard queries by type and data source",
			},
			[]string{"query_type", "source"},
		),
	}
}

// HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Platform sync metrics
func (m *Metrics) RecordSync(platform, outcome string, duration time.Duration) {
	m.PlatformSyncsTotal.WithLabelValues(platform, outcome).Inc()
	m.PlatformSyncDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

func (m *Metrics) RecordCampaignsSynced(platform string, count int) {
	m.CampaignsSynced.WithLabelValues(platform).Add(float64(count))
}

// Probe metrics
func (m *Metrics) RecordProbe(platform, status string, duration time.Duration) {
	m.PlatformProbeCalls.WithLabelValues(platform, status).Inc()
	m.PlatformProbeDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

func (m *Metrics) RecordProbeFailure(platform, errorType string) {
	m.PlatformProbeFailures.WithLabelValues(platform, errorType).Inc()
}

func (m *Metrics) RecordDashboardQuery(queryType, source string) {
	m.DashboardQueries.WithLabelValues(queryType, source).Inc()
}

func (m *Metrics) IncSyncsInProgress() {
	m.PlatformSyncsInProgress.Inc()
}

func (m *Metrics) DecSyncsInProgress() {
	m.PlatformSyncsInProgress.Dec()
}

// HTTP requests in flight counter
func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// HTTP requests in flight counter
func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
