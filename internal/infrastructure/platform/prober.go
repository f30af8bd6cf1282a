package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"lumora/internal/domain"
	"lumora/pkg/logger"
	"lumora/pkg/metrics"

	"golang.org/x/time/rate"
)

// Prober checks that a platform endpoint is reachable with the given key.
type Prober interface {
	Probe(ctx context.Context, platform domain.PlatformID, baseURL, apiKey string) error
}

// HTTPProber issues a rate-limited authenticated GET against the platform.
type HTTPProber struct {
	client      *http.Client
	logger      *logger.Logger
	metrics     *metrics.Metrics
	rateLimiter *rate.Limiter
}

func NewHTTPProber(timeout time.Duration, ratePerSecond int, logger *logger.Logger, metrics *metrics.Metrics) *HTTPProber {
	return &HTTPProber{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger:      logger,
		metrics:     metrics,
		rateLimiter: rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
	}
}

func (p *HTTPProber) Probe(ctx context.Context, platform domain.PlatformID, baseURL, apiKey string) error {
	start := time.Now()
	api := platform.String()

	if baseURL == "" {
		p.metrics.RecordProbeFailure(api, "missing_url")
		return fmt.Errorf("no endpoint configured for %s", platform)
	}

	if err := p.rateLimiter.Wait(ctx); err != nil {
		p.metrics.RecordProbeFailure(api, "rate_limit")
		return fmt.Errorf("rate limit exceeded: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		p.metrics.RecordProbeFailure(api, "request_creation")
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.metrics.RecordProbeFailure(api, "network_error")
		return fmt.Errorf("failed to reach %s: %w", baseURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	duration := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.metrics.RecordProbe(api, fmt.Sprintf("error_%d", resp.StatusCode), duration)
		return fmt.Errorf("%s returned status %d", baseURL, resp.StatusCode)
	}

	p.metrics.RecordProbe(api, "success", duration)

	p.logger.WithContext(ctx).WithFields(map[string]any{
		"platform": api,
		"url":      baseURL,
		"duration": duration,
	}).Debug("Platform endpoint reachable")

	return nil
}
