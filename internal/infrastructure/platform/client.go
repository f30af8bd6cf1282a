package platform

import (
	"context"
	"fmt"
	"time"

	"lumora/internal/domain"
)

// campaignSeed is the fixed identity of a campaign a platform reports.
type campaignSeed struct {
	id         string
	externalID string
	name       string
	status     domain.CampaignStatus
}

// client carries the behavior every platform variant shares. Variants only
// contribute identity fields and their campaign seeds.
type client struct {
	platform    domain.PlatformID
	displayName string
	baseURL     string
	apiKey      string
	seeds       []campaignSeed

	metrics domain.MetricsSource
	prober  Prober
	now     func() time.Time
}

type Option func(*client)

func WithMetricsSource(source domain.MetricsSource) Option {
	return func(c *client) {
		if source != nil {
			c.metrics = source
		}
	}
}

// WithProber enables live connection checks.
func WithProber(p Prober) Option {
	return func(c *client) {
		c.prober = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *client) {
		if now != nil {
			c.now = now
		}
	}
}

func newClient(platform domain.PlatformID, displayName, baseURL, apiKey string, seeds []campaignSeed, opts []Option) client {
	c := client{
		platform:    platform,
		displayName: displayName,
		baseURL:     baseURL,
		apiKey:      apiKey,
		seeds:       seeds,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.metrics == nil {
		c.metrics = NewRandomMetricsGenerator()
	}
	return c
}

func (c *client) Platform() domain.PlatformID {
	return c.platform
}

// BaseURL is the endpoint live connection checks are sent to.
func (c *client) BaseURL() string {
	return c.baseURL
}

// TestConnection reports true without network I/O unless a prober is attached.
func (c *client) TestConnection(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, domain.NewPlatformError("test connection", c.platform, fmt.Errorf("%w: %w", domain.ErrConnectionFailure, err))
	}
	if c.prober == nil {
		return true, nil
	}
	if err := c.prober.Probe(ctx, c.platform, c.baseURL, c.apiKey); err != nil {
		return false, domain.NewPlatformError("test connection", c.platform, fmt.Errorf("%w: %w", domain.ErrConnectionFailure, err))
	}
	return true, nil
}

// GetCampaigns returns every campaign matching filter.Status. DateRange is
// ignored because the generated metrics carry no history.
func (c *client) GetCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.PlatformCampaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewPlatformError("get campaigns", c.platform, err)
	}

	now := c.now()
	campaigns := make([]domain.PlatformCampaign, 0, len(c.seeds))
	for _, seed := range c.seeds {
		if filter.Status != "" && seed.status != filter.Status {
			continue
		}
		campaigns = append(campaigns, domain.PlatformCampaign{
			ID:         seed.id,
			ExternalID: seed.externalID,
			Platform:   c.platform,
			Name:       seed.name,
			Status:     seed.status,
			Metrics:    c.metrics.Generate(c.platform),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return campaigns, nil
}

// GetCampaignMetrics accepts either the internal or the external campaign id.
func (c *client) GetCampaignMetrics(ctx context.Context, campaignID string) (domain.CampaignMetrics, error) {
	if err := ctx.Err(); err != nil {
		return domain.CampaignMetrics{}, domain.NewPlatformError("get campaign metrics", c.platform, err)
	}
	for _, seed := range c.seeds {
		if seed.id == campaignID || seed.externalID == campaignID {
			return c.metrics.Generate(c.platform), nil
		}
	}
	return domain.CampaignMetrics{}, domain.NewPlatformError("get campaign metrics", c.platform,
		fmt.Errorf("campaign %q: %w", campaignID, domain.ErrNotFound))
}

// SyncData has no remote state to pull yet, so repeated calls report the same count.
func (c *client) SyncData(ctx context.Context) (domain.SyncResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SyncResult{}, domain.NewPlatformError("sync data", c.platform, err)
	}
	return domain.SyncResult{
		Success:          true,
		Message:          fmt.Sprintf("%s data synced", c.displayName),
		CampaignsUpdated: len(c.seeds),
	}, nil
}
