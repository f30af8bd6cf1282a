package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"lumora/internal/domain"
	"lumora/pkg/logger"
	"lumora/pkg/metrics"
)

// Dashboard data sources
const (
	SourceStore = "store"
	SourceDemo  = "demo"
)

var ErrUnknownMetric = errors.New("unknown comparison metric")

type DashboardView struct {
	Campaigns []domain.PlatformCampaign `json:"campaigns"`
	Summary   domain.AggregateSummary   `json:"summary"`
	Source    string                    `json:"source"`
}

type PlatformComparison struct {
	Platform  domain.PlatformID       `json:"platform"`
	Value     float64                 `json:"value"`
	Campaigns int                     `json:"campaigns"`
	Summary   domain.AggregateSummary `json:"summary"`
}

type ComparisonReport struct {
	Metric     string               `json:"metric"`
	Comparison []PlatformComparison `json:"comparison"`
	Winner     domain.PlatformID    `json:"winner,omitempty"`
	Source     string               `json:"source"`
}

var comparisonMetrics = map[string]func(domain.AggregateSummary) float64{
	"spend":       func(s domain.AggregateSummary) float64 { return s.TotalSpend },
	"roas":        func(s domain.AggregateSummary) float64 { return s.AverageROAS },
	"conversions": func(s domain.AggregateSummary) float64 { return float64(s.TotalConversions) },
	"impressions": func(s domain.AggregateSummary) float64 { return float64(s.TotalImpressions) },
}

// DashboardService serves stored campaigns, or the demo dataset while the
// store is empty.
type DashboardService struct {
	registry  *domain.Registry
	campaigns domain.CampaignRepository
	demo      func() []domain.PlatformCampaign
	logger    *logger.Logger
	metrics   *metrics.Metrics
}

func NewDashboardService(
	registry *domain.Registry,
	campaigns domain.CampaignRepository,
	demo func() []domain.PlatformCampaign,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *DashboardService {
	return &DashboardService{
		registry:  registry,
		campaigns: campaigns,
		demo:      demo,
		logger:    logger,
		metrics:   metrics,
	}
}

// StoreSynced records the campaigns of a finished sync.
func (s *DashboardService) StoreSynced(ctx context.Context, platform domain.PlatformID, campaigns []domain.PlatformCampaign) error {
	if err := s.campaigns.Store(ctx, platform, campaigns); err != nil {
		return fmt.Errorf("failed to store synced campaigns: %w", err)
	}
	return nil
}

func (s *DashboardService) Dashboard(ctx context.Context, filter domain.CampaignFilter) (*DashboardView, error) {
	all, source, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordDashboardQuery("dashboard", source)

	campaigns := FilterCampaigns(all, ByPlatform(filter.Platform), ByStatus(filter.Status))
	return &DashboardView{
		Campaigns: campaigns,
		Summary:   Summarize(campaigns),
		Source:    source,
	}, nil
}

// ComparePlatforms ranks platforms by metric, highest first. No platforms
// means every registered one.
func (s *DashboardService) ComparePlatforms(ctx context.Context, platforms []domain.PlatformID, metric string) (*ComparisonReport, error) {
	value, ok := comparisonMetrics[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	if len(platforms) == 0 {
		for _, cfg := range s.registry.ListAll() {
			platforms = append(platforms, cfg.ID)
		}
	}
	for _, p := range platforms {
		if !s.registry.Has(p) {
			return nil, domain.NewPlatformError("compare", p, domain.ErrUnknownPlatform)
		}
	}

	all, source, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordDashboardQuery("compare", source)

	report := &ComparisonReport{Metric: metric, Source: source}
	seen := make(map[domain.PlatformID]bool, len(platforms))
	for _, p := range platforms {
		if seen[p] {
			continue
		}
		seen[p] = true

		campaigns := FilterCampaigns(all, ByPlatform(p))
		summary := Summarize(campaigns)
		report.Comparison = append(report.Comparison, PlatformComparison{
			Platform:  p,
			Value:     value(summary),
			Campaigns: len(campaigns),
			Summary:   summary,
		})
	}

	sort.SliceStable(report.Comparison, func(i, j int) bool {
		return report.Comparison[i].Value > report.Comparison[j].Value
	})
	if len(report.Comparison) > 0 && report.Comparison[0].Campaigns > 0 {
		report.Winner = report.Comparison[0].Platform
	}

	return report, nil
}

func (s *DashboardService) load(ctx context.Context) ([]domain.PlatformCampaign, string, error) {
	stored, err := s.campaigns.List(ctx, domain.CampaignFilter{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to list campaigns: %w", err)
	}
	if len(stored) > 0 || s.demo == nil {
		return stored, SourceStore, nil
	}

	s.logger.WithContext(ctx).Debug("No synced campaigns, serving demo dataset")
	return s.demo(), SourceDemo, nil
}

// DemoSource adapts a timestamped dataset constructor for NewDashboardService.
func DemoSource(build func(time.Time) []domain.PlatformCampaign) func() []domain.PlatformCampaign {
	return func() []domain.PlatformCampaign {
		return build(time.Now())
	}
}
