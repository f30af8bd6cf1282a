package infrastructure

import (
	"fmt"
	"strconv"
	"time"

	"lumora/internal/domain"
)

type demoRow struct {
	name        string
	status      domain.CampaignStatus
	spend       float64
	impressions int
	clicks      int
	conversions int
	roas        float64
	platform    domain.PlatformID
}

var demoRows = []demoRow{
	{"Summer Sale Awareness", domain.StatusActive, 12450.50, 458000, 12540, 892, 3.24, domain.PlatformMeta},
	{"Brand Awareness Q1", domain.StatusActive, 8920.00, 325000, 8450, 456, 2.85, domain.PlatformMeta},
	{"Lead Gen - Healthcare", domain.StatusPaused, 5680.25, 189000, 4520, 234, 1.92, domain.PlatformMeta},
	{"Retargeting - Website Visitors", domain.StatusActive, 3245.75, 98000, 3890, 312, 4.15, domain.PlatformMeta},
	{"Lookalike - High Value Customers", domain.StatusActive, 7890.00, 267000, 6780, 423, 2.67, domain.PlatformMeta},
	{"Search - Brand Terms", domain.StatusActive, 4560.80, 145000, 8920, 567, 3.89, domain.PlatformGoogle},
	{"Search - Competitor Terms", domain.StatusActive, 6780.50, 198000, 5670, 289, 1.85, domain.PlatformGoogle},
	{"Display - Remarketing", domain.StatusPaused, 2340.25, 456000, 2340, 156, 2.45, domain.PlatformGoogle},
	{"Shopping - Best Sellers", domain.StatusActive, 9870.00, 234000, 7890, 678, 3.56, domain.PlatformGoogle},
	{"Performance Max - All Products", domain.StatusActive, 11250.75, 389000, 9450, 734, 2.98, domain.PlatformGoogle},
}

// DemoCampaigns is the fixed Meta and Google dataset shown while nothing has
// been synced yet.
func DemoCampaigns(now time.Time) []domain.PlatformCampaign {
	campaigns := make([]domain.PlatformCampaign, 0, len(demoRows))
	for i, row := range demoRows {
		id := strconv.Itoa(i + 1)
		campaigns = append(campaigns, domain.PlatformCampaign{
			ID:         id,
			ExternalID: fmt.Sprintf("%s_demo_%s", row.platform, id),
			Platform:   row.platform,
			Name:       row.name,
			Status:     row.status,
			Metrics:    domain.NewCampaignMetrics(row.spend, row.impressions, row.clicks, row.conversions, row.roas),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return campaigns
}
