package domain

import (
	"time"
)

type CampaignStatus string

const (
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
	StatusDraft     CampaignStatus = "draft"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusDraft:
		return true
	}
	return false
}

// performance counters of one campaign plus the ratios derived from them
type CampaignMetrics struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPA         float64 `json:"cpa"`
	ROAS        float64 `json:"roas"`
}

// NewCampaignMetrics builds a metrics record from raw counters. CTR, CPC and
// CPA are always derived here so they can never disagree with the counters;
// each ratio is 0 when its denominator is 0.
func NewCampaignMetrics(spend float64, impressions, clicks, conversions int, roas float64) CampaignMetrics {
	m := CampaignMetrics{
		Spend:       spend,
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		ROAS:        roas,
	}
	if impressions > 0 {
		m.CTR = float64(clicks) / float64(impressions)
	}
	if clicks > 0 {
		m.CPC = spend / float64(clicks)
	}
	if conversions > 0 {
		m.CPA = spend / float64(conversions)
	}
	return m
}

// one campaign as reported by a platform
type PlatformCampaign struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"externalId"`
	Platform   PlatformID      `json:"platform"`
	Name       string          `json:"name"`
	Status     CampaignStatus  `json:"status"`
	Metrics    CampaignMetrics `json:"metrics"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// presentation subset returned by a sync
type CampaignSummary struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Spend       float64        `json:"spend"`
	Impressions int            `json:"impressions"`
	Clicks      int            `json:"clicks"`
	Conversions int            `json:"conversions"`
	ROAS        float64        `json:"roas"`
}

func (c PlatformCampaign) Summary() CampaignSummary {
	return CampaignSummary{
		ID:          c.ID,
		Name:        c.Name,
		Status:      c.Status,
		Spend:       c.Metrics.Spend,
		Impressions: c.Metrics.Impressions,
		Clicks:      c.Metrics.Clicks,
		Conversions: c.Metrics.Conversions,
		ROAS:        c.Metrics.ROAS,
	}
}

// CampaignFilter narrows a campaign listing. Zero values match everything.
// DateRange ("7d", "30d", ...) is passed through to platforms that keep history.
type CampaignFilter struct {
	Platform  PlatformID     `json:"platform,omitempty"`
	Status    CampaignStatus `json:"status,omitempty"`
	DateRange string         `json:"dateRange,omitempty"`
}

// outcome of one sync attempt
type SyncResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	CampaignsUpdated int    `json:"campaignsUpdated,omitempty"`
}

// totals over a set of campaigns, recomputed on demand
type AggregateSummary struct {
	TotalSpend       float64 `json:"totalSpend"`
	TotalConversions int     `json:"totalConversions"`
	TotalImpressions int     `json:"totalImpressions"`
	AverageROAS      float64 `json:"averageRoas"`
}
