package usecase

import (
	"context"
	"fmt"
	"time"

	"lumora/internal/domain"
	"lumora/pkg/logger"
)

// Sync status values
const (
	StatusReady         = "ready"
	StatusNeverSynced   = "never_synced"
	StatusOAuthRequired = "oauth_required"
)

type PlatformList struct {
	Platforms       []domain.PlatformConfig `json:"platforms"`
	Total           int                     `json:"total"`
	OpenSourceCount int                     `json:"openSourceCount"`
}

type SyncStatus struct {
	Platform  domain.PlatformID     `json:"platform"`
	Config    domain.PlatformConfig `json:"config"`
	LastSync  *time.Time            `json:"lastSync"`
	Status    string                `json:"status"`
	Connected bool                  `json:"connected"`
}

// PlatformService answers read-only questions about platforms.
type PlatformService struct {
	registry  *domain.Registry
	factory   domain.ClientFactory
	campaigns domain.CampaignRepository
	logger    *logger.Logger
}

func NewPlatformService(
	registry *domain.Registry,
	factory domain.ClientFactory,
	campaigns domain.CampaignRepository,
	logger *logger.Logger,
) *PlatformService {
	return &PlatformService{
		registry:  registry,
		factory:   factory,
		campaigns: campaigns,
		logger:    logger,
	}
}

func (s *PlatformService) ListPlatforms(openSourceOnly bool) PlatformList {
	platforms := s.registry.ListAll()
	if openSourceOnly {
		platforms = s.registry.ListOpenSource()
	}

	list := PlatformList{Platforms: platforms, Total: len(platforms)}
	for _, p := range platforms {
		if p.IsOpenSource {
			list.OpenSourceCount++
		}
	}
	return list
}

// SyncStatus reports when platform was last synced into the store.
func (s *PlatformService) SyncStatus(ctx context.Context, platform domain.PlatformID) (*SyncStatus, error) {
	cfg, err := s.registry.GetConfig(platform)
	if err != nil {
		return nil, err
	}

	status := &SyncStatus{Platform: platform, Config: cfg, Status: StatusNeverSynced}
	if cfg.AuthType == domain.AuthOAuth {
		status.Status = StatusOAuthRequired
		return status, nil
	}

	at, ok, err := s.campaigns.LastSync(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to read sync status: %w", err)
	}
	if ok {
		status.LastSync = &at
		status.Status = StatusReady
		status.Connected = true
	}
	return status, nil
}

// GetCampaignMetrics asks the platform directly for one campaign.
func (s *PlatformService) GetCampaignMetrics(ctx context.Context, platform domain.PlatformID, campaignID string, creds domain.Credentials) (domain.CampaignMetrics, error) {
	client, err := s.factory.Create(platform, creds)
	if err != nil {
		return domain.CampaignMetrics{}, err
	}

	m, err := client.GetCampaignMetrics(ctx, campaignID)
	if err != nil {
		s.logger.WithContext(ctx).WithFields(map[string]any{
			"platform":    platform,
			"campaign_id": campaignID,
		}).WithError(err).Debug("Campaign metrics lookup failed")
		return domain.CampaignMetrics{}, err
	}
	return m, nil
}
