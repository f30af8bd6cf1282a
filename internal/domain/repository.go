package domain

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"
)

// MetricsSource produces the metrics record of one campaign. The demo
// implementation is random; a real platform API adapter plugs in here.
type MetricsSource interface {
	Generate(platform PlatformID) CampaignMetrics
}

// PlatformClient is the capability set shared by every API-key platform.
// Every call is a suspension point; callers bound them through ctx.
type PlatformClient interface {
	Platform() PlatformID
	TestConnection(ctx context.Context) (bool, error)
	GetCampaigns(ctx context.Context, filter CampaignFilter) ([]PlatformCampaign, error)
	GetCampaignMetrics(ctx context.Context, campaignID string) (CampaignMetrics, error)
	SyncData(ctx context.Context) (SyncResult, error)
}

// ClientFactory builds a client for a platform. OAuth platforms yield
// ErrUnsupportedAuth and identifiers outside the registry ErrUnknownPlatform.
type ClientFactory interface {
	Create(platform PlatformID, creds Credentials) (PlatformClient, error)
}

// interface for synced campaign storage
type CampaignRepository interface {
	Store(ctx context.Context, platform PlatformID, campaigns []PlatformCampaign) error
	List(ctx context.Context, filter CampaignFilter) ([]PlatformCampaign, error)
	LastSync(ctx context.Context, platform PlatformID) (time.Time, bool, error)
}
