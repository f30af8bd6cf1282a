package infrastructure

import (
	"context"
	"testing"
	"time"

	"lumora/internal/domain"
	"lumora/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCampaigns(platform domain.PlatformID, spends ...float64) []domain.PlatformCampaign {
	var out []domain.PlatformCampaign
	for i, spend := range spends {
		status := domain.StatusActive
		if i%2 == 1 {
			status = domain.StatusPaused
		}
		out = append(out, domain.PlatformCampaign{
			ID:       string(platform) + "-" + string(rune('a'+i)),
			Platform: platform,
			Name:     "campaign",
			Status:   status,
			Metrics:  domain.NewCampaignMetrics(spend, 10000, 100, 10, 2),
		})
	}
	return out
}

func TestCampaignRepository_StoreReplacesPlatformRows(t *testing.T) {
	repo := NewCampaignRepository(logger.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, domain.PlatformRevive, sampleCampaigns(domain.PlatformRevive, 100, 200)))
	require.NoError(t, repo.Store(ctx, domain.PlatformRevive, sampleCampaigns(domain.PlatformRevive, 300)))

	got, err := repo.List(ctx, domain.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 300.0, got[0].Metrics.Spend)
}

func TestCampaignRepository_ListFilters(t *testing.T) {
	repo := NewCampaignRepository(logger.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, domain.PlatformRevive, sampleCampaigns(domain.PlatformRevive, 100, 200)))
	require.NoError(t, repo.Store(ctx, domain.PlatformMatomo, sampleCampaigns(domain.PlatformMatomo, 500, 50, 75)))

	all, err := repo.List(ctx, domain.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, 500.0, all[0].Metrics.Spend)
	assert.Equal(t, 50.0, all[4].Metrics.Spend)

	matomo, err := repo.List(ctx, domain.CampaignFilter{Platform: domain.PlatformMatomo})
	require.NoError(t, err)
	assert.Len(t, matomo, 3)

	paused, err := repo.List(ctx, domain.CampaignFilter{Status: domain.StatusPaused})
	require.NoError(t, err)
	assert.Len(t, paused, 2)

	both, err := repo.List(ctx, domain.CampaignFilter{Platform: domain.PlatformRevive, Status: domain.StatusActive})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, 100.0, both[0].Metrics.Spend)
}

func TestCampaignRepository_LastSync(t *testing.T) {
	repo := NewCampaignRepository(logger.NewNop())
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return at }
	ctx := context.Background()

	_, ok, err := repo.LastSync(ctx, domain.PlatformPostHog)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Store(ctx, domain.PlatformPostHog, nil))

	got, ok, err := repo.LastSync(ctx, domain.PlatformPostHog)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, at, got)
}

func TestCampaignRepository_StoreCopiesInput(t *testing.T) {
	repo := NewCampaignRepository(logger.NewNop())
	ctx := context.Background()

	in := sampleCampaigns(domain.PlatformRevive, 100)
	require.NoError(t, repo.Store(ctx, domain.PlatformRevive, in))
	in[0].Name = "changed"

	got, err := repo.List(ctx, domain.CampaignFilter{})
	require.NoError(t, err)
	assert.Equal(t, "campaign", got[0].Name)
}
