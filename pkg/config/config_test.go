package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10*time.Second, cfg.Sync.CallTimeout)
	assert.False(t, cfg.Sync.StrictCredentials)
	assert.False(t, cfg.Sync.LiveChecks)
	assert.Equal(t, "demo-api-key", cfg.Demo.APIKey)
	assert.Equal(t, "https://demo.example.com", cfg.Demo.APIURL)
	assert.Equal(t, "demo-publisher", cfg.Demo.PublisherID)
	assert.Empty(t, cfg.Storage.RedisURL)
	assert.Zero(t, cfg.Storage.CampaignTTL)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, []string{"revive", "ethicalads", "plausible", "matomo", "posthog"}, cfg.Scheduler.Platforms)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("SYNC_CALL_TIMEOUT", "2s")
	t.Setenv("SYNC_STRICT_CREDENTIALS", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CAMPAIGN_TTL", "1h")
	t.Setenv("PLATFORM_SYNC_ENABLED", "true")
	t.Setenv("PLATFORM_SYNC_PLATFORMS", "revive,matomo")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Sync.CallTimeout)
	assert.True(t, cfg.Sync.StrictCredentials)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.RedisURL)
	assert.Equal(t, time.Hour, cfg.Storage.CampaignTTL)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, []string{"revive", "matomo"}, cfg.Scheduler.Platforms)
}

func TestLoad_Validation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SYNC_LIVE_CHECKS", "true")
	t.Setenv("SYNC_PROBE_RATE_LIMIT", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "SYNC_PROBE_RATE_LIMIT")
}
