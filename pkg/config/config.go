package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Application settings, read from the environment (and an optional .env file)
type Config struct {
	Server    ServerConfig    `mapstructure:",squash"`
	Logging   LoggingConfig   `mapstructure:",squash"`
	Sync      SyncConfig      `mapstructure:",squash"`
	Demo      DemoConfig      `mapstructure:",squash"`
	Storage   StorageConfig   `mapstructure:",squash"`
	Scheduler SchedulerConfig `mapstructure:",squash"`
}

// Server settings
type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Logging settings
type LoggingConfig struct {
	Level string `mapstructure:"log_level"`
}

type SyncConfig struct {
	CallTimeout       time.Duration `mapstructure:"sync_call_timeout"`
	StrictCredentials bool          `mapstructure:"sync_strict_credentials"`
	LiveChecks        bool          `mapstructure:"sync_live_checks"`
	ProbeRateLimit    int           `mapstructure:"sync_probe_rate_limit"`
	ProbeTimeout      time.Duration `mapstructure:"sync_probe_timeout"`
}

// placeholder credentials substituted for fields a caller leaves empty
type DemoConfig struct {
	APIKey      string `mapstructure:"demo_api_key"`
	APIURL      string `mapstructure:"demo_api_url"`
	SiteID      string `mapstructure:"demo_site_id"`
	ProjectID   string `mapstructure:"demo_project_id"`
	PublisherID string `mapstructure:"demo_publisher_id"`
}

// empty RedisURL keeps synced campaigns in memory
type StorageConfig struct {
	RedisURL    string        `mapstructure:"redis_url"`
	CampaignTTL time.Duration `mapstructure:"campaign_ttl"`
}

type SchedulerConfig struct {
	Enabled   bool     `mapstructure:"platform_sync_enabled"`
	Cron      string   `mapstructure:"platform_sync_cron"`
	Platforms []string `mapstructure:"platform_sync_platforms"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SYNC_CALL_TIMEOUT", "10s")
	v.SetDefault("SYNC_STRICT_CREDENTIALS", false)
	v.SetDefault("SYNC_LIVE_CHECKS", false)
	v.SetDefault("SYNC_PROBE_RATE_LIMIT", 10)
	v.SetDefault("SYNC_PROBE_TIMEOUT", "5s")

	v.SetDefault("DEMO_API_KEY", "demo-api-key")
	v.SetDefault("DEMO_API_URL", "https://demo.example.com")
	v.SetDefault("DEMO_SITE_ID", "demo-site")
	v.SetDefault("DEMO_PROJECT_ID", "demo-project")
	v.SetDefault("DEMO_PUBLISHER_ID", "demo-publisher")

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CAMPAIGN_TTL", "0s")

	v.SetDefault("PLATFORM_SYNC_ENABLED", false)
	v.SetDefault("PLATFORM_SYNC_CRON", "*/30 * * * *")
	v.SetDefault("PLATFORM_SYNC_PLATFORMS", "revive,ethicalads,plausible,matomo,posthog")
}

func Load() (*Config, error) {
	// a missing .env is fine; real deployments use the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.New("config: PORT must not be empty")
	}
	if c.Sync.CallTimeout < 0 || c.Sync.ProbeTimeout < 0 || c.Server.RequestTimeout < 0 {
		return errors.New("config: timeouts must not be negative")
	}
	if c.Sync.LiveChecks && c.Sync.ProbeRateLimit <= 0 {
		return errors.New("config: SYNC_PROBE_RATE_LIMIT must be positive when live checks are enabled")
	}
	if c.Scheduler.Enabled && c.Scheduler.Cron == "" {
		return errors.New("config: PLATFORM_SYNC_CRON is required when the scheduler is enabled")
	}
	return nil
}
