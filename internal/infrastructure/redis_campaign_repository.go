package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lumora/internal/domain"
	"lumora/pkg/logger"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	campaignKeyPrefix = "lumora:campaigns:"
	lastSyncKeyPrefix = "lumora:lastsync:"
	platformsKey      = "lumora:platforms"
)

// ConnectRedis accepts a redis:// URL or a bare host:port and checks the
// server answers.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisCampaignRepository keeps one JSON document per platform.
type RedisCampaignRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
	now    func() time.Time
}

// ttl of 0 keeps entries until the next sync overwrites them
func NewRedisCampaignRepository(client *redis.Client, ttl time.Duration, logger *logger.Logger) *RedisCampaignRepository {
	return &RedisCampaignRepository{
		client: client,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func (r *RedisCampaignRepository) Store(ctx context.Context, platform domain.PlatformID, campaigns []domain.PlatformCampaign) error {
	raw, err := json.Marshal(campaigns)
	if err != nil {
		return fmt.Errorf("failed to encode campaigns: %w", err)
	}

	syncedAt := r.now().UTC().Format(time.RFC3339Nano)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, campaignKeyPrefix+platform.String(), raw, r.ttl)
		pipe.Set(ctx, lastSyncKeyPrefix+platform.String(), syncedAt, r.ttl)
		pipe.SAdd(ctx, platformsKey, platform.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store campaigns for %s: %w", platform, err)
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"platform": platform,
		"count":    len(campaigns),
	}).Debug("Stored platform campaigns in redis")

	return nil
}

func (r *RedisCampaignRepository) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.PlatformCampaign, error) {
	platforms := []string{filter.Platform.String()}
	if filter.Platform == "" {
		members, err := r.client.SMembers(ctx, platformsKey).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to list platforms: %w", err)
		}
		platforms = members
	}

	var result []domain.PlatformCampaign
	for _, platform := range platforms {
		raw, err := r.client.Get(ctx, campaignKeyPrefix+platform).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read campaigns for %s: %w", platform, err)
		}

		var campaigns []domain.PlatformCampaign
		if err := json.Unmarshal(raw, &campaigns); err != nil {
			return nil, fmt.Errorf("failed to decode campaigns for %s: %w", platform, err)
		}
		for _, c := range campaigns {
			if matchesFilter(c, filter) {
				result = append(result, c)
			}
		}
	}

	sortBySpend(result)
	return result, nil
}

func (r *RedisCampaignRepository) LastSync(ctx context.Context, platform domain.PlatformID) (time.Time, bool, error) {
	raw, err := r.client.Get(ctx, lastSyncKeyPrefix+platform.String()).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read last sync for %s: %w", platform, err)
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse last sync for %s: %w", platform, err)
	}
	return at, true, nil
}
