package infrastructure

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"lumora/internal/domain"
	"lumora/pkg/logger"
)

// implements domain.CampaignRepository in memory
type CampaignRepository struct {
	data     map[domain.PlatformID][]domain.PlatformCampaign
	lastSync map[domain.PlatformID]time.Time
	mutex    sync.RWMutex
	logger   *logger.Logger
	now      func() time.Time
}

// creates a new in-memory campaign repository
func NewCampaignRepository(logger *logger.Logger) *CampaignRepository {
	return &CampaignRepository{
		data:     make(map[domain.PlatformID][]domain.PlatformCampaign),
		lastSync: make(map[domain.PlatformID]time.Time),
		logger:   logger,
		now:      time.Now,
	}
}

// Store replaces everything held for platform, so storing the same sync twice
// leaves one copy.
func (r *CampaignRepository) Store(ctx context.Context, platform domain.PlatformID, campaigns []domain.PlatformCampaign) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.data[platform] = slices.Clone(campaigns)
	r.lastSync[platform] = r.now()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"platform": platform,
		"count":    len(campaigns),
	}).Debug("Stored platform campaigns in memory")

	return nil
}

func (r *CampaignRepository) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.PlatformCampaign, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []domain.PlatformCampaign
	for platform, campaigns := range r.data {
		if filter.Platform != "" && platform != filter.Platform {
			continue
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

func (r *CampaignRepository) LastSync(ctx context.Context, platform domain.PlatformID) (time.Time, bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	at, ok := r.lastSync[platform]
	return at, ok, nil
}

func matchesFilter(c domain.PlatformCampaign, filter domain.CampaignFilter) bool {
	if filter.Platform != "" && c.Platform != filter.Platform {
		return false
	}
	if filter.Status != "" && c.Status != filter.Status {
		return false
	}
	return true
}

// highest spend first, ties broken by platform then id
func sortBySpend(campaigns []domain.PlatformCampaign) {
	sort.SliceStable(campaigns, func(i, j int) bool {
		a, b := campaigns[i], campaigns[j]
		if a.Metrics.Spend != b.Metrics.Spend {
			return a.Metrics.Spend > b.Metrics.Spend
		}
		if a.Platform != b.Platform {
			return a.Platform < b.Platform
		}
		return a.ID < b.ID
	})
}
