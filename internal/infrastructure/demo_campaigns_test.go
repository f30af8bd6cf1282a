package infrastructure

import (
	"testing"
	"time"

	"lumora/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCampaigns(t *testing.T) {
	now := time.Now()
	campaigns := DemoCampaigns(now)
	require.Len(t, campaigns, 10)

	var meta, google, paused int
	for _, c := range campaigns {
		switch c.Platform {
		case domain.PlatformMeta:
			meta++
		case domain.PlatformGoogle:
			google++
		}
		if c.Status == domain.StatusPaused {
			paused++
		}
		assert.Equal(t, now, c.CreatedAt)
	}
	assert.Equal(t, 5, meta)
	assert.Equal(t, 5, google)
	assert.Equal(t, 2, paused)

	first := campaigns[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Summer Sale Awareness", first.Name)
	assert.Equal(t, 12450.50, first.Metrics.Spend)
	assert.InDelta(t, 12540.0/458000.0, first.Metrics.CTR, 1e-12)
}
