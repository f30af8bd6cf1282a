package platform

import (
	"math"
	"math/rand/v2"
	"sync"

	"lumora/internal/domain"
)

// RandomMetricsGenerator fabricates plausible campaign metrics. It stands in
// for a platform reporting API until one is wired.
type RandomMetricsGenerator struct {
	mu         sync.Mutex
	rng        *rand.Rand
	spendScale map[domain.PlatformID]float64
}

type GeneratorOption func(*RandomMetricsGenerator)

// WithRand makes the generator deterministic.
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *RandomMetricsGenerator) {
		g.rng = rng
	}
}

// scales generated spend for one platform
func WithSpendScale(platform domain.PlatformID, scale float64) GeneratorOption {
	return func(g *RandomMetricsGenerator) {
		if scale > 0 {
			g.spendScale[platform] = scale
		}
	}
}

func NewRandomMetricsGenerator(opts ...GeneratorOption) *RandomMetricsGenerator {
	g := &RandomMetricsGenerator{
		spendScale: make(map[domain.PlatformID]float64),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws spend in [500, 10000] (times the platform scale),
// impressions in [10000, 500000], a click-through rate in [0.5%, 3.5%],
// a conversion rate in [2%, 8%] of clicks and ROAS in [0.5, 4.0].
func (g *RandomMetricsGenerator) Generate(platform domain.PlatformID) domain.CampaignMetrics {
	scale, ok := g.spendScale[platform]
	if !ok {
		scale = 1
	}

	spend := (500 + g.float()*9500) * scale
	impressions := int(math.Floor(10000 + g.float()*490000))
	ctr := 0.005 + g.float()*0.03
	clicks := int(math.Floor(float64(impressions) * ctr))
	conversionRate := 0.02 + g.float()*0.06
	conversions := int(math.Floor(float64(clicks) * conversionRate))
	roas := 0.5 + g.float()*3.5

	return domain.NewCampaignMetrics(round2(spend), impressions, clicks, conversions, round2(roas))
}

func (g *RandomMetricsGenerator) float() float64 {
	if g.rng == nil {
		return rand.Float64()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
