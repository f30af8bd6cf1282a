package domain

import (
	"slices"
)

// Registry holds the closed set of platform configurations. It is built once
// and never mutated; every accessor hands out copies.
type Registry struct {
	order   []PlatformID
	configs map[PlatformID]PlatformConfig
}

// creates a registry keeping the given declaration order
func NewRegistry(configs ...PlatformConfig) *Registry {
	r := &Registry{
		order:   make([]PlatformID, 0, len(configs)),
		configs: make(map[PlatformID]PlatformConfig, len(configs)),
	}
	for _, cfg := range configs {
		if _, exists := r.configs[cfg.ID]; exists {
			continue
		}
		r.order = append(r.order, cfg.ID)
		r.configs[cfg.ID] = cloneConfig(cfg)
	}
	return r
}

// DefaultRegistry returns the registry of every supported platform.
func DefaultRegistry() *Registry {
	return NewRegistry(platformCatalog...)
}

// GetConfig returns the configuration for id or ErrUnknownPlatform.
func (r *Registry) GetConfig(id PlatformID) (PlatformConfig, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return PlatformConfig{}, NewPlatformError("get config", id, ErrUnknownPlatform)
	}
	return cloneConfig(cfg), nil
}

// Lookup resolves a raw identifier, typically taken from a request path.
func (r *Registry) Lookup(raw string) (PlatformID, error) {
	id := PlatformID(raw)
	if !r.Has(id) {
		return "", NewPlatformError("lookup", id, ErrUnknownPlatform)
	}
	return id, nil
}

func (r *Registry) Has(id PlatformID) bool {
	_, ok := r.configs[id]
	return ok
}

// ListAll returns every configuration in declaration order.
func (r *Registry) ListAll() []PlatformConfig {
	out := make([]PlatformConfig, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneConfig(r.configs[id]))
	}
	return out
}

// ListOpenSource returns the open-source subset in declaration order.
func (r *Registry) ListOpenSource() []PlatformConfig {
	out := make([]PlatformConfig, 0, len(r.order))
	for _, id := range r.order {
		if cfg := r.configs[id]; cfg.IsOpenSource {
			out = append(out, cloneConfig(cfg))
		}
	}
	return out
}

func cloneConfig(cfg PlatformConfig) PlatformConfig {
	cfg.Features = slices.Clone(cfg.Features)
	return cfg
}

var platformCatalog = []PlatformConfig{
	{
		ID:          PlatformMeta,
		Name:        "Meta Ads",
		Description: "Facebook & Instagram advertising",
		Icon:        "facebook",
		Color:       "text-blue-400",
		BgColor:     "bg-blue-500/20",
		AuthType:    AuthOAuth,
		DocsURL:     "https://developers.facebook.com/docs/marketing-apis",
		Features:    []string{"campaigns", "audiences", "creative", "reporting"},
	},
	{
		ID:          PlatformGoogle,
		Name:        "Google Ads",
		Description: "Search, Display & YouTube advertising",
		Icon:        "google",
		Color:       "text-green-400",
		BgColor:     "bg-green-500/20",
		AuthType:    AuthOAuth,
		DocsURL:     "https://developers.google.com/google-ads/api/docs/start",
		Features:    []string{"campaigns", "keywords", "audiences", "reporting"},
	},
	{
		ID:          PlatformTikTok,
		Name:        "TikTok Ads",
		Description: "TikTok for Business advertising",
		Icon:        "tiktok",
		Color:       "text-pink-400",
		BgColor:     "bg-pink-500/20",
		AuthType:    AuthOAuth,
		DocsURL:     "https://business-api.tiktok.com/portal/docs",
		Features:    []string{"campaigns", "creative", "audiences", "reporting"},
	},
	{
		ID:          PlatformLinkedIn,
		Name:        "LinkedIn Ads",
		Description: "B2B advertising on LinkedIn",
		Icon:        "linkedin",
		Color:       "text-sky-400",
		BgColor:     "bg-sky-500/20",
		AuthType:    AuthOAuth,
		DocsURL:     "https://learn.microsoft.com/linkedin/marketing/",
		Features:    []string{"campaigns", "audiences", "lead-gen", "reporting"},
	},
	{
		ID:          PlatformPinterest,
		Name:        "Pinterest Ads",
		Description: "Visual discovery advertising",
		Icon:        "pinterest",
		Color:       "text-red-400",
		BgColor:     "bg-red-500/20",
		AuthType:    AuthOAuth,
		DocsURL:     "https://developers.pinterest.com/docs/ads/overview/",
		Features:    []string{"campaigns", "pins", "audiences", "reporting"},
	},
	{
		ID:           PlatformRevive,
		Name:         "Revive Adserver",
		Description:  "Self-hosted open source ad server",
		Icon:         "server",
		Color:        "text-orange-400",
		BgColor:      "bg-orange-500/20",
		IsOpenSource: true,
		AuthType:     AuthAPIKey,
		DocsURL:      "https://www.revive-adserver.com/support/",
		Features:     []string{"zones", "banners", "targeting", "reporting"},
	},
	{
		ID:           PlatformEthicalAds,
		Name:         "EthicalAds",
		Description:  "Privacy-first open source ad network",
		Icon:         "shield",
		Color:        "text-emerald-400",
		BgColor:      "bg-emerald-500/20",
		IsOpenSource: true,
		AuthType:     AuthAPIKey,
		DocsURL:      "https://www.ethicalads.io/advertisers/",
		Features:     []string{"placements", "targeting", "reporting"},
	},
	{
		ID:           PlatformPlausible,
		Name:         "Plausible Analytics",
		Description:  "Privacy-friendly web analytics",
		Icon:         "chart",
		Color:        "text-indigo-400",
		BgColor:      "bg-indigo-500/20",
		IsOpenSource: true,
		AuthType:     AuthAPIKey,
		DocsURL:      "https://plausible.io/docs",
		Features:     []string{"pageviews", "goals", "funnels", "reporting"},
	},
	{
		ID:           PlatformMatomo,
		Name:         "Matomo Analytics",
		Description:  "Self-hosted Google Analytics alternative",
		Icon:         "analytics",
		Color:        "text-cyan-400",
		BgColor:      "bg-cyan-500/20",
		IsOpenSource: true,
		AuthType:     AuthAPIKey,
		DocsURL:      "https://developer.matomo.org/",
		Features:     []string{"visits", "goals", "ecommerce", "reporting"},
	},
	{
		ID:           PlatformPostHog,
		Name:         "PostHog",
		Description:  "All-in-one product analytics",
		Icon:         "hedgehog",
		Color:        "text-yellow-400",
		BgColor:      "bg-yellow-500/20",
		IsOpenSource: true,
		AuthType:     AuthAPIKey,
		DocsURL:      "https://posthog.com/docs",
		Features:     []string{"events", "funnels", "experiments", "surveys"},
	},
}
