package platform

import (
	"lumora/internal/domain"
)

const DefaultPlausibleURL = "https://plausible.io"

// PlausibleClient reports goal conversions of one Plausible site as campaigns.
type PlausibleClient struct {
	client
	siteID string
}

// an empty baseURL selects plausible.io
func NewPlausibleClient(siteID, apiKey, baseURL string, opts ...Option) *PlausibleClient {
	if baseURL == "" {
		baseURL = DefaultPlausibleURL
	}
	return &PlausibleClient{
		client: newClient(domain.PlatformPlausible, "Plausible", baseURL, apiKey, []campaignSeed{
			{id: "plausible-goal-1", externalID: "signup", name: "Signup Goal Tracking", status: domain.StatusActive},
			{id: "plausible-goal-2", externalID: "purchase", name: "Purchase Conversion", status: domain.StatusActive},
		}, opts),
		siteID: siteID,
	}
}

func (c *PlausibleClient) SiteID() string {
	return c.siteID
}
