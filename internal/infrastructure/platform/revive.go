package platform

import (
	"lumora/internal/domain"
)

// ReviveClient talks to a self-hosted Revive Adserver instance.
type ReviveClient struct {
	client
	apiURL string
}

func NewReviveClient(apiURL, apiKey string, opts ...Option) *ReviveClient {
	return &ReviveClient{
		client: newClient(domain.PlatformRevive, "Revive", apiURL, apiKey, []campaignSeed{
			{id: "revive-1", externalID: "rv_campaign_001", name: "Homepage Banner Campaign", status: domain.StatusActive},
			{id: "revive-2", externalID: "rv_campaign_002", name: "Sidebar Display Ads", status: domain.StatusActive},
		}, opts),
		apiURL: apiURL,
	}
}

func (c *ReviveClient) APIURL() string {
	return c.apiURL
}
