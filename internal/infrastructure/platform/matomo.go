package platform

import (
	"lumora/internal/domain"
)

// MatomoClient reads tracked campaigns from a self-hosted Matomo instance.
type MatomoClient struct {
	client
	siteID string
}

func NewMatomoClient(siteID, apiKey, apiURL string, opts ...Option) *MatomoClient {
	return &MatomoClient{
		client: newClient(domain.PlatformMatomo, "Matomo", apiURL, apiKey, []campaignSeed{
			{id: "matomo-camp-1", externalID: "email_newsletter", name: "Email Newsletter Campaign", status: domain.StatusActive},
			{id: "matomo-camp-2", externalID: "social_media", name: "Social Media Traffic", status: domain.StatusActive},
		}, opts),
		siteID: siteID,
	}
}

func (c *MatomoClient) SiteID() string {
	return c.siteID
}
