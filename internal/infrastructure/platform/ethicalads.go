package platform

import (
	"lumora/internal/domain"
)

const DefaultEthicalAdsURL = "https://server.ethicalads.io"

type EthicalAdsClient struct {
	client
	publisherID string
}

func NewEthicalAdsClient(publisherID, apiKey string, opts ...Option) *EthicalAdsClient {
	return &EthicalAdsClient{
		client: newClient(domain.PlatformEthicalAds, "EthicalAds", DefaultEthicalAdsURL, apiKey, []campaignSeed{
			{id: "ethical-1", externalID: "tech_audience", name: "Developer Audience Ads", status: domain.StatusActive},
		}, opts),
		publisherID: publisherID,
	}
}

func (c *EthicalAdsClient) PublisherID() string {
	return c.publisherID
}
