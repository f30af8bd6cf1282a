package platform

import (
	"lumora/internal/domain"
)

const DefaultPostHogURL = "https://app.posthog.com"

// PostHogClient maps experiments and funnels of a PostHog project to campaigns.
type PostHogClient struct {
	client
	projectID string
}

func NewPostHogClient(projectID, apiKey, baseURL string, opts ...Option) *PostHogClient {
	if baseURL == "" {
		baseURL = DefaultPostHogURL
	}
	return &PostHogClient{
		client: newClient(domain.PlatformPostHog, "PostHog", baseURL, apiKey, []campaignSeed{
			{id: "posthog-exp-1", externalID: "exp_pricing_test", name: "Pricing Page A/B Test", status: domain.StatusActive},
			{id: "posthog-funnel-1", externalID: "funnel_onboarding", name: "Onboarding Funnel", status: domain.StatusActive},
		}, opts),
		projectID: projectID,
	}
}

func (c *PostHogClient) ProjectID() string {
	return c.projectID
}
