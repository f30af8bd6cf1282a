package platform

import (
	"fmt"
	"strings"

	"lumora/internal/domain"
)

// DemoCredentials fill any field a caller leaves empty when strict mode is off.
var DemoCredentials = domain.Credentials{
	APIKey:      "demo-api-key",
	APIURL:      "https://demo.example.com",
	SiteID:      "demo-site",
	ProjectID:   "demo-project",
	PublisherID: "demo-publisher",
}

type builder struct {
	required []string
	build    func(creds domain.Credentials, opts []Option) domain.PlatformClient
}

// one entry per API-key platform; adding a platform means adding a row here
var builders = map[domain.PlatformID]builder{
	domain.PlatformRevive: {
		required: []string{"apiUrl", "apiKey"},
		build: func(c domain.Credentials, opts []Option) domain.PlatformClient {
			return NewReviveClient(c.APIURL, c.APIKey, opts...)
		},
	},
	domain.PlatformPlausible: {
		required: []string{"siteId", "apiKey"},
		build: func(c domain.Credentials, opts []Option) domain.PlatformClient {
			return NewPlausibleClient(c.SiteID, c.APIKey, "", opts...)
		},
	},
	domain.PlatformPostHog: {
		required: []string{"projectId", "apiKey"},
		build: func(c domain.Credentials, opts []Option) domain.PlatformClient {
			return NewPostHogClient(c.ProjectID, c.APIKey, "", opts...)
		},
	},
	domain.PlatformMatomo: {
		required: []string{"siteId", "apiKey", "apiUrl"},
		build: func(c domain.Credentials, opts []Option) domain.PlatformClient {
			return NewMatomoClient(c.SiteID, c.APIKey, c.APIURL, opts...)
		},
	},
	domain.PlatformEthicalAds: {
		required: []string{"publisherId", "apiKey"},
		build: func(c domain.Credentials, opts []Option) domain.PlatformClient {
			return NewEthicalAdsClient(c.PublisherID, c.APIKey, opts...)
		},
	},
}

// Factory implements domain.ClientFactory.
type Factory struct {
	registry *domain.Registry
	defaults domain.Credentials
	strict   bool
	options  []Option
}

type FactoryOption func(*Factory)

func WithDefaultCredentials(creds domain.Credentials) FactoryOption {
	return func(f *Factory) {
		f.defaults = creds
	}
}

// WithStrictCredentials rejects bundles missing a required field instead of
// substituting demo values.
func WithStrictCredentials(strict bool) FactoryOption {
	return func(f *Factory) {
		f.strict = strict
	}
}

// client options applied to every client the factory builds
func WithClientOptions(opts ...Option) FactoryOption {
	return func(f *Factory) {
		f.options = append(f.options, opts...)
	}
}

func NewFactory(registry *domain.Registry, opts ...FactoryOption) *Factory {
	f := &Factory{
		registry: registry,
		defaults: DemoCredentials,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns a ready client. Platforms outside the registry fail with
// ErrUnknownPlatform; OAuth platforms fail with ErrUnsupportedAuth whatever
// the credentials.
func (f *Factory) Create(platform domain.PlatformID, creds domain.Credentials) (domain.PlatformClient, error) {
	cfg, err := f.registry.GetConfig(platform)
	if err != nil {
		return nil, err
	}

	b, ok := builders[platform]
	if !ok || cfg.AuthType == domain.AuthOAuth {
		return nil, domain.NewPlatformError("create client", platform, domain.ErrUnsupportedAuth)
	}

	if f.strict {
		if missing := missingFields(creds, b.required); len(missing) > 0 {
			return nil, domain.NewPlatformError("create client", platform,
				fmt.Errorf("%w: missing %s", domain.ErrInvalidCredentials, strings.Join(missing, ", ")))
		}
	} else {
		creds = creds.WithDefaults(f.defaults)
	}

	return b.build(creds, f.options), nil
}

func missingFields(creds domain.Credentials, required []string) []string {
	var missing []string
	for _, name := range required {
		if strings.TrimSpace(creds.Field(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
