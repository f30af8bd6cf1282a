package domain

// identifies an ad or analytics platform
type PlatformID string

const (
	PlatformMeta       PlatformID = "meta"
	PlatformGoogle     PlatformID = "google"
	PlatformTikTok     PlatformID = "tiktok"
	PlatformLinkedIn   PlatformID = "linkedin"
	PlatformPinterest  PlatformID = "pinterest"
	PlatformRevive     PlatformID = "revive"
	PlatformEthicalAds PlatformID = "ethicalads"
	PlatformPlausible  PlatformID = "plausible"
	PlatformMatomo     PlatformID = "matomo"
	PlatformPostHog    PlatformID = "posthog"
)

func (p PlatformID) String() string {
	return string(p)
}

// how a platform authenticates API callers
type AuthType string

const (
	AuthOAuth       AuthType = "oauth"
	AuthAPIKey      AuthType = "apiKey"
	AuthCredentials AuthType = "credentials"
)

// static per-platform metadata
type PlatformConfig struct {
	ID           PlatformID `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	Color        string     `json:"color"`
	BgColor      string     `json:"bgColor"`
	IsOpenSource bool       `json:"isOpenSource"`
	AuthType     AuthType   `json:"authType"`
	DocsURL      string     `json:"docsUrl"`
	Features     []string   `json:"features"`
}

// Credentials is the secret bundle a caller supplies for one sync. Each
// platform reads its own subset of the fields.
type Credentials struct {
	APIKey      string `json:"apiKey,omitempty"`
	APIURL      string `json:"apiUrl,omitempty"`
	SiteID      string `json:"siteId,omitempty"`
	ProjectID   string `json:"projectId,omitempty"`
	PublisherID string `json:"publisherId,omitempty"`
}

// WithDefaults returns a copy of c where every empty field is taken from d.
func (c Credentials) WithDefaults(d Credentials) Credentials {
	if c.APIKey == "" {
		c.APIKey = d.APIKey
	}
	if c.APIURL == "" {
		c.APIURL = d.APIURL
	}
	if c.SiteID == "" {
		c.SiteID = d.SiteID
	}
	if c.ProjectID == "" {
		c.ProjectID = d.ProjectID
	}
	if c.PublisherID == "" {
		c.PublisherID = d.PublisherID
	}
	return c
}

// returns the named field, used for credential requirement checks
func (c Credentials) Field(name string) string {
	switch name {
	case "apiKey":
		return c.APIKey
	case "apiUrl":
		return c.APIURL
	case "siteId":
		return c.SiteID
	case "projectId":
		return c.ProjectID
	case "publisherId":
		return c.PublisherID
	}
	return ""
}
