package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ListAllKeepsDeclarationOrder(t *testing.T) {
	r := DefaultRegistry()

	var ids []PlatformID
	for _, cfg := range r.ListAll() {
		ids = append(ids, cfg.ID)
	}

	assert.Equal(t, []PlatformID{
		PlatformMeta, PlatformGoogle, PlatformTikTok, PlatformLinkedIn, PlatformPinterest,
		PlatformRevive, PlatformEthicalAds, PlatformPlausible, PlatformMatomo, PlatformPostHog,
	}, ids)
}

func TestRegistry_ListOpenSource(t *testing.T) {
	r := DefaultRegistry()

	open := r.ListOpenSource()
	require.Len(t, open, 5)
	for _, cfg := range open {
		assert.True(t, cfg.IsOpenSource, cfg.ID)
		assert.Equal(t, AuthAPIKey, cfg.AuthType, cfg.ID)
	}
}

func TestRegistry_GetConfig(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name     string
		id       PlatformID
		wantName string
		wantAuth AuthType
		wantErr  error
	}{
		{name: "oauth platform", id: PlatformMeta, wantName: "Meta Ads", wantAuth: AuthOAuth},
		{name: "api key platform", id: PlatformPlausible, wantName: "Plausible Analytics", wantAuth: AuthAPIKey},
		{name: "unknown platform", id: "snapchat", wantErr: ErrUnknownPlatform},
		{name: "empty identifier", id: "", wantErr: ErrUnknownPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := r.GetConfig(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, cfg.ID)
			assert.Equal(t, tt.wantName, cfg.Name)
			assert.Equal(t, tt.wantAuth, cfg.AuthType)
		})
	}
}

func TestRegistry_ConfigsAreNotShared(t *testing.T) {
	r := DefaultRegistry()

	cfg, err := r.GetConfig(PlatformPostHog)
	require.NoError(t, err)
	cfg.Features[0] = "mutated"
	cfg.Name = "mutated"

	again, err := r.GetConfig(PlatformPostHog)
	require.NoError(t, err)
	assert.Equal(t, "events", again.Features[0])
	assert.Equal(t, "PostHog", again.Name)
}

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	id, err := r.Lookup("matomo")
	require.NoError(t, err)
	assert.Equal(t, PlatformMatomo, id)

	_, err = r.Lookup("Matomo")
	var perr *PlatformError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, PlatformID("Matomo"), perr.Platform)
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestNewRegistry_IgnoresDuplicates(t *testing.T) {
	r := NewRegistry(
		PlatformConfig{ID: PlatformRevive, Name: "first"},
		PlatformConfig{ID: PlatformRevive, Name: "second"},
	)

	all := r.ListAll()
	require.Len(t, all, 1)
	assert.Equal(t, "first", all[0].Name)
}
