package config

import (
	"testing"

	"github.com/elC0mpa/intra-logtime/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestGetConfig_Defaults(t *testing.T) {
	cfg, err := NewServiceWithLookup(envLookup(map[string]string{
		"INTRA_CLIENT_ID":     "u-id",
		"INTRA_CLIENT_SECRET": "s-secret",
	})).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.intra.42.fr/v2", cfg.BaseURL)
	assert.Equal(t, "https://api.intra.42.fr/v2/oauth/token", cfg.TokenURL)
	assert.Equal(t, "u-id", cfg.ClientID)
	assert.Equal(t, "s-secret", cfg.ClientSecret)
	assert.Equal(t, "Africa/Casablanca", cfg.TimeZone)
	assert.Equal(t, 120.0, cfg.MaxHours)
	assert.Equal(t, 28, cfg.AnchorDay)
	require.Len(t, cfg.Milestones, 2)
	assert.Equal(t, 150.0, cfg.Milestones[0].Hours)
	assert.Equal(t, 130.0, cfg.Milestones[1].Hours)
}

func TestGetConfig_Overrides(t *testing.T) {
	cfg, err := NewServiceWithLookup(envLookup(map[string]string{
		"INTRA_CLIENT_ID":     " u-id ",
		"INTRA_CLIENT_SECRET": "s-secret",
		"INTRA_API_URL":       "http://localhost:8080/v2/",
		"LOGTIME_TIMEZONE":    "Europe/Paris",
		"LOGTIME_MAX_HOURS":   "140.5",
	})).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "u-id", cfg.ClientID)
	assert.Equal(t, "http://localhost:8080/v2", cfg.BaseURL)
	assert.Equal(t, "http://localhost:8080/v2/oauth/token", cfg.TokenURL)
	assert.Equal(t, "Europe/Paris", cfg.TimeZone)
	assert.Equal(t, 140.5, cfg.MaxHours)
}

func TestGetConfig_TokenURLOverride(t *testing.T) {
	cfg, err := NewServiceWithLookup(envLookup(map[string]string{
		"INTRA_CLIENT_ID":     "u-id",
		"INTRA_CLIENT_SECRET": "s-secret",
		"INTRA_TOKEN_URL":     "http://auth.local/token",
	})).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://auth.local/token", cfg.TokenURL)
}

func TestGetConfig_MissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"nothing set", map[string]string{}},
		{"secret missing", map[string]string{"INTRA_CLIENT_ID": "u-id"}},
		{"id blank", map[string]string{"INTRA_CLIENT_ID": "  ", "INTRA_CLIENT_SECRET": "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServiceWithLookup(envLookup(tt.env)).GetConfig()
			assert.ErrorIs(t, err, model.ErrMissingCredentials)
		})
	}
}

func TestGetConfig_InvalidValues(t *testing.T) {
	base := func(extra map[string]string) map[string]string {
		env := map[string]string{"INTRA_CLIENT_ID": "u-id", "INTRA_CLIENT_SECRET": "s"}
		for k, v := range extra {
			env[k] = v
		}
		return env
	}

	_, err := NewServiceWithLookup(envLookup(base(map[string]string{"LOGTIME_TIMEZONE": "Mars/Olympus"}))).GetConfig()
	assert.ErrorContains(t, err, "LOGTIME_TIMEZONE")

	_, err = NewServiceWithLookup(envLookup(base(map[string]string{"LOGTIME_MAX_HOURS": "0"}))).GetConfig()
	assert.ErrorContains(t, err, "LOGTIME_MAX_HOURS")

	_, err = NewServiceWithLookup(envLookup(base(map[string]string{"LOGTIME_MAX_HOURS": "lots"}))).GetConfig()
	assert.ErrorContains(t, err, "LOGTIME_MAX_HOURS")
}
