package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/elC0mpa/intra-logtime/model"
)

const (
	DefaultBaseURL  = "https://api.intra.42.fr/v2"
	DefaultTimeZone = "Africa/Casablanca"
	DefaultMaxHours = 120
	DefaultAnchor   = 28
)

func NewService() *service {
	return &service{
		lookup: os.LookupEnv,
	}
}

// NewServiceWithLookup reads variables through lookup instead of the process environment
func NewServiceWithLookup(lookup func(string) (string, bool)) *service {
	return &service{
		lookup: lookup,
	}
}

// DefaultConfig returns the configuration without credentials
func DefaultConfig() model.Config {
	return model.Config{
		BaseURL:   DefaultBaseURL,
		TokenURL:  DefaultBaseURL + "/oauth/token",
		TimeZone:  DefaultTimeZone,
		MaxHours:  DefaultMaxHours,
		AnchorDay: DefaultAnchor,
		Milestones: []model.Milestone{
			{Hours: 150, Label: "Legend: 150h+ on campus"},
			{Hours: 130, Label: "Overachiever: 130h+ on campus"},
		},
	}
}

// GetConfig layers INTRA_* and LOGTIME_* variables over DefaultConfig
func (s *service) GetConfig() (model.Config, error) {
	cfg := DefaultConfig()

	if v := s.getEnv("INTRA_API_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
		cfg.TokenURL = cfg.BaseURL + "/oauth/token"
	}
	if v := s.getEnv("INTRA_TOKEN_URL"); v != "" {
		cfg.TokenURL = v
	}

	cfg.ClientID = s.getEnv("INTRA_CLIENT_ID")
	cfg.ClientSecret = s.getEnv("INTRA_CLIENT_SECRET")
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return model.Config{}, model.ErrMissingCredentials
	}

	if v := s.getEnv("LOGTIME_TIMEZONE"); v != "" {
		if _, err := time.LoadLocation(v); err != nil {
			return model.Config{}, fmt.Errorf("invalid LOGTIME_TIMEZONE %q: %w", v, err)
		}
		cfg.TimeZone = v
	}

	if v := s.getEnv("LOGTIME_MAX_HOURS"); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil || hours <= 0 {
			return model.Config{}, fmt.Errorf("invalid LOGTIME_MAX_HOURS %q: must be a positive number", v)
		}
		cfg.MaxHours = hours
	}

	return cfg, nil
}

func (s *service) getEnv(key string) string {
	value, ok := s.lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
