package model

// Config holds the immutable settings shared by the resolver, the intra client and the renderers
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string

	// TimeZone is forwarded to the API so per-day buckets follow campus midnight
	TimeZone string

	MaxHours   float64
	AnchorDay  int
	Milestones []Milestone
}

// Milestone is a secondary threshold above MaxHours that earns an extra label
type Milestone struct {
	Hours float64
	Label string
}
