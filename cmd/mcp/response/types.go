package response

// UserInfo represents an intra user profile
type UserInfo struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
	Location    string `json:"location,omitempty"`
}

// DaySummary represents the time logged on one calendar day
type DaySummary struct {
	Date     string  `json:"date"`
	Duration string  `json:"duration"`
	Hours    float64 `json:"hours"`
}

// LogtimeSummary represents the logtime of a login over a date range
type LogtimeSummary struct {
	Login        string       `json:"login"`
	DisplayName  string       `json:"display_name"`
	BeginDate    string       `json:"begin_date"`
	EndDate      string       `json:"end_date"`
	Days         []DaySummary `json:"days"`
	Total        string       `json:"total"`
	TotalHours   float64      `json:"total_hours"`
	TotalMinutes int          `json:"total_minutes"`
	MaxHours     float64      `json:"max_hours"`
	Percent      float64      `json:"percent"`
	Milestone    string       `json:"milestone,omitempty"`
}
