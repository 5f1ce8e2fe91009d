package model

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"

	apiTimeLayout      = "2006-01-02T15:04:05"
	apiTimeMicroLayout = "2006-01-02T15:04:05.000000"
)

// DateRange is the resolved evaluation window. Begin and End are UTC.
type DateRange struct {
	Begin time.Time
	End   time.Time
}

// QueryWindow returns the begin_at and end_at values sent to the intra API.
// The end is widened by one calendar day so the end date itself is included.
func (r DateRange) QueryWindow() (string, string) {
	return formatAPITime(r.Begin), formatAPITime(r.End.AddDate(0, 0, 1))
}

func formatAPITime(t time.Time) string {
	t = t.UTC().Truncate(time.Microsecond)
	if t.Nanosecond() == 0 {
		return t.Format(apiTimeLayout) + "Z"
	}
	return t.Format(apiTimeMicroLayout) + "Z"
}

// DailyDurations maps an ISO date to the raw "H:MM:SS.ffffff" duration returned by the API
type DailyDurations map[string]string

// DailyEntry is one parsed day of DailyDurations
type DailyEntry struct {
	Date     string
	Duration time.Duration
}

// TotalDuration is the exact sum of a DailyDurations mapping.
// Both the hours and the minutes views are derived from it.
type TotalDuration time.Duration

// Duration returns the underlying time.Duration
func (d TotalDuration) Duration() time.Duration {
	return time.Duration(d)
}

// Hours returns the fractional number of hours
func (d TotalDuration) Hours() float64 {
	return time.Duration(d).Hours()
}

// Minutes returns whole minutes; sub-minute remainders are dropped
func (d TotalDuration) Minutes() int {
	return int(time.Duration(d) / time.Minute)
}

// Percent returns the share of ceiling hours covered, unclamped. A non-positive ceiling yields 0.
func (d TotalDuration) Percent(ceiling float64) float64 {
	if ceiling <= 0 {
		return 0
	}
	return d.Hours() / ceiling * 100
}

// String renders the total as "8h 05m"
func (d TotalDuration) String() string {
	minutes := d.Minutes()
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// User is the subset of the intra user profile the tool displays
type User struct {
	ID          int
	Login       string
	DisplayName string
	Location    string
}

// LogtimeReport is everything a renderer needs for one run
type LogtimeReport struct {
	Login    string
	User     *User
	Range    DateRange
	Daily    DailyDurations
	Days     []DailyEntry
	Total    TotalDuration
	MaxHours float64
}

// DisplayName prefers the profile display name and falls back to the login
func (r *LogtimeReport) DisplayName() string {
	if r.User != nil && r.User.DisplayName != "" {
		return r.User.DisplayName
	}
	return r.Login
}
