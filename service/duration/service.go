package duration

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/elC0mpa/intra-logtime/model"
)

// hours are unpadded and may exceed 23
var durationRegex = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})\.(\d+)$`)

// Parse converts one "H:MM:SS.ffffff" value into a time.Duration.
// Each field is an integer; the last one counts microseconds whatever its digit count.
func Parse(value string) (time.Duration, error) {
	matches := durationRegex.FindStringSubmatch(value)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", model.ErrMalformedDuration, value)
	}

	fields := []struct {
		name string
		raw  string
		unit time.Duration
	}{
		{"hours", matches[1], time.Hour},
		{"minutes", matches[2], time.Minute},
		{"seconds", matches[3], time.Second},
		{"microseconds", matches[4], time.Microsecond},
	}

	var total time.Duration
	for _, f := range fields {
		n, err := strconv.ParseInt(f.raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s in %q: %w", model.ErrMalformedDuration, f.name, value, err)
		}
		if n > math.MaxInt64/int64(f.unit) {
			return 0, fmt.Errorf("%w: %s in %q out of range", model.ErrMalformedDuration, f.name, value)
		}

		var ok bool
		if total, ok = add(total, time.Duration(n)*f.unit); !ok {
			return 0, fmt.Errorf("%w: %q out of range", model.ErrMalformedDuration, value)
		}
	}

	return total, nil
}

// Sum adds every value of daily. An empty mapping sums to zero.
func Sum(daily model.DailyDurations) (model.TotalDuration, error) {
	var total time.Duration

	for date, value := range daily {
		d, err := Parse(value)
		if err != nil {
			return 0, fmt.Errorf("day %s: %w", date, err)
		}

		var ok bool
		if total, ok = add(total, d); !ok {
			return 0, fmt.Errorf("day %s: %w: total out of range", date, model.ErrMalformedDuration)
		}
	}

	return model.TotalDuration(total), nil
}

// Entries parses daily into entries ordered by date
func Entries(daily model.DailyDurations) ([]model.DailyEntry, error) {
	entries := make([]model.DailyEntry, 0, len(daily))

	for date, value := range daily {
		d, err := Parse(value)
		if err != nil {
			return nil, fmt.Errorf("day %s: %w", date, err)
		}
		entries = append(entries, model.DailyEntry{Date: date, Duration: d})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries, nil
}

// add sums two non-negative durations and reports false on overflow
func add(a, b time.Duration) (time.Duration, bool) {
	if b > math.MaxInt64-a {
		return 0, false
	}
	return a + b, true
}
