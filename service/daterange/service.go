package daterange

import (
	"fmt"
	"strings"
	"time"

	"github.com/elC0mpa/intra-logtime/model"
)

// DefaultAnchorDay is the day of month on which an evaluation period starts
const DefaultAnchorDay = 28

// Layouts accepted for begin/end arguments, tried in order. Zoned values are handled by RFC 3339 first.
var inputLayouts = []string{
	time.RFC3339Nano,
	model.DateLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
}

func NewService(anchorDay int) *service {
	if anchorDay < 1 || anchorDay > 28 {
		anchorDay = DefaultAnchorDay
	}
	return &service{
		anchorDay: anchorDay,
	}
}

// Resolve computes the evaluation window. Empty begin or end means the argument was not given.
func (s *service) Resolve(begin, end string, now time.Time) (model.DateRange, error) {
	now = now.UTC()

	var beginAt time.Time
	if begin == "" {
		beginAt = s.DefaultBegin(now)
	} else {
		parsed, err := parseInput(begin)
		if err != nil {
			return model.DateRange{}, fmt.Errorf("begin date: %w", err)
		}
		beginAt = parsed
	}

	endAt := now
	if end != "" {
		parsed, err := parseInput(end)
		if err != nil {
			return model.DateRange{}, fmt.Errorf("end date: %w", err)
		}
		endAt = parsed
	}

	if beginAt.After(now) {
		return model.DateRange{}, fmt.Errorf("%w: begin date %s is in the future", model.ErrInvalidRange, beginAt.Format(model.DateLayout))
	}

	if calendarDate(endAt).Before(calendarDate(beginAt)) {
		return model.DateRange{}, fmt.Errorf("%w: end date %s is before begin date %s",
			model.ErrInvalidRange, endAt.Format(model.DateLayout), beginAt.Format(model.DateLayout))
	}

	return model.DateRange{Begin: beginAt, End: endAt}, nil
}

// DefaultBegin returns the anchor day of the current month once it is reached,
// otherwise the anchor day of the previous month.
func (s *service) DefaultBegin(now time.Time) time.Time {
	now = now.UTC()
	year, month := now.Year(), now.Month()

	if now.Day() < s.anchorDay {
		month--
		if month < time.January {
			month = time.December
			year--
		}
	}

	return time.Date(year, month, s.anchorDay, 0, 0, 0, 0, time.UTC)
}

func parseInput(value string) (time.Time, error) {
	normalized := strings.TrimSpace(value)
	if len(normalized) > 10 && normalized[10] == ' ' {
		normalized = normalized[:10] + "T" + normalized[11:]
	}

	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, normalized)
		if err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q is not an ISO-8601 date", model.ErrInvalidDate, value)
}

func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
