package service

import (
	"context"
	"time"

	"github.com/elC0mpa/intra-logtime/model"
)

// DateRangeService resolves the evaluation window from user input
type DateRangeService interface {
	Resolve(begin, end string, now time.Time) (model.DateRange, error)
}

// LogtimeService provides user lookup and per-day logtime from the intranet
type LogtimeService interface {
	Authenticate(ctx context.Context) error
	GetUser(ctx context.Context, login string) (*model.User, error)
	GetDailyDurations(ctx context.Context, login string, dateRange model.DateRange, timeZone string) (model.DailyDurations, error)
}

// Renderer presents a computed report. Implementations must accept a zero total.
type Renderer interface {
	Render(ctx context.Context, report *model.LogtimeReport) error
}
