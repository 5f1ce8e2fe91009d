package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elC0mpa/intra-logtime/model"
	"github.com/elC0mpa/intra-logtime/service"
	"github.com/elC0mpa/intra-logtime/service/duration"
	"github.com/google/uuid"
)

func NewService(cfg model.Config, dateRangeService service.DateRangeService, logtimeService service.LogtimeService, opts ...Option) *orchestratorService {
	s := &orchestratorService{
		cfg:              cfg,
		dateRangeService: dateRangeService,
		logtimeService:   logtimeService,
		observer:         service.NoopUseCaseObserver{},
		now:              time.Now,
		newRunID:         uuid.NewString,
		beforeRender:     func() {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithObserver reports every pipeline step to observer
func WithObserver(observer service.UseCaseObserver) Option {
	return func(s *orchestratorService) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *orchestratorService) {
		s.now = now
	}
}

// WithBeforeRender runs hook once the report is built, before any renderer draws
func WithBeforeRender(hook func()) Option {
	return func(s *orchestratorService) {
		s.beforeRender = hook
	}
}

// Orchestrate builds the report for flags and hands it to every renderer in order.
// Nothing is rendered when the report cannot be built.
func (s *orchestratorService) Orchestrate(ctx context.Context, flags model.Flags, renderers ...service.Renderer) error {
	report, err := s.BuildReport(ctx, flags.Login, flags.Begin, flags.End)
	if err != nil {
		return err
	}

	s.beforeRender()

	for _, renderer := range renderers {
		if err := renderer.Render(ctx, report); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}

	return nil
}

// BuildReport resolves the range, fetches the user and their per-day logtime and sums it
func (s *orchestratorService) BuildReport(ctx context.Context, login, begin, end string) (*model.LogtimeReport, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, model.ErrMissingLogin
	}

	runID := s.newRunID()

	var dateRange model.DateRange
	err := s.step(ctx, runID, "resolve_range", nil, func() error {
		var err error
		dateRange, err = s.dateRangeService.Resolve(begin, end, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	err = s.step(ctx, runID, "authenticate", nil, func() error {
		return s.logtimeService.Authenticate(ctx)
	})
	if err != nil {
		return nil, err
	}

	var user *model.User
	err = s.step(ctx, runID, "get_user", map[string]any{"login": login}, func() error {
		var err error
		user, err = s.logtimeService.GetUser(ctx, login)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("invalid user %s: %w", login, err)
	}

	beginAt, endAt := dateRange.QueryWindow()
	var daily model.DailyDurations
	err = s.step(ctx, runID, "fetch_logtime", map[string]any{"login": login, "begin_at": beginAt, "end_at": endAt}, func() error {
		var err error
		daily, err = s.logtimeService.GetDailyDurations(ctx, login, dateRange, s.cfg.TimeZone)
		return err
	})
	if err != nil {
		return nil, err
	}

	report := &model.LogtimeReport{
		Login:    login,
		User:     user,
		Range:    dateRange,
		Daily:    daily,
		MaxHours: s.cfg.MaxHours,
	}
	err = s.step(ctx, runID, "aggregate", map[string]any{"days": len(daily)}, func() error {
		var err error
		if report.Total, err = duration.Sum(daily); err != nil {
			return err
		}
		report.Days, err = duration.Entries(daily)
		return err
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (s *orchestratorService) step(ctx context.Context, runID, name string, fields map[string]any, fn func() error) error {
	start := time.Now()
	err := fn()
	s.observer.ObserveUseCase(ctx, service.UseCaseEvent{
		Name:     name,
		RunID:    runID,
		Duration: time.Since(start),
		Err:      err,
		Fields:   fields,
	})
	return err
}
