package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent captures one step of a logtime run (resolve_range, authenticate, get_user, fetch_logtime, aggregate)
type UseCaseEvent struct {
	Name     string
	RunID    string
	Duration time.Duration
	Err      error
	Fields   map[string]any
}

// UseCaseObserver receives pipeline step events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one slog text record per step to w, named after the step
func NewLogUseCaseObserver(w io.Writer, level slog.Level) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"run_id", event.RunID,
		"elapsed", event.Duration.Round(time.Millisecond).String(),
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}

	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, event.Name+" failed", attrs...)
		return
	}
	o.logger.DebugContext(ctx, event.Name+" done", attrs...)
}
