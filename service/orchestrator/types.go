package orchestrator

import (
	"context"
	"time"

	"github.com/elC0mpa/intra-logtime/model"
	"github.com/elC0mpa/intra-logtime/service"
)

type orchestratorService struct {
	cfg              model.Config
	dateRangeService service.DateRangeService
	logtimeService   service.LogtimeService
	observer         service.UseCaseObserver
	now              func() time.Time
	newRunID         func() string
	beforeRender     func()
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags, renderers ...service.Renderer) error
	BuildReport(ctx context.Context, login, begin, end string) (*model.LogtimeReport, error)
}

// Option customizes an orchestratorService
type Option func(*orchestratorService)
