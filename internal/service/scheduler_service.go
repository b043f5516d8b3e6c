package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sellaya/trucktrack/internal/config"
	"github.com/sellaya/trucktrack/internal/scheduler"
)

// schedulerService drives the periodic exchange-rate refresh.
type schedulerService struct {
	scheduler    *scheduler.Scheduler
	ratesService RatesService
	logger       *zap.Logger
}

func NewSchedulerService(
	cfg *config.Config,
	ratesService RatesService,
	logger *zap.Logger,
) SchedulerService {
	interval := time.Duration(cfg.Rates.RefreshMinutes) * time.Minute

	svc := &schedulerService{
		ratesService: ratesService,
		logger:       logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, "rates-refresh", interval, svc.executeRefreshTask)
	return svc
}

func (s *schedulerService) Start() error {
	ctx := context.Background()
	return s.scheduler.Start(ctx)
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *schedulerService) executeRefreshTask(ctx context.Context) error {
	return s.ratesService.Refresh(ctx)
}
