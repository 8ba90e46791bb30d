package jobs

import (
	"bikeshare-rental-backend/internal/config"
	"bikeshare-rental-backend/internal/gateway"
	"bikeshare-rental-backend/internal/logger"
	"bikeshare-rental-backend/internal/repository"
)

// JobRunner carries the dependencies shared by all scheduled jobs.
type JobRunner struct {
	rentalRepo  repository.RentalRepository
	cyclistRepo repository.CyclistRepository
	notifier    gateway.NotificationGateway
	cfg         *config.Config
}

func NewJobRunner(
	rentalRepo repository.RentalRepository,
	cyclistRepo repository.CyclistRepository,
	notifier gateway.NotificationGateway,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		rentalRepo:  rentalRepo,
		cyclistRepo: cyclistRepo,
		notifier:    notifier,
		cfg:         cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.cfg
}

// runWithRecovery wraps a job so a panic in one run does not take down the
// cron runner.
func (jr *JobRunner) runWithRecovery(name string, job func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panicked", "job", name, "panic", r)
		}
	}()
	logger.Info("job started", "job", name)
	job()
	logger.Info("job finished", "job", name)
}
