package jobs

import (
	"context"
	"time"

	"github.com/500AN/rental-system/internal/config"
	"github.com/500AN/rental-system/internal/logger"
	"github.com/500AN/rental-system/internal/repository"
	"github.com/500AN/rental-system/internal/service"
)

const jobTimeout = 2 * time.Minute

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	bookings repository.BookingRepository
	washing  repository.WashingRepository
	notifier service.Notifier
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(bookings repository.BookingRepository, washing repository.WashingRepository, notifier service.Notifier, cfg *config.Config) *JobRunner {
	return &JobRunner{
		bookings: bookings,
		washing:  washing,
		notifier: notifier,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	jobFunc(ctx)
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs all daily jobs (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendWashingAlerts()
	jr.SendReturnReminders()
}
