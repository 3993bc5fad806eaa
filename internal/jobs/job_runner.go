package jobs

import (
	"context"
	"fmt"
	"time"

	"rentora-backend/internal/config"
	"rentora-backend/internal/logger"
	"rentora-backend/internal/repository"
	"rentora-backend/internal/service"
)

// JobRunner executes the scheduled background jobs. Each job is
// self-contained and safe to run repeatedly.
type JobRunner struct {
	cfg          *config.Config
	applications repository.ApplicationRepository
	maintenance  repository.MaintenanceRepository
	properties   repository.PropertyRepository
	profiles     repository.ProfileRepository
	email        service.EmailService
}

func NewJobRunner(
	cfg *config.Config,
	applications repository.ApplicationRepository,
	maintenance repository.MaintenanceRepository,
	properties repository.PropertyRepository,
	profiles repository.ProfileRepository,
	email service.EmailService,
) *JobRunner {
	return &JobRunner{
		cfg:          cfg,
		applications: applications,
		maintenance:  maintenance,
		properties:   properties,
		profiles:     profiles,
		email:        email,
	}
}

// Config exposes the runner's configuration to the scheduler.
func (j *JobRunner) Config() *config.Config {
	return j.cfg
}

// runWithRecovery wraps a job so a panic in one run cannot take down
// the cron process.
func (j *JobRunner) runWithRecovery(name string, fn func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panicked", "job", name, "panic", fmt.Sprintf("%v", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	logger.Info("job started", "job", name)
	if err := fn(ctx); err != nil {
		logger.Error("job failed", "job", name, "error", err, "duration", time.Since(start).String())
		return
	}
	logger.Info("job finished", "job", name, "duration", time.Since(start).String())
}
