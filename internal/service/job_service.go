package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"rentx/internal/repository"
)

type JobService struct {
	Repo    repository.JobRepository
	Timeout time.Duration
}

func NewJobService(repo repository.JobRepository) *JobService {
	return &JobService{Repo: repo, Timeout: time.Minute}
}

// FinishExpiredSchedules marks active reservations whose end date passed as finished.
func (s *JobService) FinishExpiredSchedules(ctx context.Context) error {
	ids, err := s.Repo.GetActiveScheduleIDsPastEndDate(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to get active schedules past end date: %w", err)
	}
	if len(ids) == 0 {
		zap.S().Debug("cron job: no expired schedules")
		return nil
	}

	zap.S().Infow("cron job: finishing expired schedules", "count", len(ids), "ids", ids)
	if err := s.Repo.UpdateScheduleStatuses(ctx, ids, StatusFinished); err != nil {
		return fmt.Errorf("cron job: failed to update schedule statuses: %w", err)
	}
	return nil
}

// Start schedules FinishExpiredSchedules with the given cron spec and starts
// the scheduler. Stop the returned cron on shutdown.
func (s *JobService) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
		defer cancel()
		if err := s.FinishExpiredSchedules(ctx); err != nil {
			zap.S().Errorw("cron job failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	c.Start()
	return c, nil
}
