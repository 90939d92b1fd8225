package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"publishing-backend/internal/shared"
	"publishing-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterExpiryJobs schedules the display-window sweeps. Banners and
// homepage blocks whose end date has passed are flipped inactive so
// the storefront never renders stale promotions for more than a few
// minutes.
func (s *Scheduler) RegisterExpiryJobs() error {
	if err := s.registerDeactivateExpiredBannersJob(); err != nil {
		return err
	}
	if err := s.registerDeactivateExpiredHomepageJob(); err != nil {
		return err
	}
	return nil
}

// ================================================
// JOB 1: Deactivate Expired Banners (Every 10 minutes)
// ================================================
func (s *Scheduler) registerDeactivateExpiredBannersJob() error {
	task := asynq.NewTask(shared.TypeDeactivateExpiredBanners, nil)

	_, err := s.scheduler.Register(
		"@every 10m",
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register DeactivateExpiredBanners job", err)
		return err
	}

	logger.Info("Registered DeactivateExpiredBanners: every 10 minutes", nil)
	return nil
}

// ================================================
// JOB 2: Deactivate Expired Homepage Content (Every 10 minutes)
// ================================================
func (s *Scheduler) registerDeactivateExpiredHomepageJob() error {
	task := asynq.NewTask(shared.TypeDeactivateExpiredHomepage, nil)

	_, err := s.scheduler.Register(
		"@every 10m",
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register DeactivateExpiredHomepage job", err)
		return err
	}

	logger.Info("Registered DeactivateExpiredHomepage: every 10 minutes", nil)
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
