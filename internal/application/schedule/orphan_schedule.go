package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"todo-tracker/internal/domain/usecase/task"
	"todo-tracker/pkg/log"
	"todo-tracker/pkg/msg"
	"todo-tracker/pkg/redis"
)

const (
	orphanLockKey       = "orphan_task_cleanup"
	orphanLockNamespace = "todo_schedules"
)

// OrphanSchedulerConfig holds configuration for the orphan task cleanup
type OrphanSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// SchedulerLock is held by the one instance that runs the cleanup.
type SchedulerLock interface {
	Acquire(ctx context.Context) error
	AutoRefresh(ctx context.Context) <-chan error
	Unlock(ctx context.Context) error
}

// OrphanScheduler removes tasks whose to-do list was deleted.
type OrphanScheduler struct {
	cron    *cron.Cron
	useCase task.UseCase
	lock    SchedulerLock
	config  *OrphanSchedulerConfig
}

func NewOrphanScheduler(useCase task.UseCase, redisClient *redis.Client, config OrphanSchedulerConfig) *OrphanScheduler {
	config.LockTTL = durationOrDefault(config.LockTTL, 10*time.Minute)
	config.RefreshInterval = durationOrDefault(config.RefreshInterval, time.Minute)

	return newOrphanScheduler(useCase, redis.NewScheduledTaskLock(
		redisClient,
		orphanLockKey,
		config.LockTTL,
		config.RefreshInterval,
		orphanLockNamespace,
	), config)
}

func newOrphanScheduler(useCase task.UseCase, lock SchedulerLock, config OrphanSchedulerConfig) *OrphanScheduler {
	return &OrphanScheduler{
		cron:    cron.New(),
		useCase: useCase,
		lock:    lock,
		config:  &config,
	}
}

// InitOrphanScheduleTasks waits for the distributed lock in the background and runs the cron while holding it.
// The cron stops when ctx is done or the lock can no longer be refreshed.
func (s *OrphanScheduler) InitOrphanScheduleTasks(ctx context.Context) {
	go func() {
		if err := s.lock.Acquire(ctx); err != nil {
			if ctx.Err() == nil {
				log.Error(msg.GetMessage("cleanup.error.lock", err.Error()), zap.Error(err))
			}
			return
		}
		defer s.release()

		refreshErrChan := s.lock.AutoRefresh(ctx)

		if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
			log.Error("Failed to initialize orphan cleanup scheduler, cron will not be started",
				zap.String("cron", s.config.CronExpression), zap.Error(err))
			return
		}

		s.cron.Start()
		log.Info("Orphan cleanup scheduler started", zap.String("cron", s.config.CronExpression))

		err := <-refreshErrChan
		s.Stop()

		if err != nil {
			log.Error("Orphan cleanup scheduler stopped due to lock refresh failure", zap.Error(err))
		} else {
			log.Info("Orphan cleanup scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask runs one cleanup pass.
func (s *OrphanScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("cleanup.cron.start"), zap.String("request_id", requestID))

	removed, err := s.useCase.DeleteOrphans()
	if err != nil {
		log.Error(msg.GetMessage("cleanup.error.failed", err.Error()), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("cleanup.cron.end", removed), zap.String("request_id", requestID), zap.Int64("removed", removed))
}

// Stop gracefully stops the scheduler
func (s *OrphanScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *OrphanScheduler) release() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.lock.Unlock(ctx); err != nil {
		log.Warn("Failed to release orphan cleanup lock", zap.Error(err))
	}
}

func durationOrDefault(value time.Duration, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}
