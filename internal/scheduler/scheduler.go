package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/osse101/PlayPredix_Go/internal/logger"
	"github.com/osse101/PlayPredix_Go/internal/worker"
)

// Scheduler runs jobs at fixed intervals by handing them to the worker pool
type Scheduler struct {
	cron       gocron.Scheduler
	workerPool *worker.Pool
}

// New creates a new scheduler. It does not run anything until Start.
func New(pool *worker.Pool) (*Scheduler, error) {
	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{
		cron:       cron,
		workerPool: pool,
	}, nil
}

// Schedule registers a job to run at a fixed interval. A tick is skipped when
// the worker queue is full rather than blocking the scheduler.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) error {
	_, err := s.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if !s.workerPool.TryEnqueue(job) {
				logger.Info(LogMsgJobSkipped, "job", name)
			}
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	return nil
}

// Start starts running registered jobs
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops all scheduled jobs. Jobs already queued on the pool are not affected.
func (s *Scheduler) Stop() error {
	return s.cron.Shutdown()
}
