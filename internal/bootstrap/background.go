package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/PlayPredix_Go/internal/config"
	"github.com/osse101/PlayPredix_Go/internal/event"
	"github.com/osse101/PlayPredix_Go/internal/leaderboard"
	"github.com/osse101/PlayPredix_Go/internal/notify"
	"github.com/osse101/PlayPredix_Go/internal/scheduler"
	"github.com/osse101/PlayPredix_Go/internal/worker"
)

// Background holds the components that run outside request handling
type Background struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackground starts the worker pool, registers the Discord notifier when a
// webhook is configured and schedules the lock watcher.
func StartBackground(cfg *config.Config, repos *Repositories, bus event.Bus, boards leaderboard.Service) (*Background, error) {
	pool := worker.NewPool(cfg.WorkerCount, WorkerQueueSize)
	pool.Start()

	if cfg.DiscordWebhookURL != "" {
		webhook, err := notify.NewDiscordWebhook(cfg.DiscordWebhookURL)
		if err != nil {
			pool.Stop()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
		}
		notify.New(webhook, boards, repos.Competitions, pool, cfg.NotifyTopN).Register(bus)
		slog.Info(LogMsgNotifierRegistered, "top_n", cfg.NotifyTopN)
	} else {
		slog.Info(LogMsgNotifierDisabled)
	}

	sched, err := scheduler.New(pool)
	if err != nil {
		pool.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateScheduler, err)
	}

	interval := max(cfg.LockWatchInterval, MinLockWatchInterval)
	watcher := scheduler.NewLockWatcher(repos.Competitions, bus, interval, time.Now)
	if err := sched.Schedule(scheduler.JobNameLockWatcher, interval, watcher); err != nil {
		pool.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduleLockWatcher, err)
	}
	sched.Start()

	slog.Info(LogMsgBackgroundStarted,
		"workers", cfg.WorkerCount,
		"lock_watch_interval", interval)

	return &Background{Pool: pool, Scheduler: sched}, nil
}

// Stop halts scheduling first so no new jobs reach the stopped pool
func (b *Background) Stop() {
	if err := b.Scheduler.Stop(); err != nil {
		slog.Error(LogMsgSchedulerStopFailed, "error", err)
	}
	b.Pool.Stop()
}
