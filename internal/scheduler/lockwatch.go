package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/event"
	"github.com/osse101/PlayPredix_Go/internal/logger"
)

// LockRepository is the slice of the competition repository the watcher reads
type LockRepository interface {
	ListGamesStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Game, error)
	ListPropsLockingBetween(ctx context.Context, from, to time.Time) ([]domain.PropPrediction, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
}

// LockWatcher announces games and props whose pick window closed since its
// previous run. Each run covers (lastRun, now].
type LockWatcher struct {
	repo     LockRepository
	bus      event.Bus
	now      func() time.Time
	interval time.Duration

	mu      sync.Mutex
	lastRun time.Time
}

// NewLockWatcher creates a watcher. The first run looks back one interval.
func NewLockWatcher(repo LockRepository, bus event.Bus, interval time.Duration, now func() time.Time) *LockWatcher {
	if now == nil {
		now = time.Now
	}
	return &LockWatcher{
		repo:     repo,
		bus:      bus,
		now:      now,
		interval: interval,
	}
}

// Process implements worker.Job
func (w *LockWatcher) Process(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now().UTC()
	from := w.lastRun
	if from.IsZero() {
		from = now.Add(-w.interval)
		// Pin the first window so a failed first run is retried from the same start
		w.lastRun = from
	}
	if !now.After(from) {
		return nil
	}

	log := logger.FromContext(ctx)

	games, err := w.repo.ListGamesStartingBetween(ctx, from, now)
	if err != nil {
		log.Error(LogMsgLockWatchFailed, "subject", domain.SubjectGame, "error", err)
		return fmt.Errorf("list games locking in window: %w", err)
	}
	props, err := w.repo.ListPropsLockingBetween(ctx, from, now)
	if err != nil {
		log.Error(LogMsgLockWatchFailed, "subject", domain.SubjectProp, "error", err)
		return fmt.Errorf("list props locking in window: %w", err)
	}

	for i := range games {
		g := &games[i]
		label := w.gameLabel(ctx, g)
		evt := event.NewLockedEvent(event.GameLocked, g.CompetitionID, domain.SubjectGame, g.ID, label, g.StartTime)
		if err := w.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgLockPublishFailed, "game_id", g.ID, "error", err)
			continue
		}
		log.Info(LogMsgLockAnnounced, "game_id", g.ID, "label", label)
	}

	for i := range props {
		p := &props[i]
		evt := event.NewLockedEvent(event.PropLocked, p.CompetitionID, domain.SubjectProp, p.ID, p.Question, p.LockDate)
		if err := w.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgLockPublishFailed, "prop_id", p.ID, "error", err)
			continue
		}
		log.Info(LogMsgLockAnnounced, "prop_id", p.ID)
	}

	// Only advance after both lists succeeded so a failed run is retried next tick.
	w.lastRun = now
	return nil
}

func (w *LockWatcher) gameLabel(ctx context.Context, g *domain.Game) string {
	a, errA := w.repo.GetTeam(ctx, g.TeamAID)
	b, errB := w.repo.GetTeam(ctx, g.TeamBID)
	if errA != nil || errB != nil {
		logger.FromContext(ctx).Debug(LogMsgLockTeamLookupFail, "game_id", g.ID)
		return fmt.Sprintf("Game %d", g.ID)
	}
	return a.Name + " vs " + b.Name
}
