// Package memory is a stateful in-memory implementation of the repository
// interfaces. It mirrors the postgres constraints closely enough for service
// tests and for dry-running fixture imports.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/repository"
)

var (
	_ repository.Competition = (*Store)(nil)
	_ repository.Pick        = (*Store)(nil)
	_ repository.League      = (*Store)(nil)
	_ repository.Profile     = (*Store)(nil)
)

type pickKey struct {
	participant uuid.UUID
	league      uuid.UUID // uuid.Nil for the public context
	game        int64
	prop        int64
}

type memberKey struct {
	league      uuid.UUID
	participant uuid.UUID
}

// Store holds everything in maps guarded by a single mutex
type Store struct {
	mu sync.RWMutex

	nextID int64
	now    func() time.Time

	competitions map[int64]domain.Competition
	teams        map[int64]domain.Team
	games        map[int64]domain.Game
	props        map[int64]domain.PropPrediction
	picks        map[pickKey]domain.UserPick
	leagues      map[uuid.UUID]domain.League
	members      map[memberKey]time.Time
	profiles     map[uuid.UUID]domain.Profile
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		now:          time.Now,
		competitions: make(map[int64]domain.Competition),
		teams:        make(map[int64]domain.Team),
		games:        make(map[int64]domain.Game),
		props:        make(map[int64]domain.PropPrediction),
		picks:        make(map[pickKey]domain.UserPick),
		leagues:      make(map[uuid.UUID]domain.League),
		members:      make(map[memberKey]time.Time),
		profiles:     make(map[uuid.UUID]domain.Profile),
	}
}

// SetClock overrides the clock used for timestamps
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func ptrCopy[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
