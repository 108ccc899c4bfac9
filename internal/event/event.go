package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Event types published by the services
const (
	PickSubmitted Type = domain.EventTypePickSubmitted
	ResultGraded  Type = domain.EventTypeResultGraded
	ResultCleared Type = domain.EventTypeResultCleared
	GameLocked    Type = domain.EventTypeGameLocked
	PropLocked    Type = domain.EventTypePropLocked
	LeagueJoined  Type = domain.EventTypeLeagueJoined
)

// NewPickSubmittedEvent creates a pick.submitted event
func NewPickSubmittedEvent(pick *domain.UserPick, created bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PickSubmitted,
		Payload: domain.PickSubmittedPayload{
			ParticipantID:    pick.ParticipantID,
			CompetitionID:    pick.CompetitionID,
			LeagueID:         pick.LeagueID,
			GameID:           pick.GameID,
			PropPredictionID: pick.PropPredictionID,
			Created:          created,
			Timestamp:        time.Now().Unix(),
		},
	}
}

// NewResultEvent creates a result.graded or result.cleared event
func NewResultEvent(eventType Type, competitionID int64, subject string, subjectID int64, label, outcome string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.ResultPayload{
			CompetitionID: competitionID,
			Subject:       subject,
			SubjectID:     subjectID,
			Label:         label,
			Outcome:       outcome,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewLockedEvent creates a game.locked or prop.locked event
func NewLockedEvent(eventType Type, competitionID int64, subject string, subjectID int64, label string, lockedAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.LockedPayload{
			CompetitionID: competitionID,
			Subject:       subject,
			SubjectID:     subjectID,
			Label:         label,
			LockedAt:      lockedAt.Unix(),
		},
	}
}

// NewLeagueJoinedEvent creates a league.joined event
func NewLeagueJoinedEvent(leagueID, participantID uuid.UUID) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LeagueJoined,
		Payload: domain.LeagueJoinedPayload{
			LeagueID:      leagueID,
			ParticipantID: participantID,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously. Handlers that need to do slow
// work hand it to the worker pool.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopBus drops every event. Used by tools that run services without background work.
type NopBus struct{}

// Publish discards the event
func (NopBus) Publish(context.Context, Event) error { return nil }

// Subscribe ignores the handler
func (NopBus) Subscribe(Type, Handler) {}
