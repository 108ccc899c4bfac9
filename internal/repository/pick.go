package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

// Pick defines the interface for pick persistence. A nil leagueID always means
// the public context, never "any context".
type Pick interface {
	// UpsertPick inserts or overwrites the pick for its (participant, context, subject) key.
	// Returns true when a new row was created.
	UpsertPick(ctx context.Context, pick *domain.UserPick) (bool, error)
	ListPicksForParticipant(ctx context.Context, participantID uuid.UUID, competitionID int64, leagueID *uuid.UUID) ([]domain.UserPick, error)
	ListPicksInContext(ctx context.Context, competitionID int64, leagueID *uuid.UUID) ([]domain.UserPick, error)
	// ListPublicParticipants returns everyone with at least one public pick in the competition
	ListPublicParticipants(ctx context.Context, competitionID int64) ([]uuid.UUID, error)
}
