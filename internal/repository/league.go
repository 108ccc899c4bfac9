package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

// League defines the interface for league data access
type League interface {
	// CreateLeague stores the league and its admin membership atomically.
	// Returns domain.ErrInviteCodeTaken when the invite code collides.
	CreateLeague(ctx context.Context, league *domain.League) error
	GetLeague(ctx context.Context, id uuid.UUID) (*domain.League, error)
	GetLeagueByInviteCode(ctx context.Context, code string) (*domain.League, error)
	ListLeaguesForParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.League, error)

	// AddMember returns false when the participant was already a member
	AddMember(ctx context.Context, leagueID, participantID uuid.UUID) (bool, error)
	RemoveMember(ctx context.Context, leagueID, participantID uuid.UUID) error
	IsMember(ctx context.Context, leagueID, participantID uuid.UUID) (bool, error)
	// ListMemberIDs includes the admin
	ListMemberIDs(ctx context.Context, leagueID uuid.UUID) ([]uuid.UUID, error)
	ListMembers(ctx context.Context, leagueID uuid.UUID) ([]domain.LeagueMember, error)
}
