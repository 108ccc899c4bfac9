package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/logger"
	"github.com/osse101/PlayPredix_Go/internal/metrics"
	"github.com/osse101/PlayPredix_Go/internal/repository"
	"github.com/osse101/PlayPredix_Go/internal/scoring"
)

// Query selects a leaderboard view
type Query struct {
	CompetitionID int64
	// LeagueID nil selects the public board
	LeagueID *uuid.UUID
	// ParticipantID, when set, fills Leaderboard.Me
	ParticipantID *uuid.UUID
	// Limit truncates Entries after ranking. Zero means everyone.
	Limit int
}

// Service defines the interface for leaderboard reads
type Service interface {
	GetLeaderboard(ctx context.Context, q Query) (*domain.Leaderboard, error)
}

// CompetitionReader is the part of the competition repository a board needs
type CompetitionReader interface {
	GetCompetition(ctx context.Context, id int64) (*domain.Competition, error)
	ListGames(ctx context.Context, competitionID int64) ([]domain.Game, error)
	ListProps(ctx context.Context, competitionID int64) ([]domain.PropPrediction, error)
}

// LeagueReader is the part of the league repository a board needs
type LeagueReader interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*domain.League, error)
	ListMemberIDs(ctx context.Context, leagueID uuid.UUID) ([]uuid.UUID, error)
}

type service struct {
	competitions CompetitionReader
	leagues      LeagueReader
	picks        repository.Pick
	names        *NameCache
	now          func() time.Time
}

// NewService creates a new leaderboard service
func NewService(competitions CompetitionReader, leagues LeagueReader, picks repository.Pick, names *NameCache) Service {
	return &service{
		competitions: competitions,
		leagues:      leagues,
		picks:        picks,
		names:        names,
		now:          time.Now,
	}
}

// GetLeaderboard loads a consistent snapshot and ranks it. Nothing is cached
// except display names, so a regraded result shows on the next read.
func (s *service) GetLeaderboard(ctx context.Context, q Query) (*domain.Leaderboard, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	scope := metrics.Scope(q.LeagueID != nil)

	if q.Limit < 0 || q.Limit > MaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 0 and %d", domain.ErrValidation, MaxLimit)
	}

	if _, err := s.competitions.GetCompetition(ctx, q.CompetitionID); err != nil {
		return nil, err
	}

	participants, err := s.eligibleParticipants(ctx, q)
	if err != nil {
		return nil, err
	}

	board := &domain.Leaderboard{
		CompetitionID: q.CompetitionID,
		LeagueID:      q.LeagueID,
		Entries:       []domain.LeaderboardEntry{},
		GeneratedAt:   s.now().UTC(),
	}
	if len(participants) == 0 {
		return board, nil
	}

	snapshot, err := s.loadSnapshot(ctx, q, participants)
	if err != nil {
		log.Error(LogMsgLeaderboardFailed, "competition_id", q.CompetitionID, "error", err)
		return nil, err
	}

	entries := scoring.Compute(snapshot)
	board.TotalParticipants = len(entries)
	if q.ParticipantID != nil {
		board.Me = scoring.FindEntry(entries, *q.ParticipantID)
	}
	if q.Limit > 0 && len(entries) > q.Limit {
		entries = entries[:q.Limit]
	}
	board.Entries = entries

	elapsed := time.Since(start)
	metrics.LeaderboardComputations.WithLabelValues(scope).Inc()
	metrics.LeaderboardDuration.WithLabelValues(scope).Observe(elapsed.Seconds())
	log.Debug(LogMsgLeaderboardComputed,
		"competition_id", q.CompetitionID,
		"scope", scope,
		"participants", board.TotalParticipants,
		"duration", elapsed)

	return board, nil
}

// eligibleParticipants returns league members (admin included) or everyone
// with a public pick. A league of another competition is an invalid scope.
func (s *service) eligibleParticipants(ctx context.Context, q Query) ([]uuid.UUID, error) {
	if q.LeagueID == nil {
		ids, err := s.picks.ListPublicParticipants(ctx, q.CompetitionID)
		if err != nil {
			return nil, fmt.Errorf("failed to list public participants: %w", err)
		}
		return ids, nil
	}

	league, err := s.leagues.GetLeague(ctx, *q.LeagueID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidScope, err)
		}
		return nil, err
	}
	if league.CompetitionID != q.CompetitionID {
		return nil, domain.ErrLeagueCompetition
	}

	ids, err := s.leagues.ListMemberIDs(ctx, league.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list league members: %w", err)
	}
	return ids, nil
}

func (s *service) loadSnapshot(ctx context.Context, q Query, participants []uuid.UUID) (scoring.Snapshot, error) {
	games, err := s.competitions.ListGames(ctx, q.CompetitionID)
	if err != nil {
		return scoring.Snapshot{}, fmt.Errorf("failed to list games: %w", err)
	}
	props, err := s.competitions.ListProps(ctx, q.CompetitionID)
	if err != nil {
		return scoring.Snapshot{}, fmt.Errorf("failed to list props: %w", err)
	}
	picks, err := s.picks.ListPicksInContext(ctx, q.CompetitionID, q.LeagueID)
	if err != nil {
		return scoring.Snapshot{}, fmt.Errorf("failed to list picks: %w", err)
	}
	names, err := s.names.Resolve(ctx, participants)
	if err != nil {
		return scoring.Snapshot{}, err
	}

	return scoring.Snapshot{
		Participants: participants,
		DisplayNames: names,
		Games:        games,
		Props:        props,
		Picks:        picks,
	}, nil
}
