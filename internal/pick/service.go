package pick

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/event"
	"github.com/osse101/PlayPredix_Go/internal/logger"
	"github.com/osse101/PlayPredix_Go/internal/repository"
)

// Service defines the interface for pick submission and reads
type Service interface {
	SubmitPick(ctx context.Context, participant domain.Participant, req domain.SubmitPickRequest) (*domain.PickResult, error)
	ListMyPicks(ctx context.Context, participantID uuid.UUID, competitionID int64, leagueID *uuid.UUID) ([]domain.UserPick, error)
}

// CompetitionReader is the part of the competition repository admission needs
type CompetitionReader interface {
	GetCompetition(ctx context.Context, id int64) (*domain.Competition, error)
	GetGame(ctx context.Context, id int64) (*domain.Game, error)
	GetProp(ctx context.Context, id int64) (*domain.PropPrediction, error)
}

// LeagueReader is the part of the league repository admission needs
type LeagueReader interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*domain.League, error)
	IsMember(ctx context.Context, leagueID, participantID uuid.UUID) (bool, error)
}

// ProfileRecorder keeps the participant's display name current
type ProfileRecorder interface {
	Remember(ctx context.Context, id uuid.UUID, name string) error
}

type service struct {
	competitions CompetitionReader
	leagues      LeagueReader
	picks        repository.Pick
	profiles     ProfileRecorder
	bus          event.Bus
	now          func() time.Time
}

// NewService creates a new pick service
func NewService(competitions CompetitionReader, leagues LeagueReader, picks repository.Pick, profiles ProfileRecorder, bus event.Bus) Service {
	return NewServiceWithClock(competitions, leagues, picks, profiles, bus, time.Now)
}

// NewServiceWithClock creates a pick service that reads the time from now
func NewServiceWithClock(competitions CompetitionReader, leagues LeagueReader, picks repository.Pick, profiles ProfileRecorder, bus event.Bus, now func() time.Time) Service {
	return &service{
		competitions: competitions,
		leagues:      leagues,
		picks:        picks,
		profiles:     profiles,
		bus:          bus,
		now:          now,
	}
}

// SubmitPick creates or overwrites the participant's pick for one game or prop
// in one context. The lock is checked against the stored lock time at the
// moment of submission; now >= lock is locked.
func (s *service) SubmitPick(ctx context.Context, participant domain.Participant, req domain.SubmitPickRequest) (*domain.PickResult, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	if err := validateShape(req); err != nil {
		return nil, reject(err)
	}

	competition, err := s.competitions.GetCompetition(ctx, req.CompetitionID)
	if err != nil {
		return nil, reject(err)
	}

	if req.LeagueID != nil {
		if err := s.checkLeague(ctx, participant.ID, competition.ID, *req.LeagueID); err != nil {
			return nil, reject(err)
		}
	}

	if req.GameID != nil {
		err = s.admitGamePick(ctx, competition, *req.GameID, req.Pick, now)
	} else {
		err = s.admitPropPick(ctx, competition, *req.PropPredictionID, now)
	}
	if err != nil {
		return nil, reject(err)
	}

	pick := &domain.UserPick{
		ParticipantID:    participant.ID,
		CompetitionID:    competition.ID,
		LeagueID:         req.LeagueID,
		GameID:           req.GameID,
		PropPredictionID: req.PropPredictionID,
		Pick:             req.Pick,
	}
	created, err := s.picks.UpsertPick(ctx, pick)
	if err != nil {
		log.Error(LogMsgUpsertFailed, "competition_id", competition.ID, "error", err)
		return nil, fmt.Errorf("failed to store pick: %w", err)
	}

	if err := s.profiles.Remember(ctx, participant.ID, participant.DisplayName); err != nil {
		log.Warn(LogMsgProfileSyncFailed, "error", err)
	}
	if err := s.bus.Publish(ctx, event.NewPickSubmittedEvent(pick, created)); err != nil {
		log.Warn(event.LogMsgPublishFailed, "type", event.PickSubmitted, "error", err)
	}

	log.Info(LogMsgPickStored, "pick_id", pick.ID, "competition_id", competition.ID, "created", created)
	return &domain.PickResult{Pick: *pick, Created: created}, nil
}

func validateShape(req domain.SubmitPickRequest) error {
	if (req.GameID == nil) == (req.PropPredictionID == nil) {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgExactlyOneSubject)
	}
	if req.Pick == "" {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyPick)
	}
	if utf8.RuneCountInString(req.Pick) > domain.MaxPickLength {
		return fmt.Errorf("%w: pick must be at most %d characters", domain.ErrValidation, domain.MaxPickLength)
	}
	return nil
}

// checkLeague requires the league to exist, belong to the competition and
// count the participant as a member. Every failure is an invalid scope.
func (s *service) checkLeague(ctx context.Context, participantID uuid.UUID, competitionID int64, leagueID uuid.UUID) error {
	league, err := s.leagues.GetLeague(ctx, leagueID)
	if err != nil {
		if domain.IsNotFound(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidScope, err)
		}
		return err
	}
	if league.CompetitionID != competitionID {
		return domain.ErrLeagueCompetition
	}
	member, err := s.leagues.IsMember(ctx, leagueID, participantID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		return domain.ErrNotLeagueMember
	}
	return nil
}

func (s *service) admitGamePick(ctx context.Context, competition *domain.Competition, gameID int64, value string, now time.Time) error {
	game, err := s.competitions.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.CompetitionID != competition.ID {
		return domain.ErrGameCompetition
	}
	if game.IsLocked(now) {
		return domain.ErrPickLocked
	}
	switch value {
	case domain.TeamPick(game.TeamAID), domain.TeamPick(game.TeamBID):
		return nil
	case domain.PickDraw:
		if competition.AllowDraws {
			return nil
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgDrawsNotAllowed)
	default:
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNotATeamInGame)
	}
}

func (s *service) admitPropPick(ctx context.Context, competition *domain.Competition, propID int64, now time.Time) error {
	prop, err := s.competitions.GetProp(ctx, propID)
	if err != nil {
		return err
	}
	if prop.CompetitionID != competition.ID {
		return domain.ErrPropCompetition
	}
	if prop.IsLocked(now) {
		return domain.ErrPickLocked
	}
	return nil
}

// ListMyPicks returns the caller's picks in one context. Locked picks stay readable.
func (s *service) ListMyPicks(ctx context.Context, participantID uuid.UUID, competitionID int64, leagueID *uuid.UUID) ([]domain.UserPick, error) {
	if _, err := s.competitions.GetCompetition(ctx, competitionID); err != nil {
		return nil, err
	}
	if leagueID != nil {
		if err := s.checkLeague(ctx, participantID, competitionID, *leagueID); err != nil {
			return nil, err
		}
	}
	picks, err := s.picks.ListPicksForParticipant(ctx, participantID, competitionID, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks: %w", err)
	}
	return picks, nil
}
