package grading

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/event"
	"github.com/osse101/PlayPredix_Go/internal/logger"
)

// Service records game results and prop answers. Boards are recomputed on
// read, so grading only writes and announces.
type Service interface {
	SetGameResult(ctx context.Context, gameID int64, req domain.SetGameResultRequest) (*domain.Game, error)
	ClearGameResult(ctx context.Context, gameID int64) (*domain.Game, error)
	SetPropAnswer(ctx context.Context, propID int64, req domain.SetPropAnswerRequest) (*domain.PropPrediction, error)
	ClearPropAnswer(ctx context.Context, propID int64) (*domain.PropPrediction, error)
}

// Repository is the part of the competition repository grading needs
type Repository interface {
	GetCompetition(ctx context.Context, id int64) (*domain.Competition, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	GetGame(ctx context.Context, id int64) (*domain.Game, error)
	SetGameResult(ctx context.Context, id int64, winningTeamID *int64, isDraw bool) error
	GetProp(ctx context.Context, id int64) (*domain.PropPrediction, error)
	SetPropAnswer(ctx context.Context, id int64, answer *string) error
}

type service struct {
	repo Repository
	bus  event.Bus
}

// NewService creates a new grading service
func NewService(repo Repository, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

// SetGameResult records either a winner or a draw. Writing one clears the other.
func (s *service) SetGameResult(ctx context.Context, gameID int64, req domain.SetGameResultRequest) (*domain.Game, error) {
	log := logger.FromContext(ctx)

	if (req.WinningTeamID != nil) == req.IsDraw {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgExactlyOneResult)
	}

	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if req.IsDraw {
		competition, err := s.repo.GetCompetition(ctx, game.CompetitionID)
		if err != nil {
			return nil, err
		}
		if !competition.AllowDraws {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgDrawsNotAllowed)
		}
	} else if !game.HasTeam(*req.WinningTeamID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgWinnerNotInGame)
	}

	if err := s.repo.SetGameResult(ctx, gameID, req.WinningTeamID, req.IsDraw); err != nil {
		log.Error(LogMsgGradeFailed, "game_id", gameID, "error", err)
		return nil, fmt.Errorf("failed to set game result: %w", err)
	}
	game.WinningTeamID = req.WinningTeamID
	game.IsDraw = req.IsDraw

	s.announce(ctx, event.ResultGraded, game.CompetitionID, domain.SubjectGame, game.ID, s.gameLabel(ctx, game), s.gameOutcome(ctx, game))
	log.Info(LogMsgGameGraded, "game_id", gameID, "winning_team_id", req.WinningTeamID, "is_draw", req.IsDraw)
	return game, nil
}

// ClearGameResult returns the game to ungraded. Its picks stop counting.
func (s *service) ClearGameResult(ctx context.Context, gameID int64) (*domain.Game, error) {
	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetGameResult(ctx, gameID, nil, false); err != nil {
		return nil, fmt.Errorf("failed to clear game result: %w", err)
	}
	game.WinningTeamID = nil
	game.IsDraw = false

	s.announce(ctx, event.ResultCleared, game.CompetitionID, domain.SubjectGame, game.ID, s.gameLabel(ctx, game), "")
	logger.FromContext(ctx).Info(LogMsgGameCleared, "game_id", gameID)
	return game, nil
}

// SetPropAnswer records the correct answer. Matching is exact, so the answer
// is stored as given.
func (s *service) SetPropAnswer(ctx context.Context, propID int64, req domain.SetPropAnswerRequest) (*domain.PropPrediction, error) {
	if strings.TrimSpace(req.Answer) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyAnswer)
	}
	prop, err := s.repo.GetProp(ctx, propID)
	if err != nil {
		return nil, err
	}
	answer := req.Answer
	if err := s.repo.SetPropAnswer(ctx, propID, &answer); err != nil {
		logger.FromContext(ctx).Error(LogMsgGradeFailed, "prop_id", propID, "error", err)
		return nil, fmt.Errorf("failed to set prop answer: %w", err)
	}
	prop.CorrectAnswer = &answer

	s.announce(ctx, event.ResultGraded, prop.CompetitionID, domain.SubjectProp, prop.ID, prop.Question, answer)
	logger.FromContext(ctx).Info(LogMsgPropGraded, "prop_id", propID)
	return prop, nil
}

// ClearPropAnswer returns the prop to ungraded
func (s *service) ClearPropAnswer(ctx context.Context, propID int64) (*domain.PropPrediction, error) {
	prop, err := s.repo.GetProp(ctx, propID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetPropAnswer(ctx, propID, nil); err != nil {
		return nil, fmt.Errorf("failed to clear prop answer: %w", err)
	}
	prop.CorrectAnswer = nil

	s.announce(ctx, event.ResultCleared, prop.CompetitionID, domain.SubjectProp, prop.ID, prop.Question, "")
	logger.FromContext(ctx).Info(LogMsgPropCleared, "prop_id", propID)
	return prop, nil
}

func (s *service) announce(ctx context.Context, typ event.Type, competitionID int64, subject string, subjectID int64, label, outcome string) {
	evt := event.NewResultEvent(typ, competitionID, subject, subjectID, label, outcome)
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(event.LogMsgPublishFailed, "type", typ, "error", err)
	}
}

func (s *service) teamName(ctx context.Context, id int64) string {
	team, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return domain.TeamPick(id)
	}
	return team.Name
}

func (s *service) gameLabel(ctx context.Context, g *domain.Game) string {
	return s.teamName(ctx, g.TeamAID) + " vs " + s.teamName(ctx, g.TeamBID)
}

func (s *service) gameOutcome(ctx context.Context, g *domain.Game) string {
	if g.IsDraw {
		return OutcomeDraw
	}
	return s.teamName(ctx, *g.WinningTeamID) + OutcomeWinSuffix
}
