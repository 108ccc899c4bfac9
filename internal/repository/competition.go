package repository

import (
	"context"
	"time"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

// Competition defines the interface for competitions and everything that can be picked in them
type Competition interface {
	ListCompetitions(ctx context.Context) ([]domain.Competition, error)
	GetCompetition(ctx context.Context, id int64) (*domain.Competition, error)
	CreateCompetition(ctx context.Context, c *domain.Competition) error
	UpdateCompetition(ctx context.Context, c *domain.Competition) error
	DeleteCompetition(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Teams
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	ListTeamsForCompetition(ctx context.Context, competitionID int64) ([]domain.Team, error)
	CreateTeam(ctx context.Context, t *domain.Team) error
	UpdateTeamLogo(ctx context.Context, id int64, logoURL string) error
	DeleteTeam(ctx context.Context, id int64) error

	// Games
	GetGame(ctx context.Context, id int64) (*domain.Game, error)
	ListGames(ctx context.Context, competitionID int64) ([]domain.Game, error)
	CreateGame(ctx context.Context, g *domain.Game) error
	DeleteGame(ctx context.Context, id int64) error
	SetGameResult(ctx context.Context, id int64, winningTeamID *int64, isDraw bool) error
	ListGamesStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Game, error)

	// Props
	GetProp(ctx context.Context, id int64) (*domain.PropPrediction, error)
	ListProps(ctx context.Context, competitionID int64) ([]domain.PropPrediction, error)
	CreateProp(ctx context.Context, p *domain.PropPrediction) error
	DeleteProp(ctx context.Context, id int64) error
	SetPropAnswer(ctx context.Context, id int64, answer *string) error
	ListPropsLockingBetween(ctx context.Context, from, to time.Time) ([]domain.PropPrediction, error)
}
