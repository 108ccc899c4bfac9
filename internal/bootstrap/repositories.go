package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PlayPredix_Go/internal/database/postgres"
	"github.com/osse101/PlayPredix_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Competitions repository.Competition
	Leagues      repository.League
	Picks        repository.Pick
	Profiles     repository.Profile
}

// InitializeRepositories creates the postgres repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Competitions: postgres.NewCompetitionRepository(dbPool),
		Leagues:      postgres.NewLeagueRepository(dbPool),
		Picks:        postgres.NewPickRepository(dbPool),
		Profiles:     postgres.NewProfileRepository(dbPool),
	}
}
