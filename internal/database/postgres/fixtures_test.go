package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

type fixture struct {
	competition domain.Competition
	teamA       domain.Team
	teamB       domain.Team
	game        domain.Game
	prop        domain.PropPrediction
}

func seedFixture(t *testing.T, repo *CompetitionRepository, start time.Time) fixture {
	t.Helper()
	ctx := context.Background()

	f := fixture{
		competition: domain.Competition{Name: "World Cup", Slug: "world-cup", LockDate: start, AllowDraws: true},
		teamA:       domain.Team{Name: "Brazil"},
		teamB:       domain.Team{Name: "Argentina"},
	}
	require.NoError(t, repo.CreateCompetition(ctx, &f.competition))
	require.NoError(t, repo.CreateTeam(ctx, &f.teamA))
	require.NoError(t, repo.CreateTeam(ctx, &f.teamB))

	stage := "Final"
	f.game = domain.Game{
		CompetitionID: f.competition.ID,
		TeamAID:       f.teamA.ID,
		TeamBID:       f.teamB.ID,
		StartTime:     start,
		Stage:         &stage,
	}
	require.NoError(t, repo.CreateGame(ctx, &f.game))

	f.prop = domain.PropPrediction{CompetitionID: f.competition.ID, Question: "Extra time?", LockDate: start}
	require.NoError(t, repo.CreateProp(ctx, &f.prop))
	return f
}
