package competition

import (
	"context"
	"fmt"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/logger"
)

// ImportFixture creates a competition with its teams, games and props through
// the regular service operations. It stops at the first failure and leaves
// what was already created in place.
func ImportFixture(ctx context.Context, svc Service, f *domain.Fixture) (*domain.FixtureSummary, error) {
	c, err := svc.CreateCompetition(ctx, domain.CreateCompetitionRequest{
		Name:        f.Competition.Name,
		Description: f.Competition.Description,
		LockDate:    f.Competition.LockDate,
		AllowDraws:  f.Competition.AllowDraws,
	})
	if err != nil {
		return nil, fmt.Errorf("competition: %w", err)
	}
	summary := &domain.FixtureSummary{Competition: *c}

	teamIDs := make(map[string]int64, len(f.Teams))
	for _, t := range f.Teams {
		team, err := svc.CreateTeam(ctx, domain.CreateTeamRequest{Name: t.Name})
		if err != nil {
			return summary, fmt.Errorf("team %q: %w", t.Key, err)
		}
		teamIDs[t.Key] = team.ID
		summary.Teams++
	}

	for i, g := range f.Games {
		a, okA := teamIDs[g.TeamA]
		b, okB := teamIDs[g.TeamB]
		if !okA || !okB {
			return summary, fmt.Errorf("games[%d]: %w: unknown team key", i, domain.ErrValidation)
		}
		_, err := svc.CreateGame(ctx, domain.CreateGameRequest{
			CompetitionID: c.ID,
			TeamAID:       a,
			TeamBID:       b,
			StartTime:     g.StartTime,
			Stage:         g.Stage,
		})
		if err != nil {
			return summary, fmt.Errorf("games[%d]: %w", i, err)
		}
		summary.Games++
	}

	for i, p := range f.Props {
		_, err := svc.CreateProp(ctx, domain.CreatePropRequest{
			CompetitionID: c.ID,
			Question:      p.Question,
			LockDate:      p.LockDate,
		})
		if err != nil {
			return summary, fmt.Errorf("props[%d]: %w", i, err)
		}
		summary.Props++
	}

	logger.FromContext(ctx).Info(LogMsgFixtureImported,
		"competition_id", c.ID, "teams", summary.Teams, "games", summary.Games, "props", summary.Props)
	return summary, nil
}
