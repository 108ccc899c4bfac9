package bootstrap

import (
	"github.com/osse101/PlayPredix_Go/internal/competition"
	"github.com/osse101/PlayPredix_Go/internal/config"
	"github.com/osse101/PlayPredix_Go/internal/event"
	"github.com/osse101/PlayPredix_Go/internal/grading"
	"github.com/osse101/PlayPredix_Go/internal/leaderboard"
	"github.com/osse101/PlayPredix_Go/internal/league"
	"github.com/osse101/PlayPredix_Go/internal/pick"
	"github.com/osse101/PlayPredix_Go/internal/server"
	"github.com/osse101/PlayPredix_Go/internal/storage"
)

// InitializeServices wires the domain services. Picks and leagues record
// display names through the same cache the leaderboard reads from.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus, logos storage.LogoStore) server.Services {
	names := leaderboard.NewNameCache(repos.Profiles, cfg.ProfileCacheSize, cfg.ProfileCacheTTL)

	return server.Services{
		Competitions: competition.NewService(repos.Competitions, logos),
		Leaderboards: leaderboard.NewService(repos.Competitions, repos.Leagues, repos.Picks, names),
		Picks:        pick.NewService(repos.Competitions, repos.Leagues, repos.Picks, names, bus),
		Leagues:      league.NewService(repos.Leagues, repos.Competitions, names, bus),
		Grading:      grading.NewService(repos.Competitions, bus),
	}
}
