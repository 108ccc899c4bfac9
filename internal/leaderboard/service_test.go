package leaderboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/repository/memory"
	"github.com/osse101/PlayPredix_Go/internal/testing/leaktest"
)

type fixture struct {
	store *memory.Store
	svc   Service
	comp  domain.Competition
	games []domain.Game
	teamA domain.Team
	teamB domain.Team
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	comp := domain.Competition{Name: "World Cup", Slug: "world-cup", LockDate: time.Now().Add(24 * time.Hour), AllowDraws: true}
	require.NoError(t, store.CreateCompetition(ctx, &comp))
	a := domain.Team{Name: "Brazil"}
	b := domain.Team{Name: "Argentina"}
	require.NoError(t, store.CreateTeam(ctx, &a))
	require.NoError(t, store.CreateTeam(ctx, &b))

	var games []domain.Game
	for i := 0; i < 3; i++ {
		g := domain.Game{CompetitionID: comp.ID, TeamAID: a.ID, TeamBID: b.ID, StartTime: time.Now().Add(time.Duration(i+1) * time.Hour)}
		require.NoError(t, store.CreateGame(ctx, &g))
		games = append(games, g)
	}

	names := NewNameCache(store, 100, time.Minute)
	return &fixture{
		store: store,
		svc:   NewService(store, store, store, names),
		comp:  comp,
		games: games,
		teamA: a,
		teamB: b,
	}
}

func (f *fixture) pick(t *testing.T, who uuid.UUID, league *uuid.UUID, game domain.Game, value string) {
	t.Helper()
	p := domain.UserPick{ParticipantID: who, CompetitionID: f.comp.ID, LeagueID: league, GameID: &game.ID, Pick: value}
	_, err := f.store.UpsertPick(context.Background(), &p)
	require.NoError(t, err)
}

func (f *fixture) win(t *testing.T, game domain.Game, team int64) {
	t.Helper()
	require.NoError(t, f.store.SetGameResult(context.Background(), game.ID, &team, false))
}

func (f *fixture) profile(t *testing.T, who uuid.UUID, name string) {
	t.Helper()
	require.NoError(t, f.store.UpsertProfile(context.Background(), &domain.Profile{ID: who, DisplayName: name}))
}

func TestGetLeaderboard_PublicBoard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana, ben, leagueOnly := uuid.New(), uuid.New(), uuid.New()
	f.profile(t, ana, "Ana")
	f.profile(t, ben, "Ben")
	league := uuid.New()

	f.pick(t, ana, nil, f.games[0], domain.TeamPick(f.teamA.ID))
	f.pick(t, ben, nil, f.games[0], domain.TeamPick(f.teamB.ID))
	f.pick(t, leagueOnly, &league, f.games[0], domain.TeamPick(f.teamA.ID))
	f.win(t, f.games[0], f.teamA.ID)

	board, err := f.svc.GetLeaderboard(ctx, Query{CompetitionID: f.comp.ID})
	require.NoError(t, err)

	require.Len(t, board.Entries, 2)
	assert.Equal(t, 2, board.TotalParticipants)
	assert.Nil(t, board.LeagueID)
	assert.Equal(t, "Ana", board.Entries[0].DisplayName)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, 1, board.Entries[0].Score)
	assert.Equal(t, "Ben", board.Entries[1].DisplayName)
	assert.Equal(t, 2, board.Entries[1].Rank)
	assert.Equal(t, 1, board.Entries[1].IncorrectPicks)
	assert.Nil(t, board.Me)
}

func TestGetLeaderboard_LeagueBoardIncludesZeroPickMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin, picker, idle := uuid.New(), uuid.New(), uuid.New()

	l := domain.League{ID: uuid.New(), Name: "Office", AdminID: admin, CompetitionID: f.comp.ID, InviteCode: "OFFICE01"}
	require.NoError(t, f.store.CreateLeague(ctx, &l))
	_, err := f.store.AddMember(ctx, l.ID, picker)
	require.NoError(t, err)
	_, err = f.store.AddMember(ctx, l.ID, idle)
	require.NoError(t, err)

	f.pick(t, picker, &l.ID, f.games[0], domain.TeamPick(f.teamA.ID))
	// Public picks never count on a league board
	f.pick(t, idle, nil, f.games[0], domain.TeamPick(f.teamA.ID))
	f.win(t, f.games[0], f.teamA.ID)

	board, err := f.svc.GetLeaderboard(ctx, Query{CompetitionID: f.comp.ID, LeagueID: &l.ID, ParticipantID: &idle})
	require.NoError(t, err)

	require.Len(t, board.Entries, 3)
	assert.Equal(t, picker, board.Entries[0].ParticipantID)
	assert.Equal(t, 1, board.Entries[0].Score)
	for _, e := range board.Entries[1:] {
		assert.Equal(t, 2, e.Rank)
		assert.Zero(t, e.Score)
		assert.Zero(t, e.TotalGradedPicks)
		assert.Nil(t, e.LastSubmittedAt)
	}
	require.NotNil(t, board.Me)
	assert.Equal(t, idle, board.Me.ParticipantID)
	assert.Zero(t, board.Me.Score)
}

func TestGetLeaderboard_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := domain.Competition{Name: "Euro", Slug: "euro", LockDate: time.Now()}
	require.NoError(t, f.store.CreateCompetition(ctx, &other))
	foreign := domain.League{ID: uuid.New(), Name: "Euro friends", AdminID: uuid.New(), CompetitionID: other.ID, InviteCode: "EUROFRND"}
	require.NoError(t, f.store.CreateLeague(ctx, &foreign))
	missing := uuid.New()

	tests := []struct {
		name    string
		query   Query
		wantErr error
	}{
		{"unknown competition", Query{CompetitionID: 9999}, domain.ErrNotFound},
		{"unknown league", Query{CompetitionID: f.comp.ID, LeagueID: &missing}, domain.ErrInvalidScope},
		{"league of another competition", Query{CompetitionID: f.comp.ID, LeagueID: &foreign.ID}, domain.ErrInvalidScope},
		{"negative limit", Query{CompetitionID: f.comp.ID, Limit: -1}, domain.ErrValidation},
		{"limit too large", Query{CompetitionID: f.comp.ID, Limit: MaxLimit + 1}, domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.GetLeaderboard(ctx, tt.query)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetLeaderboard_UnknownLeagueIsNotNotFound(t *testing.T) {
	f := newFixture(t)
	missing := uuid.New()
	_, err := f.svc.GetLeaderboard(context.Background(), Query{CompetitionID: f.comp.ID, LeagueID: &missing})
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestGetLeaderboard_EmptyBoard(t *testing.T) {
	f := newFixture(t)
	board, err := f.svc.GetLeaderboard(context.Background(), Query{CompetitionID: f.comp.ID})
	require.NoError(t, err)
	assert.NotNil(t, board.Entries)
	assert.Empty(t, board.Entries)
	assert.Zero(t, board.TotalParticipants)
}

func TestGetLeaderboard_LimitKeepsMeFromFullRanking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var people []uuid.UUID
	for i := 0; i < 5; i++ {
		who := uuid.New()
		people = append(people, who)
		for j := 0; j < i; j++ {
			f.pick(t, who, nil, f.games[j%len(f.games)], domain.TeamPick(f.teamA.ID))
		}
		if i == 0 {
			f.pick(t, who, nil, f.games[0], domain.TeamPick(f.teamB.ID))
		}
	}
	for _, g := range f.games {
		f.win(t, g, f.teamA.ID)
	}
	last := people[0]

	board, err := f.svc.GetLeaderboard(ctx, Query{CompetitionID: f.comp.ID, ParticipantID: &last, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, board.Entries, 2)
	assert.Equal(t, 5, board.TotalParticipants)
	require.NotNil(t, board.Me)
	assert.Equal(t, last, board.Me.ParticipantID)
	assert.Equal(t, 5, board.Me.Rank)
}

func TestGetLeaderboard_RegradeShowsOnNextRead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := uuid.New()
	f.pick(t, ana, nil, f.games[0], domain.TeamPick(f.teamA.ID))

	f.win(t, f.games[0], f.teamA.ID)
	board, err := f.svc.GetLeaderboard(ctx, Query{CompetitionID: f.comp.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, board.Entries[0].Score)

	f.win(t, f.games[0], f.teamB.ID)
	board, err = f.svc.GetLeaderboard(ctx, Query{CompetitionID: f.comp.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, board.Entries[0].Score)
	assert.Equal(t, 1, board.Entries[0].IncorrectPicks)
}

func TestGetLeaderboard_PlaceholderNames(t *testing.T) {
	f := newFixture(t)
	anon := uuid.New()
	f.pick(t, anon, nil, f.games[0], "draw")

	board, err := f.svc.GetLeaderboard(context.Background(), Query{CompetitionID: f.comp.ID})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderName(anon), board.Entries[0].DisplayName)
}

func TestGetLeaderboard_ConcurrentReads(t *testing.T) {
	// The fixture's name cache owns a janitor goroutine, so count after it exists
	f := newFixture(t)
	checker := leaktest.NewGoroutineChecker(t)
	for i := 0; i < 20; i++ {
		f.pick(t, uuid.New(), nil, f.games[i%3], domain.TeamPick(f.teamA.ID))
	}
	f.win(t, f.games[0], f.teamA.ID)

	want, err := f.svc.GetLeaderboard(context.Background(), Query{CompetitionID: f.comp.ID})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.svc.GetLeaderboard(context.Background(), Query{CompetitionID: f.comp.ID})
			if err != nil {
				errs <- err
				return
			}
			if !assert.Equal(t, want.Entries, got.Entries) {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	checker.Check(0)
}
