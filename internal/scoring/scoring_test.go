package scoring

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

var (
	baseTime = time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

	participantP = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	participantQ = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	participantR = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
)

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func gamePick(participant uuid.UUID, gameID int64, pick string, at time.Time) domain.UserPick {
	return domain.UserPick{
		ParticipantID: participant,
		CompetitionID: 1,
		GameID:        int64Ptr(gameID),
		Pick:          pick,
		CreatedAt:     at,
		UpdatedAt:     at,
	}
}

func propPick(participant uuid.UUID, propID int64, pick string, at time.Time) domain.UserPick {
	return domain.UserPick{
		ParticipantID:    participant,
		CompetitionID:    1,
		PropPredictionID: int64Ptr(propID),
		Pick:             pick,
		CreatedAt:        at,
		UpdatedAt:        at,
	}
}

func entryFor(t *testing.T, entries []domain.LeaderboardEntry, id uuid.UUID) domain.LeaderboardEntry {
	t.Helper()
	e := FindEntry(entries, id)
	require.NotNil(t, e, "participant %s missing from leaderboard", id)
	return *e
}

func TestGradeGamePick(t *testing.T) {
	drawGame := domain.Game{ID: 1, TeamAID: 1, TeamBID: 2, IsDraw: true}
	wonGame := domain.Game{ID: 2, TeamAID: 1, TeamBID: 2, WinningTeamID: int64Ptr(2)}
	openGame := domain.Game{ID: 3, TeamAID: 1, TeamBID: 2}

	tests := []struct {
		name string
		game domain.Game
		pick string
		want Outcome
	}{
		{"draw picked on drawn game", drawGame, domain.PickDraw, Correct},
		{"team picked on drawn game", drawGame, "1", Incorrect},
		{"winner picked", wonGame, "2", Correct},
		{"loser picked", wonGame, "1", Incorrect},
		{"draw picked on decided game", wonGame, domain.PickDraw, Incorrect},
		{"ungraded game", openGame, "1", NotCounted},
		{"ungraded game with draw pick", openGame, domain.PickDraw, NotCounted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GradeGamePick(&tt.game, tt.pick))
		})
	}
}

func TestGradePropPick(t *testing.T) {
	graded := domain.PropPrediction{ID: 1, CorrectAnswer: strPtr("Yes")}
	open := domain.PropPrediction{ID: 2}

	assert.Equal(t, Correct, GradePropPick(&graded, "Yes"))
	assert.Equal(t, Incorrect, GradePropPick(&graded, "No"))
	assert.Equal(t, Incorrect, GradePropPick(&graded, "yes"), "matching is case-sensitive")
	assert.Equal(t, NotCounted, GradePropPick(&open, "Yes"))
}

// Scenario: drawn game, one participant picked the draw and one picked a team.
func TestCompute_DrawnGame(t *testing.T) {
	snap := Snapshot{
		Participants: []uuid.UUID{participantP, participantQ},
		Games:        []domain.Game{{ID: 10, CompetitionID: 1, TeamAID: 1, TeamBID: 2, IsDraw: true}},
		Picks: []domain.UserPick{
			gamePick(participantP, 10, domain.PickDraw, baseTime),
			gamePick(participantQ, 10, "1", baseTime),
		},
	}

	entries := Compute(snap)
	require.Len(t, entries, 2)

	p := entryFor(t, entries, participantP)
	assert.Equal(t, 1, p.CorrectPicks)
	assert.Equal(t, 0, p.IncorrectPicks)
	assert.Equal(t, 1, p.Score)
	assert.Equal(t, 1, p.Rank)

	q := entryFor(t, entries, participantQ)
	assert.Equal(t, 0, q.CorrectPicks)
	assert.Equal(t, 1, q.IncorrectPicks)
	assert.Equal(t, 0, q.Score)
	assert.Equal(t, 2, q.Rank)
}

// Scenario: graded prop, exact answer match.
func TestCompute_GradedProp(t *testing.T) {
	snap := Snapshot{
		Participants: []uuid.UUID{participantP, participantR},
		Props:        []domain.PropPrediction{{ID: 5, CompetitionID: 1, Question: "Will X happen?", CorrectAnswer: strPtr("Yes")}},
		Picks: []domain.UserPick{
			propPick(participantP, 5, "Yes", baseTime),
			propPick(participantR, 5, "No", baseTime),
		},
	}

	entries := Compute(snap)

	p := entryFor(t, entries, participantP)
	assert.Equal(t, 1, p.CorrectPicks)
	assert.Equal(t, 0, p.IncorrectPicks)

	r := entryFor(t, entries, participantR)
	assert.Equal(t, 0, r.CorrectPicks)
	assert.Equal(t, 1, r.IncorrectPicks)
}

// Scenario: equal score, more graded picks ranks higher.
func TestCompute_TiebreakOnGradedPicks(t *testing.T) {
	games := []domain.Game{
		{ID: 1, TeamAID: 1, TeamBID: 2, WinningTeamID: int64Ptr(1)},
		{ID: 2, TeamAID: 1, TeamBID: 2, WinningTeamID: int64Ptr(1)},
		{ID: 3, TeamAID: 1, TeamBID: 2, WinningTeamID: int64Ptr(1)},
	}
	snap := Snapshot{
		// R listed first so the order cannot come from input order
		Participants: []uuid.UUID{participantR, participantP},
		Games:        games,
		Picks: []domain.UserPick{
			gamePick(participantP, 1, "1", baseTime),
			gamePick(participantP, 2, "1", baseTime),
			gamePick(participantP, 3, "2", baseTime),
			gamePick(participantR, 1, "1", baseTime),
			gamePick(participantR, 2, "1", baseTime),
		},
	}

	entries := Compute(snap)
	require.Len(t, entries, 2)

	assert.Equal(t, participantP, entries[0].ParticipantID)
	assert.Equal(t, 2, entries[0].Score)
	assert.Equal(t, 3, entries[0].TotalGradedPicks)
	assert.Equal(t, 1, entries[0].Rank)

	assert.Equal(t, participantR, entries[1].ParticipantID)
	assert.Equal(t, 2, entries[1].Score)
	assert.Equal(t, 2, entries[1].TotalGradedPicks)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestCompute_TiebreakOnEarliestLastSubmission(t *testing.T) {
	snap := Snapshot{
		Participants: []uuid.UUID{participantP, participantQ},
		Games:        []domain.Game{{ID: 1, TeamAID: 1, TeamBID: 2, WinningTeamID: int64Ptr(1)}},
		Picks: []domain.UserPick{
			gamePick(participantP, 1, "1", baseTime.Add(time.Hour)),
			gamePick(participantQ, 1, "1", baseTime),
		},
	}

	entries := Compute(snap)

	assert.Equal(t, participantQ, entries[0].ParticipantID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, participantP, entries[1].ParticipantID)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestCompute_ExactTiesShareRank(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	c := uuid.MustParse("00000000-0000-0000-0000-000000000003")
	d := uuid.MustParse("00000000-0000-0000-0000-000000000004")

	snap := Snapshot{
		Participants: []uuid.UUID{d, c, b, a},
		Games: []domain.Game{
			{ID: 1, TeamAID: 1, TeamBID: 2, WinningTeamID: int64Ptr(1)},
			{ID: 2, TeamAID: 1, TeamBID: 2, WinningTeamID: int64Ptr(1)},
		},
		Picks: []domain.UserPick{
			gamePick(a, 1, "1", baseTime),
			gamePick(a, 2, "1", baseTime),
			gamePick(b, 1, "1", baseTime),
			gamePick(b, 2, "2", baseTime),
			gamePick(c, 1, "1", baseTime),
			gamePick(c, 2, "2", baseTime),
			gamePick(d, 1, "2", baseTime),
			gamePick(d, 2, "2", baseTime),
		},
	}

	entries := Compute(snap)
	require.Len(t, entries, 4)

	ranks := []int{entries[0].Rank, entries[1].Rank, entries[2].Rank, entries[3].Rank}
	assert.Equal(t, []int{1, 2, 2, 4}, ranks)
	// tied entries are listed by participant id
	assert.Equal(t, b, entries[1].ParticipantID)
	assert.Equal(t, c, entries[2].ParticipantID)
}

// Scenario: a league member without picks still gets an all-zero row.
func TestCompute_ZeroPickParticipant(t *testing.T) {
	snap := Snapshot{
		Participants: []uuid.UUID{participantP, participantQ},
		Games:        []domain.Game{{ID: 1, TeamAID: 1, TeamBID: 2, WinningTeamID: int64Ptr(1)}},
		Picks:        []domain.UserPick{gamePick(participantP, 1, "1", baseTime)},
	}

	entries := Compute(snap)
	require.Len(t, entries, 2)

	q := entryFor(t, entries, participantQ)
	assert.Equal(t, 0, q.Score)
	assert.Equal(t, 0, q.CorrectPicks)
	assert.Equal(t, 0, q.IncorrectPicks)
	assert.Equal(t, 0, q.TotalGradedPicks)
	assert.Nil(t, q.LastSubmittedAt)
	assert.Equal(t, 2, q.Rank)
}

func TestCompute_ZeroPickParticipantsRankAfterPickers(t *testing.T) {
	snap := Snapshot{
		Participants: []uuid.UUID{participantP, participantQ},
		Games:        []domain.Game{{ID: 1, TeamAID: 1, TeamBID: 2}},
		Picks:        []domain.UserPick{gamePick(participantQ, 1, "1", baseTime)},
	}

	entries := Compute(snap)

	assert.Equal(t, participantQ, entries[0].ParticipantID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestCompute_UngradedPicksExcluded(t *testing.T) {
	snap := Snapshot{
		Participants: []uuid.UUID{participantP},
		Games:        []domain.Game{{ID: 1, TeamAID: 1, TeamBID: 2}},
		Props:        []domain.PropPrediction{{ID: 1, Question: "?"}},
		Picks: []domain.UserPick{
			gamePick(participantP, 1, "1", baseTime),
			propPick(participantP, 1, "Yes", baseTime),
		},
	}

	e := entryFor(t, Compute(snap), participantP)
	assert.Equal(t, 0, e.TotalGradedPicks)
	assert.Equal(t, 0, e.Score)
	require.NotNil(t, e.LastSubmittedAt)
}

func TestCompute_IgnoresUnknownSubjectsAndOutsiders(t *testing.T) {
	snap := Snapshot{
		Participants: []uuid.UUID{participantP},
		Games:        []domain.Game{{ID: 1, TeamAID: 1, TeamBID: 2, WinningTeamID: int64Ptr(1)}},
		Picks: []domain.UserPick{
			gamePick(participantP, 99, "1", baseTime),
			propPick(participantP, 42, "Yes", baseTime),
			gamePick(participantQ, 1, "1", baseTime),
		},
	}

	entries := Compute(snap)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].TotalGradedPicks)
	assert.Nil(t, entries[0].LastSubmittedAt)
}

func TestCompute_EmptySnapshot(t *testing.T) {
	entries := Compute(Snapshot{})
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestCompute_DuplicateParticipantsCollapsed(t *testing.T) {
	entries := Compute(Snapshot{Participants: []uuid.UUID{participantP, participantP}})
	assert.Len(t, entries, 1)
}

func TestCompute_DisplayNames(t *testing.T) {
	snap := Snapshot{
		Participants: []uuid.UUID{participantP},
		DisplayNames: map[uuid.UUID]string{participantP: "Pat"},
	}
	assert.Equal(t, "Pat", Compute(snap)[0].DisplayName)
}

func randomSnapshot(rng *rand.Rand, participants, games, props int) Snapshot {
	snap := Snapshot{}
	for i := 0; i < participants; i++ {
		snap.Participants = append(snap.Participants, uuid.New())
	}
	for i := 1; i <= games; i++ {
		g := domain.Game{ID: int64(i), TeamAID: 1, TeamBID: 2}
		switch rng.Intn(4) {
		case 0:
			g.IsDraw = true
		case 1:
			g.WinningTeamID = int64Ptr(1)
		case 2:
			g.WinningTeamID = int64Ptr(2)
		}
		snap.Games = append(snap.Games, g)
	}
	for i := 1; i <= props; i++ {
		p := domain.PropPrediction{ID: int64(i), Question: "?"}
		if rng.Intn(2) == 0 {
			p.CorrectAnswer = strPtr("Yes")
		}
		snap.Props = append(snap.Props, p)
	}
	choices := []string{"1", "2", domain.PickDraw}
	answers := []string{"Yes", "No"}
	for _, id := range snap.Participants {
		for _, g := range snap.Games {
			if rng.Intn(3) == 0 {
				continue
			}
			at := baseTime.Add(time.Duration(rng.Intn(10000)) * time.Second)
			snap.Picks = append(snap.Picks, gamePick(id, g.ID, choices[rng.Intn(len(choices))], at))
		}
		for _, p := range snap.Props {
			if rng.Intn(3) == 0 {
				continue
			}
			at := baseTime.Add(time.Duration(rng.Intn(10000)) * time.Second)
			snap.Picks = append(snap.Picks, propPick(id, p.ID, answers[rng.Intn(len(answers))], at))
		}
	}
	return snap
}

func TestCompute_Idempotent(t *testing.T) {
	snap := randomSnapshot(rand.New(rand.NewSource(7)), 25, 12, 6)

	first := Compute(snap)
	second := Compute(snap)

	assert.Equal(t, first, second)
}

func TestCompute_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	snap := randomSnapshot(rng, 30, 10, 5)
	want := Compute(snap)

	for i := 0; i < 5; i++ {
		shuffled := snap
		shuffled.Picks = append([]domain.UserPick(nil), snap.Picks...)
		shuffled.Participants = append([]uuid.UUID(nil), snap.Participants...)
		rng.Shuffle(len(shuffled.Picks), func(a, b int) {
			shuffled.Picks[a], shuffled.Picks[b] = shuffled.Picks[b], shuffled.Picks[a]
		})
		rng.Shuffle(len(shuffled.Participants), func(a, b int) {
			shuffled.Participants[a], shuffled.Participants[b] = shuffled.Participants[b], shuffled.Participants[a]
		})

		assert.Equal(t, want, Compute(shuffled))
	}
}

func TestCompute_ZeroSumGrading(t *testing.T) {
	snap := randomSnapshot(rand.New(rand.NewSource(3)), 20, 8, 8)
	entries := Compute(snap)

	gradedPerParticipant := make(map[uuid.UUID]int)
	for i := range snap.Picks {
		p := &snap.Picks[i]
		if p.GameID != nil && snap.Games[*p.GameID-1].IsGraded() {
			gradedPerParticipant[p.ParticipantID]++
		}
		if p.PropPredictionID != nil && snap.Props[*p.PropPredictionID-1].IsGraded() {
			gradedPerParticipant[p.ParticipantID]++
		}
	}

	for _, e := range entries {
		assert.Equal(t, e.CorrectPicks+e.IncorrectPicks, e.TotalGradedPicks)
		assert.Equal(t, gradedPerParticipant[e.ParticipantID], e.TotalGradedPicks)
		assert.Equal(t, e.CorrectPicks*PointsPerCorrectPick, e.Score)
	}
}

func TestCompute_DoesNotMutateSnapshot(t *testing.T) {
	snap := randomSnapshot(rand.New(rand.NewSource(5)), 10, 4, 2)
	picks := append([]domain.UserPick(nil), snap.Picks...)
	participants := append([]uuid.UUID(nil), snap.Participants...)

	Compute(snap)

	assert.Equal(t, picks, snap.Picks)
	assert.Equal(t, participants, snap.Participants)
}

func TestRank_Monotonic(t *testing.T) {
	entries := Compute(randomSnapshot(rand.New(rand.NewSource(9)), 50, 10, 10))
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
		assert.LessOrEqual(t, entries[i-1].Rank, entries[i].Rank)
	}
}

func TestFindEntry_ReturnsCopy(t *testing.T) {
	entries := []domain.LeaderboardEntry{{ParticipantID: participantP, Score: 3}}

	e := FindEntry(entries, participantP)
	require.NotNil(t, e)
	e.Score = 10

	assert.Equal(t, 3, entries[0].Score)
	assert.Nil(t, FindEntry(entries, participantQ))
}
