// Package scoring grades picks and ranks participants. Everything here is pure:
// the same snapshot always produces the same leaderboard.
package scoring

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

// Outcome is the grading result of one pick
type Outcome int

const (
	// NotCounted means the game or prop has no result yet
	NotCounted Outcome = iota
	Correct
	Incorrect
)

// PointsPerCorrectPick is awarded for every correct pick
const PointsPerCorrectPick = 1

// Snapshot is the input of a leaderboard computation. Picks must already be
// restricted to one context (public or a single league).
type Snapshot struct {
	Participants []uuid.UUID
	DisplayNames map[uuid.UUID]string
	Games        []domain.Game
	Props        []domain.PropPrediction
	Picks        []domain.UserPick
}

// GradeGamePick grades a pick against a game's recorded result
func GradeGamePick(game *domain.Game, pick string) Outcome {
	if !game.IsGraded() {
		return NotCounted
	}
	if pick == game.WinningPick() {
		return Correct
	}
	return Incorrect
}

// GradePropPick grades a pick against a prop's correct answer. Matching is exact.
func GradePropPick(prop *domain.PropPrediction, pick string) Outcome {
	if !prop.IsGraded() {
		return NotCounted
	}
	if pick == *prop.CorrectAnswer {
		return Correct
	}
	return Incorrect
}

// Compute aggregates and ranks the snapshot. Only listed participants appear;
// picks by anyone else or for unknown games and props are ignored.
func Compute(s Snapshot) []domain.LeaderboardEntry {
	games := make(map[int64]*domain.Game, len(s.Games))
	for i := range s.Games {
		games[s.Games[i].ID] = &s.Games[i]
	}
	props := make(map[int64]*domain.PropPrediction, len(s.Props))
	for i := range s.Props {
		props[s.Props[i].ID] = &s.Props[i]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(s.Participants))
	index := make(map[uuid.UUID]int, len(s.Participants))
	for _, id := range s.Participants {
		if _, dup := index[id]; dup {
			continue
		}
		index[id] = len(entries)
		entries = append(entries, domain.LeaderboardEntry{
			ParticipantID: id,
			DisplayName:   s.DisplayNames[id],
		})
	}

	for i := range s.Picks {
		p := &s.Picks[i]
		pos, ok := index[p.ParticipantID]
		if !ok {
			continue
		}

		outcome, known := gradePick(p, games, props)
		if !known {
			continue
		}

		e := &entries[pos]
		if e.LastSubmittedAt == nil || p.UpdatedAt.After(*e.LastSubmittedAt) {
			ts := p.UpdatedAt
			e.LastSubmittedAt = &ts
		}

		switch outcome {
		case Correct:
			e.CorrectPicks++
			e.Score += PointsPerCorrectPick
		case Incorrect:
			e.IncorrectPicks++
		}
	}

	for i := range entries {
		entries[i].TotalGradedPicks = entries[i].CorrectPicks + entries[i].IncorrectPicks
	}

	Rank(entries)
	return entries
}

func gradePick(p *domain.UserPick, games map[int64]*domain.Game, props map[int64]*domain.PropPrediction) (Outcome, bool) {
	switch {
	case p.GameID != nil:
		g, ok := games[*p.GameID]
		if !ok {
			return NotCounted, false
		}
		return GradeGamePick(g, p.Pick), true
	case p.PropPredictionID != nil:
		pr, ok := props[*p.PropPredictionID]
		if !ok {
			return NotCounted, false
		}
		return GradePropPick(pr, p.Pick), true
	default:
		return NotCounted, false
	}
}

// Rank orders entries in place and assigns competition ranks (1, 2, 2, 4).
// Order: score desc, graded picks desc, earliest last submission, then
// participant id for a stable display order. The participant id never
// separates ranks.
func Rank(entries []domain.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if c := compareStanding(&entries[i], &entries[j]); c != 0 {
			return c < 0
		}
		return bytes.Compare(entries[i].ParticipantID[:], entries[j].ParticipantID[:]) < 0
	})

	for i := range entries {
		if i > 0 && compareStanding(&entries[i-1], &entries[i]) == 0 {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}
}

// compareStanding returns a negative number when a ranks ahead of b, zero on a tie
func compareStanding(a, b *domain.LeaderboardEntry) int {
	if a.Score != b.Score {
		return b.Score - a.Score
	}
	if a.TotalGradedPicks != b.TotalGradedPicks {
		return b.TotalGradedPicks - a.TotalGradedPicks
	}
	return compareLastSubmission(a.LastSubmittedAt, b.LastSubmittedAt)
}

// participants without picks sort after those with picks
func compareLastSubmission(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case b.Before(*a):
		return 1
	default:
		return 0
	}
}

// FindEntry returns the entry of a participant, or nil when they are not ranked
func FindEntry(entries []domain.LeaderboardEntry, participantID uuid.UUID) *domain.LeaderboardEntry {
	for i := range entries {
		if entries[i].ParticipantID == participantID {
			e := entries[i]
			return &e
		}
	}
	return nil
}
