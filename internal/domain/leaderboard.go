package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is one computed row of a leaderboard. Never stored.
type LeaderboardEntry struct {
	Rank             int        `json:"rank"`
	ParticipantID    uuid.UUID  `json:"participant_id"`
	DisplayName      string     `json:"display_name"`
	Score            int        `json:"score"`
	CorrectPicks     int        `json:"correct_picks"`
	IncorrectPicks   int        `json:"incorrect_picks"`
	TotalGradedPicks int        `json:"total_graded_picks"`
	LastSubmittedAt  *time.Time `json:"last_submitted_at,omitempty"`
}

// Leaderboard is a ranked view of one competition, either public or scoped to a league
type Leaderboard struct {
	CompetitionID     int64              `json:"competition_id"`
	LeagueID          *uuid.UUID         `json:"league_id,omitempty"`
	Entries           []LeaderboardEntry `json:"entries"`
	Me                *LeaderboardEntry  `json:"me,omitempty"`
	TotalParticipants int                `json:"total_participants"`
	GeneratedAt       time.Time          `json:"generated_at"`
}
