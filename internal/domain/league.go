package domain

import (
	"time"

	"github.com/google/uuid"
)

// League is a private group competing on a separate leaderboard. The admin is
// always a member.
type League struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	AdminID       uuid.UUID `json:"admin_id"`
	CompetitionID int64     `json:"competition_id"`
	InviteCode    string    `json:"invite_code"`
	CreatedAt     time.Time `json:"created_at"`
}

// LeagueMember is one participant of a league
type LeagueMember struct {
	LeagueID      uuid.UUID `json:"league_id"`
	ParticipantID uuid.UUID `json:"participant_id"`
	DisplayName   string    `json:"display_name"`
	IsAdmin       bool      `json:"is_admin"`
	JoinedAt      time.Time `json:"joined_at"`
}

// CreateLeagueRequest is the participant payload for a new league
type CreateLeagueRequest struct {
	Name          string `json:"name" validate:"required,notblank,max=80"`
	CompetitionID int64  `json:"competition_id" validate:"required,min=1"`
}

// JoinLeagueRequest is the participant payload for joining with an invite code
type JoinLeagueRequest struct {
	InviteCode string `json:"invite_code" validate:"required,len=8,alphanum"`
}
