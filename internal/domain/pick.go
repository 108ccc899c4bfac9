package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserPick is a participant's prediction for one game or one prop. LeagueID nil
// means the pick was made in the public context.
type UserPick struct {
	ID               int64      `json:"id"`
	ParticipantID    uuid.UUID  `json:"participant_id"`
	CompetitionID    int64      `json:"competition_id"`
	LeagueID         *uuid.UUID `json:"league_id,omitempty"`
	GameID           *int64     `json:"game_id,omitempty"`
	PropPredictionID *int64     `json:"prop_prediction_id,omitempty"`
	Pick             string     `json:"pick"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SubmitPickRequest is the participant payload for creating or overwriting a pick
type SubmitPickRequest struct {
	CompetitionID    int64      `json:"competition_id" validate:"required,min=1"`
	LeagueID         *uuid.UUID `json:"league_id,omitempty"`
	GameID           *int64     `json:"game_id,omitempty" validate:"omitempty,min=1"`
	PropPredictionID *int64     `json:"prop_prediction_id,omitempty" validate:"omitempty,min=1"`
	Pick             string     `json:"pick" validate:"required,max=100"`
}

// PickResult is returned after a successful submission
type PickResult struct {
	Pick    UserPick `json:"pick"`
	Created bool     `json:"created"`
}

// Participant is the authenticated caller. Identity is owned by an external provider.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

// Profile is the locally stored display information of a participant
type Profile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	UpdatedAt   time.Time `json:"updated_at"`
}
