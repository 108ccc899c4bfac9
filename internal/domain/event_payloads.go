package domain

import "github.com/google/uuid"

// PickSubmittedPayload is the event payload for pick.submitted events
type PickSubmittedPayload struct {
	ParticipantID    uuid.UUID  `json:"participant_id"`
	CompetitionID    int64      `json:"competition_id"`
	LeagueID         *uuid.UUID `json:"league_id,omitempty"`
	GameID           *int64     `json:"game_id,omitempty"`
	PropPredictionID *int64     `json:"prop_prediction_id,omitempty"`
	Created          bool       `json:"created"`
	Timestamp        int64      `json:"timestamp"`
}

// ResultPayload is the event payload for result.graded and result.cleared events
type ResultPayload struct {
	CompetitionID int64  `json:"competition_id"`
	Subject       string `json:"subject"` // "game" or "prop"
	SubjectID     int64  `json:"subject_id"`
	Label         string `json:"label"`
	Outcome       string `json:"outcome,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

// LockedPayload is the event payload for game.locked and prop.locked events
type LockedPayload struct {
	CompetitionID int64  `json:"competition_id"`
	Subject       string `json:"subject"`
	SubjectID     int64  `json:"subject_id"`
	Label         string `json:"label"`
	LockedAt      int64  `json:"locked_at"`
}

// LeagueJoinedPayload is the event payload for league.joined events
type LeagueJoinedPayload struct {
	LeagueID      uuid.UUID `json:"league_id"`
	ParticipantID uuid.UUID `json:"participant_id"`
	Timestamp     int64     `json:"timestamp"`
}
