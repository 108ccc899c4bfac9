package domain

import (
	"strconv"
	"time"
)

// Competition is a tournament or season that games and props belong to
type Competition struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	LockDate    time.Time `json:"lock_date"` // informational default, locks are per game/prop
	AllowDraws  bool      `json:"allow_draws"`
	CreatedAt   time.Time `json:"created_at"`
}

// Team is a side in a game
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Game is a fixture between two teams. A game is graded once either a winner is
// recorded or it is marked as a draw, never both.
type Game struct {
	ID            int64     `json:"id"`
	CompetitionID int64     `json:"competition_id"`
	TeamAID       int64     `json:"team_a_id"`
	TeamBID       int64     `json:"team_b_id"`
	StartTime     time.Time `json:"start_time"`
	Stage         *string   `json:"stage,omitempty"`
	WinningTeamID *int64    `json:"winning_team_id,omitempty"`
	IsDraw        bool      `json:"is_draw"`
}

// IsLocked reports whether picks are closed. The boundary is inclusive.
func (g *Game) IsLocked(now time.Time) bool {
	return !now.Before(g.StartTime)
}

// IsGraded reports whether a result has been recorded
func (g *Game) IsGraded() bool {
	return g.IsDraw || g.WinningTeamID != nil
}

// HasTeam reports whether the team plays in this game
func (g *Game) HasTeam(teamID int64) bool {
	return teamID == g.TeamAID || teamID == g.TeamBID
}

// WinningPick returns the pick value that scores for this game, or "" when ungraded
func (g *Game) WinningPick() string {
	switch {
	case g.IsDraw:
		return PickDraw
	case g.WinningTeamID != nil:
		return TeamPick(*g.WinningTeamID)
	default:
		return ""
	}
}

// TeamPick renders a team id the way it is stored in a pick
func TeamPick(teamID int64) string {
	return strconv.FormatInt(teamID, 10)
}

// PropPrediction is a free-form question with a single correct answer
type PropPrediction struct {
	ID            int64     `json:"id"`
	CompetitionID int64     `json:"competition_id"`
	Question      string    `json:"question"`
	LockDate      time.Time `json:"lock_date"`
	CorrectAnswer *string   `json:"correct_answer,omitempty"`
}

// IsLocked reports whether picks are closed. The boundary is inclusive.
func (p *PropPrediction) IsLocked(now time.Time) bool {
	return !now.Before(p.LockDate)
}

// IsGraded reports whether an answer has been recorded
func (p *PropPrediction) IsGraded() bool {
	return p.CorrectAnswer != nil
}

// CompetitionDetail is a competition with everything that can be picked in it
type CompetitionDetail struct {
	Competition
	Teams []Team           `json:"teams"`
	Games []Game           `json:"games"`
	Props []PropPrediction `json:"props"`
}

// CreateCompetitionRequest is the admin payload for a new competition
type CreateCompetitionRequest struct {
	Name        string    `json:"name" validate:"required,notblank,max=120"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	LockDate    time.Time `json:"lock_date" validate:"required"`
	AllowDraws  bool      `json:"allow_draws"`
}

// UpdateCompetitionRequest is the admin payload for editing a competition
type UpdateCompetitionRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	LockDate    *time.Time `json:"lock_date,omitempty"`
	AllowDraws  *bool      `json:"allow_draws,omitempty"`
}

// CreateTeamRequest is the admin payload for a new team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,notblank,max=80"`
}

// CreateGameRequest is the admin payload for a new game
type CreateGameRequest struct {
	CompetitionID int64     `json:"competition_id" validate:"required,min=1"`
	TeamAID       int64     `json:"team_a_id" validate:"required,min=1"`
	TeamBID       int64     `json:"team_b_id" validate:"required,min=1,nefield=TeamAID"`
	StartTime     time.Time `json:"start_time" validate:"required"`
	Stage         *string   `json:"stage,omitempty" validate:"omitempty,max=60"`
}

// CreatePropRequest is the admin payload for a new prop prediction
type CreatePropRequest struct {
	CompetitionID int64     `json:"competition_id" validate:"required,min=1"`
	Question      string    `json:"question" validate:"required,notblank,max=300"`
	LockDate      time.Time `json:"lock_date" validate:"required"`
}

// SetGameResultRequest records the outcome of a game. Exactly one of
// WinningTeamID or IsDraw must be set.
type SetGameResultRequest struct {
	WinningTeamID *int64 `json:"winning_team_id,omitempty" validate:"omitempty,min=1"`
	IsDraw        bool   `json:"is_draw"`
}

// SetPropAnswerRequest records the correct answer of a prop
type SetPropAnswerRequest struct {
	Answer string `json:"answer" validate:"required,notblank,max=100"`
}
