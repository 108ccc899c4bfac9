package domain

import "time"

// Fixture describes a whole competition for bulk seeding. Games reference
// teams by their fixture-local key.
type Fixture struct {
	Competition FixtureCompetition `json:"competition"`
	Teams       []FixtureTeam      `json:"teams"`
	Games       []FixtureGame      `json:"games,omitempty"`
	Props       []FixtureProp      `json:"props,omitempty"`
}

type FixtureCompetition struct {
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	LockDate    time.Time `json:"lock_date"`
	AllowDraws  bool      `json:"allow_draws"`
}

type FixtureTeam struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type FixtureGame struct {
	TeamA     string    `json:"team_a"`
	TeamB     string    `json:"team_b"`
	StartTime time.Time `json:"start_time"`
	Stage     *string   `json:"stage,omitempty"`
}

type FixtureProp struct {
	Question string    `json:"question"`
	LockDate time.Time `json:"lock_date"`
}

// FixtureSummary reports what a fixture import created
type FixtureSummary struct {
	Competition Competition `json:"competition"`
	Teams       int         `json:"teams"`
	Games       int         `json:"games"`
	Props       int         `json:"props"`
}
