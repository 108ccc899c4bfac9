package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "pick.submitted")
const (
	// EventTypePickSubmitted is published when a pick is created or overwritten
	EventTypePickSubmitted = "pick.submitted"

	// EventTypeResultGraded is published when a game result or prop answer is set
	EventTypeResultGraded = "result.graded"

	// EventTypeResultCleared is published when a game result or prop answer is removed
	EventTypeResultCleared = "result.cleared"

	// EventTypeGameLocked is published once a game's start time has passed
	EventTypeGameLocked = "game.locked"

	// EventTypePropLocked is published once a prop's lock date has passed
	EventTypePropLocked = "prop.locked"

	// EventTypeLeagueJoined is published when a participant joins a league
	EventTypeLeagueJoined = "league.joined"
)

// Subject kinds carried by grading and lock events
const (
	SubjectGame = "game"
	SubjectProp = "prop"
)
