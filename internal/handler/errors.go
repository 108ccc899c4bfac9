package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameters
	ErrMsgInvalidID       = "Invalid %s"
	ErrMsgInvalidLeagueID = "Invalid league_id query parameter"
	ErrMsgInvalidLimit    = "Invalid limit parameter"

	// Auth
	ErrMsgParticipantRequired = "A participant token is required"

	// Logo upload
	ErrMsgLogoTooLarge = "Logo exceeds the maximum upload size"
	ErrMsgLogoEmpty    = "Logo body is empty"
)

// Success messages for API responses
const (
	MsgCompetitionDeleted = "Competition deleted"
	MsgTeamDeleted        = "Team deleted"
	MsgGameDeleted        = "Game deleted"
	MsgPropDeleted        = "Prop deleted"
	MsgLeftLeague         = "Left league"
)

// Log messages
const (
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgServiceError       = "Request failed"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgRequestDecoded     = "%s request decoded"
	LogMsgRequestDecodeError = "Failed to decode %s request"
)

// MaxLogoBytes caps team logo uploads
const MaxLogoBytes = 2 << 20

// DefaultLeaderboardLimit applies when no limit query parameter is given
const (
	DefaultLeaderboardLimit = 100
	MaxLeaderboardLimit     = 1000
)
