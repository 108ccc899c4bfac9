package pick

// Validation messages
const (
	ErrMsgExactlyOneSubject = "exactly one of game_id or prop_prediction_id is required"
	ErrMsgEmptyPick         = "pick is required"
	ErrMsgDrawsNotAllowed   = "this competition does not allow draws"
	ErrMsgNotATeamInGame    = "pick must be one of the game's team ids"
)

// Log messages
const (
	LogMsgPickStored        = "Pick stored"
	LogMsgUpsertFailed      = "Failed to store pick"
	LogMsgProfileSyncFailed = "Failed to store participant profile"
)
