package grading

// Validation messages
const (
	ErrMsgExactlyOneResult = "exactly one of winning_team_id or is_draw is required"
	ErrMsgDrawsNotAllowed  = "this competition does not allow draws"
	ErrMsgWinnerNotInGame  = "winning team does not play in this game"
	ErrMsgEmptyAnswer      = "answer is required"
)

// Outcome labels carried on result events
const (
	OutcomeDraw      = "Draw"
	OutcomeWinSuffix = " win"
)

// Log messages
const (
	LogMsgGameGraded  = "Game result recorded"
	LogMsgGameCleared = "Game result cleared"
	LogMsgPropGraded  = "Prop answer recorded"
	LogMsgPropCleared = "Prop answer cleared"
	LogMsgGradeFailed = "Failed to record result"
)
