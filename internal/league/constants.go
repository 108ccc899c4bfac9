package league

// InviteCodeAlphabet leaves out 0, O, 1 and I
const InviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// MaxInviteCodeAttempts bounds retries on invite code collisions
const MaxInviteCodeAttempts = 5

// Validation messages
const (
	ErrMsgNameRequired     = "name is required"
	ErrMsgInviteCodeFormat = "invite code must be 8 characters"
)

// Log messages
const (
	LogMsgLeagueCreated       = "League created"
	LogMsgLeagueJoined        = "League joined"
	LogMsgLeagueLeft          = "League left"
	LogMsgInviteCodeCollision = "Invite code collision, retrying"
	LogMsgProfileSyncFailed   = "Failed to store participant profile"
)
