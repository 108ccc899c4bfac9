package notify

import "time"

// DefaultTopN is the number of standings rows posted after a result
const DefaultTopN = 5

// WebhookTimeout bounds a single Discord request
const WebhookTimeout = 10 * time.Second

// Notification kinds, used as metric labels
const (
	KindStandings = "standings"
	KindLock      = "lock"
)

// Message styling
const (
	WebhookUsername = "PlayPredix"
	EmojiTrophy     = "🏆"
	EmojiLock       = "🔒"
	ColorStandings  = 0xf1c40f // Gold
	ColorLock       = 0x95a5a6 // Grey
	NoStandingsText = "No picks yet"
)

// Log messages
const (
	LogMsgNotificationFailed  = "Failed to send notification"
	LogMsgNotificationDropped = "Notification dropped, worker queue full"
)
