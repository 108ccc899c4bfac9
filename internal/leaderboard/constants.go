package leaderboard

import "time"

// Cache defaults
const (
	DefaultNameCacheSize = 10000
	DefaultNameCacheTTL  = 10 * time.Minute
)

// PlaceholderPrefix starts the display name of participants without a profile
const PlaceholderPrefix = "Player "

// MaxLimit caps the number of entries a single request may return
const MaxLimit = 500

// Log messages
const (
	LogMsgLeaderboardComputed = "Leaderboard computed"
	LogMsgLeaderboardFailed   = "Leaderboard computation failed"
)
