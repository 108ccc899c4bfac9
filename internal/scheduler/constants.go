package scheduler

// Job names
const (
	JobNameLockWatcher = "lock-watcher"
)

// Log messages
const (
	LogMsgJobSkipped         = "Scheduled job skipped, worker queue full"
	LogMsgLockWatchFailed    = "Lock watcher failed to list"
	LogMsgLockAnnounced      = "Pick window closed"
	LogMsgLockPublishFailed  = "Failed to publish lock event"
	LogMsgLockTeamLookupFail = "Failed to resolve team for lock label"
)
