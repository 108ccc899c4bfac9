package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, the new session included
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPlayPredix  = "Starting PlayPredix"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Background Work
// =============================================================================

const (
	// WorkerQueueSize bounds jobs waiting for a worker
	WorkerQueueSize = 100

	// MinLockWatchInterval keeps a misconfigured interval from hammering the database
	MinLockWatchInterval = 5 * time.Second
)

// Log messages for event handler registration and background work
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgNotifierRegistered         = "Discord notifier registered"
	LogMsgNotifierDisabled           = "Discord notifier disabled, no webhook configured"
	LogMsgBackgroundStarted          = "Background workers started"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateNotifier       = "failed to create discord notifier"
	ErrMsgFailedCreateScheduler      = "failed to create scheduler"
	ErrMsgFailedScheduleLockWatcher  = "failed to schedule lock watcher"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer     = "Shutting down server..."
	LogMsgShuttingDownBackground = "Stopping background workers..."
	LogMsgServerStopped          = "Server stopped"
	LogMsgServerForcedShutdown   = "Server forced to shutdown"
	LogMsgSchedulerStopFailed    = "Scheduler shutdown failed"
)
