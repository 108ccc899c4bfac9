package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat formats the aggregated error of a publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %w"

	// LogMsgPublishFailed is logged by services when a best-effort publish fails
	LogMsgPublishFailed = "Failed to publish event"
)
