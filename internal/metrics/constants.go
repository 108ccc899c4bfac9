package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePicksSubmitted          = "picks_submitted_total"
	MetricNamePicksRejected           = "picks_rejected_total"
	MetricNameResultsGraded           = "results_graded_total"
	MetricNameLeaderboardComputations = "leaderboard_computations_total"
	MetricNameLeaderboardDuration     = "leaderboard_computation_duration_seconds"
	MetricNameLocksAnnounced          = "locks_announced_total"
	MetricNameNotificationsSent       = "notifications_sent_total"
	MetricNameNotificationsFailed     = "notifications_failed_total"
	MetricNameProfileCacheHits        = "profile_cache_hits_total"
	MetricNameProfileCacheMisses      = "profile_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPicksSubmitted          = "Total number of picks created or overwritten"
	HelpTextPicksRejected           = "Total number of pick submissions rejected"
	HelpTextResultsGraded           = "Total number of game results and prop answers set or cleared"
	HelpTextLeaderboardComputations = "Total number of leaderboard computations"
	HelpTextLeaderboardDuration     = "Leaderboard computation latency in seconds"
	HelpTextLocksAnnounced          = "Total number of game and prop lock transitions announced"
	HelpTextNotificationsSent       = "Total number of notifications delivered"
	HelpTextNotificationsFailed     = "Total number of notifications that failed to deliver"
	HelpTextProfileCacheHits        = "Display name lookups served from cache"
	HelpTextProfileCacheMisses      = "Display name lookups that went to the database"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelScope   = "scope"
	LabelSubject = "subject"
	LabelAction  = "action"
	LabelReason  = "reason"
	LabelKind    = "kind"
)

// Label values
const (
	ScopePublic = "public"
	ScopeLeague = "league"

	ActionSet   = "set"
	ActionClear = "clear"

	// PathUnmatched labels requests that did not match a route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ComputeLatencyBuckets covers leaderboard computations, from 100µs to 2.5s.
var ComputeLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
