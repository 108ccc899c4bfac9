package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PicksSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePicksSubmitted,
			Help: HelpTextPicksSubmitted,
		},
		[]string{LabelScope, LabelSubject},
	)

	PicksRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePicksRejected,
			Help: HelpTextPicksRejected,
		},
		[]string{LabelReason},
	)

	ResultsGraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResultsGraded,
			Help: HelpTextResultsGraded,
		},
		[]string{LabelSubject, LabelAction},
	)

	LeaderboardComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardComputations,
			Help: HelpTextLeaderboardComputations,
		},
		[]string{LabelScope},
	)

	LeaderboardDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameLeaderboardDuration,
			Help:    HelpTextLeaderboardDuration,
			Buckets: ComputeLatencyBuckets,
		},
		[]string{LabelScope},
	)

	LocksAnnounced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLocksAnnounced,
			Help: HelpTextLocksAnnounced,
		},
		[]string{LabelSubject},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelKind},
	)

	NotificationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsFailed,
			Help: HelpTextNotificationsFailed,
		},
		[]string{LabelKind},
	)

	ProfileCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheHits,
			Help: HelpTextProfileCacheHits,
		},
	)

	ProfileCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheMisses,
			Help: HelpTextProfileCacheMisses,
		},
	)
)

// Scope returns the scope label for a league context
func Scope(inLeague bool) string {
	if inLeague {
		return ScopeLeague
	}
	return ScopePublic
}
