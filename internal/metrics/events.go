package metrics

import (
	"context"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/event"
	"github.com/osse101/PlayPredix_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PickSubmitted,
		event.ResultGraded,
		event.ResultCleared,
		event.GameLocked,
		event.PropLocked,
		event.LeagueJoined,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PickSubmitted:
		payload, err := event.DecodePayload[domain.PickSubmittedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		subject := domain.SubjectGame
		if payload.PropPredictionID != nil {
			subject = domain.SubjectProp
		}
		PicksSubmitted.WithLabelValues(Scope(payload.LeagueID != nil), subject).Inc()

	case event.ResultGraded, event.ResultCleared:
		payload, err := event.DecodePayload[domain.ResultPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		action := ActionSet
		if evt.Type == event.ResultCleared {
			action = ActionClear
		}
		ResultsGraded.WithLabelValues(payload.Subject, action).Inc()

	case event.GameLocked:
		LocksAnnounced.WithLabelValues(domain.SubjectGame).Inc()

	case event.PropLocked:
		LocksAnnounced.WithLabelValues(domain.SubjectProp).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
