package metrics

import (
	"context"

	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all stock events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range []event.Type{event.DayAdvanced, event.CatalogSynced} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.DayAdvanced:
		payload, err := event.DecodePayload[event.DayAdvancedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		for category, count := range payload.Categories {
			ItemsAged.WithLabelValues(category).Add(float64(count))
		}
		CurrentDay.Set(float64(payload.Day))

	case event.CatalogSynced:
		payload, err := event.DecodePayload[event.CatalogSyncedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		CatalogInserts.Add(float64(payload.Inserted))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
