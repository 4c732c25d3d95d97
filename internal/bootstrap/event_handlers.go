package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the audit logger
func RegisterEventHandlers(bus event.Bus) error {
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range []event.Type{event.DayAdvanced, event.CatalogSynced} {
		bus.Subscribe(t, auditEvent)
	}
	slog.Info(LogMsgEventAuditRegistered)
	return nil
}

// auditEvent writes every stock event to the structured log
func auditEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Info(LogMsgStockEvent,
		"type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
