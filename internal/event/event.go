package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Stock event types
const (
	DayAdvanced   Type = "stock.day_advanced"
	CatalogSynced Type = "stock.catalog_synced"
)

// DayAdvancedPayloadV1 is the typed payload for a completed tick
type DayAdvancedPayloadV1 struct {
	RunID        uuid.UUID      `json:"run_id"`
	Day          int            `json:"day"`
	ItemsUpdated int            `json:"items_updated"`
	Categories   map[string]int `json:"categories"`
	DurationMs   int64          `json:"duration_ms"`
	Source       string         `json:"source,omitempty"`
}

// CatalogSyncedPayloadV1 is the typed payload for a catalog seed
type CatalogSyncedPayloadV1 struct {
	Inserted  int   `json:"inserted"`
	Skipped   int   `json:"skipped"`
	Unchanged bool  `json:"unchanged"`
	Timestamp int64 `json:"timestamp"`
}

// NewDayAdvancedEvent creates a day advanced event with a type-safe payload
func NewDayAdvancedEvent(runID uuid.UUID, day, itemsUpdated int, categories map[string]int, duration time.Duration, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayAdvanced,
		Payload: DayAdvancedPayloadV1{
			RunID:        runID,
			Day:          day,
			ItemsUpdated: itemsUpdated,
			Categories:   categories,
			DurationMs:   duration.Milliseconds(),
			Source:       source,
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// NewCatalogSyncedEvent creates a catalog synced event
func NewCatalogSyncedEvent(inserted, skipped int, unchanged bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogSynced,
		Payload: CatalogSyncedPayloadV1{
			Inserted:  inserted,
			Skipped:   skipped,
			Unchanged: unchanged,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the publishing half of a Bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
