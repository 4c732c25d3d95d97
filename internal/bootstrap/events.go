package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/event"
)

// InitializeEventSystem creates the in-memory bus and wraps it in a retrying publisher
// whose dead letters land next to the session logs.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := filepath.Join(cfg.LogDir, event.DeadLetterFileName)
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(eventBus, event.RetryMaxAttempts, event.RetryInitialDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", event.RetryMaxAttempts,
		"retry_delay", event.RetryInitialDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, publisher, nil
}
