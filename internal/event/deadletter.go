package event

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// DeadLetterSchemaVersion versions the JSON-lines layout of DeadLetterEntry
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one event that exhausted its publish retries
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends DeadLetterEntry lines to a file; safe for concurrent use
type DeadLetterWriter struct {
	mu     sync.Mutex
	file   *os.File
	enc    *json.Encoder
	closed bool
	now    func() time.Time
}

// NewDeadLetterWriter opens path for appending, creating it when missing
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead letter file: %w", err)
	}
	return &DeadLetterWriter{file: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

// Write records evt with the number of attempts made and the final error
func (w *DeadLetterWriter) Write(evt Event, attempts int, lastError error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return os.ErrClosed
	}

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     w.now().UTC(),
		Event:         evt,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	if err := w.enc.Encode(entry); err != nil {
		return fmt.Errorf("failed to encode dead letter entry: %w", err)
	}
	return nil
}

// Close closes the file; later calls are no-ops
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}
