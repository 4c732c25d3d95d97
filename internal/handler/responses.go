package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// NotFoundResponse is returned for unknown item names
type NotFoundResponse struct {
	Error       string   `json:"error"`
	Name        string   `json:"name"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message.
// Unknown item names carry suggestions in the body.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)

	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	var nfe *inventory.NotFoundError
	if errors.As(err, &nfe) {
		respondJSON(w, status, NotFoundResponse{
			Error:       message,
			Name:        nfe.Name,
			Suggestions: nfe.Suggestions,
		})
		return
	}
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Anything unrecognised becomes a generic 500 so internals never leak.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidDays):
		return http.StatusBadRequest, ErrMsgInvalidDaysError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrTickInProgress):
		return http.StatusConflict, ErrMsgTickInProgressError
	case errors.Is(err, domain.ErrShuttingDown):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrConnectionTimeout), errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
