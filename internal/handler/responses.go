package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"

	"github.com/goccy/go-json"

	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// encodeBuffers recycles response buffers between requests
var encodeBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON encodes the payload into a pooled buffer before writing, so an
// encoding failure can still produce a 500 instead of a truncated body
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

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
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondFieldErrors sends a 400 listing the offending parameters
func respondFieldErrors(w http.ResponseWriter, code string, fields map[string]string) {
	respondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  ErrMsgInvalidRequestSummary,
		Code:   code,
		Fields: fields,
	})
}

// respondServiceError logs a service failure and maps it to a response.
// Client errors are logged at Warn, everything else at Error.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	status, code, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status < http.StatusInternalServerError {
		log.Warn(action, "error", err, "status", status)
	} else {
		log.Error(action, "error", err, "status", status)
	}
	respondError(w, status, code, message)
}
