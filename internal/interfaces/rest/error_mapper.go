package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
)

type ErrorResponse struct {
	Error   string     `json:"error"`
	Message string     `json:"message"`
	Debug   *DebugInfo `json:"debug,omitempty"`
}

// DebugInfo exposes the upstream exchange to non-production callers.
type DebugInfo struct {
	Environment      string `json:"environment"`
	UpstreamStatus   int    `json:"upstreamStatus,omitempty"`
	UpstreamResponse any    `json:"upstreamResponse,omitempty"`
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	writeError(w, err, logger, nil)
}

// WriteErrorWithDebug is WriteError plus a debug block describing the
// processor reply, if the error carries one.
func WriteErrorWithDebug(w http.ResponseWriter, err error, logger *slog.Logger, environment string) {
	debug := &DebugInfo{Environment: environment}
	if providerErr, ok := application.IsProviderError(err); ok {
		debug.UpstreamStatus = providerErr.StatusCode
		debug.UpstreamResponse = rawPayload(providerErr.Raw)
	}
	writeError(w, err, logger, debug)
}

func writeError(w http.ResponseWriter, err error, logger *slog.Logger, debug *DebugInfo) {
	svcErr := application.ToServiceError(err)

	if svcErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed",
			"code", svcErr.Code,
			"status", svcErr.HTTPStatus,
			"error", err,
		)
	}

	WriteJSON(w, svcErr.HTTPStatus, ErrorResponse{
		Error:   svcErr.Code,
		Message: svcErr.Message,
		Debug:   debug,
	}, logger)
}

func rawPayload(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	return string(raw)
}
