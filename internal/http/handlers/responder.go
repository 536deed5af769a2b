package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fantasy-recap-service/internal/http/middleware"
	"fantasy-recap-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeError emits the failure shape the web form expects: success flag,
// short error, and a human-readable message.
func writeError(w http.ResponseWriter, r *http.Request, status int, errLabel, message string, logger *slog.Logger) {
	body := map[string]any{
		"success": false,
		"error":   errLabel,
		"message": message,
	}
	if reqID := middleware.RequestIDFromContext(r.Context()); reqID != "" {
		body["request_id"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
