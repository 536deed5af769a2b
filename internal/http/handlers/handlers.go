// Package handlers implements the HTTP API surface: the web form, the
// recap generation endpoint, and the audio listing/serving endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"path/filepath"
	"strings"

	"github.com/getsentry/sentry-go"

	"fantasy-recap-service/internal/app/recaps"
	"fantasy-recap-service/internal/audio"
	"fantasy-recap-service/internal/logging"
	"fantasy-recap-service/internal/providers"
	"fantasy-recap-service/internal/recap"
	"fantasy-recap-service/internal/season"
)

const maxRequestBody = 1 << 16

// Handler wires HTTP routes to the recap service and clip store.
type Handler struct {
	svc    *recaps.Service
	store  *audio.Store
	logger *slog.Logger
	webDir string
}

// NewHandler constructs a Handler.
func NewHandler(svc *recaps.Service, store *audio.Store, logger *slog.Logger, webDir string) *Handler {
	return &Handler{
		svc:    svc,
		store:  store,
		logger: logger,
		webDir: webDir,
	}
}

// Index serves the web form.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not_found", "not found", h.logger)
		return
	}
	nethttp.ServeFile(w, r, filepath.Join(h.webDir, "index.html"))
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}
	resp := map[string]string{"status": "ok", "service": "fantasy-recap-service"}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// LeagueInfo returns the league identity and season position.
func (h *Handler) LeagueInfo(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}

	league, err := h.svc.LeagueInfo(r.Context(), 0)
	if err != nil {
		h.upstreamError(w, r, err, "failed to fetch league info")
		return
	}

	resp := map[string]any{
		"league_id":    league.ID,
		"league_name":  league.Name,
		"year":         league.Year,
		"current_week": league.CurrentWeek,
	}
	if target, err := season.Resolve(season.State{CurrentWeek: league.CurrentWeek}); err == nil {
		resp["target_week"] = target
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

type generateRequest struct {
	Year        int    `json:"year"`
	Week        int    `json:"week"`
	Personality string `json:"personality"`
}

// GenerateRecap runs a full generation pass for the requested week.
func (h *Handler) GenerateRecap(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}

	var req generateRequest
	if r.Body != nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid_request", "failed to read request body", h.logger)
			return
		}
		if len(strings.TrimSpace(string(body))) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				writeError(w, r, nethttp.StatusBadRequest, "invalid_request", "request body must be JSON", h.logger)
				return
			}
		}
	}

	if req.Year < 0 || req.Week < 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid_request", "year and week must be positive", h.logger)
		return
	}

	tone, err := recap.ParseTone(req.Personality)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid_request", err.Error(), h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	res, err := h.svc.Generate(r.Context(), recaps.Request{
		Year: req.Year,
		Week: req.Week,
		Tone: tone,
	})
	if err != nil {
		h.generateError(w, r, err)
		return
	}

	logging.Info(logger, "recap generated", logging.FieldWeek, res.Week)
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"success":        true,
		"week":           res.Week,
		"summary":        res.Summary.Text,
		"audio_filename": res.AudioFilename,
		"message":        "recap generated",
	}, h.logger)
}

func (h *Handler) generateError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logger := loggerFromContext(r, h.logger)

	switch {
	case errors.Is(err, season.ErrNotStarted):
		logging.Info(logger, "season has not started, no recap to generate")
		writeError(w, r, nethttp.StatusConflict, "season_not_started",
			"the season has no completed weeks yet", h.logger)
	case isRenderError(err):
		logging.Error(logger, "audio rendering failed", err)
		sentry.CaptureException(err)
		writeError(w, r, nethttp.StatusBadGateway, "render_failed",
			"failed to render recap audio", h.logger)
	default:
		h.upstreamError(w, r, err, "failed to generate recap")
	}
}

func (h *Handler) upstreamError(w nethttp.ResponseWriter, r *nethttp.Request, err error, message string) {
	logger := loggerFromContext(r, h.logger)
	logging.Error(logger, message, err)
	sentry.CaptureException(err)

	if errors.Is(err, providers.ErrAuthRejected) {
		writeError(w, r, nethttp.StatusBadGateway, "auth_rejected",
			"league credentials were rejected upstream", h.logger)
		return
	}
	writeError(w, r, nethttp.StatusBadGateway, "upstream_error", message, h.logger)
}

func isRenderError(err error) bool {
	var renderErr *recaps.RenderError
	return errors.As(err, &renderErr)
}

// Audio serves one generated clip by filename.
func (h *Handler) Audio(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}

	filename := strings.TrimPrefix(r.URL.Path, "/api/audio/")
	if filename == "" || strings.Contains(filename, "/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid_request", "invalid audio filename", h.logger)
		return
	}

	path, err := h.store.Path(filename)
	if err != nil {
		if errors.Is(err, audio.ErrNotFound) {
			writeError(w, r, nethttp.StatusNotFound, "not_found", "audio file not found", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusBadRequest, "invalid_request", "invalid audio filename", h.logger)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	nethttp.ServeFile(w, r, path)
}

// AvailableAudio lists the stored clips sorted by week.
func (h *Handler) AvailableAudio(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}

	files, err := h.store.List()
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "failed to list audio files", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal_error", "failed to list audio files", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"audio_files": files,
		"count":       len(files),
	}, h.logger)
}
