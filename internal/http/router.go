// Package http assembles the route table for the recap service.
package http

import (
	nethttp "net/http"

	"fantasy-recap-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Index)
	mux.HandleFunc("/api/health", handler.Health)
	mux.HandleFunc("/api/league-info", handler.LeagueInfo)
	mux.HandleFunc("/api/generate-recap", handler.GenerateRecap)
	mux.HandleFunc("/api/audio/", handler.Audio)
	mux.HandleFunc("/api/available-audio", handler.AvailableAudio)
	return mux
}
