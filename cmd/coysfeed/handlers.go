// cmd/coysfeed/handlers.go
package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the HTTP API surface consumed by the UI layer.
func NewRouter(engine *Engine, cache *DigestCache) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/daily-top-3", handleDailyTop3(engine, cache)).Methods("GET")
	api.HandleFunc("/refresh", handleRefresh(engine)).Methods("GET")
	api.HandleFunc("/health", handleHealth).Methods("GET")

	return router
}

// handleDailyTop3 serves the current digest, refreshing synchronously
// first when the cached one is for a stale date or has no stories.
// Readers never see yesterday's digest if a refresh can complete.
func handleDailyTop3(engine *Engine, cache *DigestCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache.Stale() {
			// The refresh runs on its own context, same as the cron
			// triggers, so a dropped client cannot cancel in-flight
			// source fetches
			engine.RefreshAndPublish(context.Background())
		}

		digest := cache.Current()
		if digest == nil {
			// Unreachable once a refresh has run, but the client still
			// gets renderable content either way
			respondWithJSON(w, http.StatusInternalServerError, APIResponse{
				Success: false,
				Error:   "no digest available",
				Data:    engine.FallbackDigest(),
			})
			return
		}

		respondWithJSON(w, http.StatusOK, APIResponse{
			Success: true,
			Data:    digest,
			Message: "COYS Daily Top 3 - Essential News for Today",
		})
	}
}

// handleRefresh forces a refresh regardless of cache freshness and
// returns the new digest.
func handleRefresh(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		digest := engine.RefreshAndPublish(context.Background())

		respondWithJSON(w, http.StatusOK, APIResponse{
			Success: true,
			Data:    digest,
			Message: "Feed refreshed successfully",
		})
	}
}
