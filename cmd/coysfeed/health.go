// cmd/coysfeed/health.go
package main

import (
	"net/http"
	"time"
)

// handleHealth reports liveness and runtime counters. It has no
// dependency on the digest, so it stays green even while every source
// is down.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	snapshot := SnapshotState()

	response := map[string]interface{}{
		"status":        "healthy",
		"version":       AppVersion,
		"timestamp":     time.Now().Format(time.RFC3339),
		"uptime":        FormatDuration(time.Since(snapshot.StartupTime)),
		"refreshCount":  snapshot.RefreshCount,
		"storyCount":    snapshot.StoryCount,
		"fallbackCount": snapshot.FallbackCount,
		"sourceErrors":  snapshot.SourceErrors,
	}
	if !snapshot.LastRefresh.IsZero() {
		response["lastRefresh"] = snapshot.LastRefresh.Format(time.RFC3339)
	}

	respondWithJSON(w, http.StatusOK, response)
}
