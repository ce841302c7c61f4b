// cmd/coysfeed/util.go
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"
)

// HTTP Response Helpers

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RecoverFromPanic logs a recovered panic with its stack. Used as a
// deferred guard on every goroutine we spawn.
func RecoverFromPanic(component string) {
	if r := recover(); r != nil {
		stack := make([]byte, 4096)
		stack = stack[:runtime.Stack(stack, false)]
		Logger().Error("Panic in %s: %v\n%s", component, r, stack)
	}
}

// FormatDuration renders a duration as "1d 2h 3m 4s".
func FormatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	parts := []string{}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}

// truncateSummary bounds a source description to MaxSummaryLength
// characters with an ellipsis marker, substituting a fixed placeholder
// when the source provides none.
func truncateSummary(description string) string {
	if description == "" {
		return DefaultSummary
	}

	runes := []rune(description)
	if len(runes) > MaxSummaryLength {
		return string(runes[:MaxSummaryLength]) + "..."
	}
	return description
}
