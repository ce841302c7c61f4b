// cmd/coysfeed/state.go
package main

import (
	"sync"
	"time"
)

// State holds in-process runtime counters surfaced by the health
// endpoint. It is deliberately not persisted: the digest itself is
// rebuilt by the startup fetch, so there is nothing worth keeping
// across restarts.
type State struct {
	StartupTime   time.Time      `json:"startupTime"`
	LastRefresh   time.Time      `json:"lastRefresh"`
	RefreshCount  int            `json:"refreshCount"`
	StoryCount    int            `json:"storyCount"`
	FallbackCount int            `json:"fallbackCount"`
	SourceErrors  map[string]int `json:"sourceErrors"`
}

var (
	stateMutex sync.Mutex
	state      = &State{
		StartupTime:  time.Now(),
		SourceErrors: make(map[string]int),
	}
)

// RecordRefresh notes a completed refresh and how many stories it
// published.
func RecordRefresh(storyCount int) {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	state.RefreshCount++
	state.StoryCount += storyCount
	state.LastRefresh = time.Now()
}

// RecordFallback notes that a refresh resolved to the fallback digest.
func RecordFallback() {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	state.FallbackCount++
}

// RecordSourceError notes one absorbed upstream failure for a source.
func RecordSourceError(source string) {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	state.SourceErrors[source]++
}

// SnapshotState returns a copy safe to serialize without holding the
// lock.
func SnapshotState() State {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	snapshot := *state
	snapshot.SourceErrors = make(map[string]int, len(state.SourceErrors))
	for k, v := range state.SourceErrors {
		snapshot.SourceErrors[k] = v
	}
	return snapshot
}
