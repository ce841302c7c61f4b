// cmd/coysfeed/types.go
package main

import "time"

// Category is the single mutually-exclusive classification of a story.
type Category string

const (
	CategoryTransfer    Category = "TRANSFER"
	CategoryMatchResult Category = "MATCH_RESULT"
	CategoryInjury      Category = "INJURY"
	CategoryManager     Category = "MANAGER"
	CategoryTeamNews    Category = "TEAM_NEWS"
	CategoryYouth       Category = "YOUTH"
	CategoryGeneral     Category = "GENERAL"
)

// Impact is a display-only urgency tier, independent of priority.
type Impact string

const (
	ImpactUrgent Impact = "URGENT"
	ImpactHigh   Impact = "HIGH"
	ImpactMedium Impact = "MEDIUM"
	ImpactLow    Impact = "LOW"
)

// Story is the canonical unit flowing through the pipeline. A Story is
// never mutated after construction; ranking only reorders or discards.
type Story struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    Category  `json:"category"`
	Priority    int       `json:"priority"`
	Impact      Impact    `json:"impact"`
}

// DailyDigest is the published top stories for one calendar date.
// It is replaced whole on every refresh, never mutated in place.
type DailyDigest struct {
	Date        string  `json:"date"`
	LastUpdated string  `json:"lastUpdated"`
	Stories     []Story `json:"stories"`
}

// APIResponse is the envelope returned by every API endpoint.
type APIResponse struct {
	Success bool         `json:"success"`
	Data    *DailyDigest `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
}
