// cmd/coysfeed/constants.go
package main

import "time"

// Application constants
const (
	AppName    = "coysfeed"
	AppVersion = "1.0.0"

	// Number of stories published per digest
	TopStoryCount = 3

	// Per-upstream-call bound; a slow source never stalls a refresh
	// beyond this for its own slot
	DefaultFetchTimeout = 5 * time.Second

	// Refresh every 30 minutes during waking hours, plus a forced
	// fresh start for the new day at 06:00
	DefaultPeriodicCron = "*/30 6-23 * * *"
	DefaultRolloverCron = "0 6 * * *"

	// Digest timestamp layouts
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"

	// Default file locations
	DefaultSourcesPath = "config/sources.yml"
	DefaultLogPath     = "logs/coysfeed.log"

	// Upstream endpoints
	DefaultNewsAPIURL     = "https://newsapi.org/v2/everything"
	DefaultFootballAPIURL = "https://api.football-data.org/v4/teams/73/matches"

	// Summary handling
	MaxSummaryLength = 120
	DefaultSummary   = "Full details available at source"
)
