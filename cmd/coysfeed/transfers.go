// cmd/coysfeed/transfers.go
package main

import (
	"context"
	"strings"
)

// TransferAdapter runs a transfer-biased NewsAPI query and keeps only
// hits whose titles are actually about a move. Upstream failure means
// no candidates; the general adapter's fallback covers the gap.
type TransferAdapter struct {
	api *newsAPIClient
}

func NewTransferAdapter(api *newsAPIClient) *TransferAdapter {
	return &TransferAdapter{api: api}
}

func (a *TransferAdapter) Name() string { return "transfers" }

func (a *TransferAdapter) Fetch(ctx context.Context) []Story {
	articles, err := a.api.search(ctx, "Tottenham transfer OR Spurs signing OR Tottenham rumor", 10)
	if err != nil {
		Logger().Warning("transfer fetch failed: %v", err)
		RecordSourceError(a.Name())
		return nil
	}

	var stories []Story
	for _, article := range articles {
		title := strings.ToLower(article.Title)
		if !strings.Contains(title, "transfer") &&
			!strings.Contains(title, "signing") &&
			!strings.Contains(title, "target") {
			continue
		}

		stories = append(stories, Story{
			Title:       article.Title,
			Summary:     truncateSummary(article.Description),
			Source:      article.Source.Name,
			URL:         article.URL,
			PublishedAt: article.PublishedAt,
			Category:    CategoryTransfer,
			Priority:    categoryPriorities[CategoryTransfer],
			Impact:      ImpactHigh,
		})
	}
	return stories
}
