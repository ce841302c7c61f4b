// cmd/coysfeed/injuries.go
package main

import (
	"context"
	"strings"
)

// InjuryAdapter runs a fitness-biased NewsAPI query, keeping only hits
// whose titles mention an injury angle. Empty on upstream failure.
type InjuryAdapter struct {
	api *newsAPIClient
}

func NewInjuryAdapter(api *newsAPIClient) *InjuryAdapter {
	return &InjuryAdapter{api: api}
}

func (a *InjuryAdapter) Name() string { return "injuries" }

func (a *InjuryAdapter) Fetch(ctx context.Context) []Story {
	articles, err := a.api.search(ctx, "Tottenham injury OR Spurs fitness OR Tottenham medical", 5)
	if err != nil {
		Logger().Warning("injury fetch failed: %v", err)
		RecordSourceError(a.Name())
		return nil
	}

	var stories []Story
	for _, article := range articles {
		title := strings.ToLower(article.Title)
		if !strings.Contains(title, "injury") &&
			!strings.Contains(title, "fitness") &&
			!strings.Contains(title, "medical") {
			continue
		}

		stories = append(stories, Story{
			Title:       article.Title,
			Summary:     truncateSummary(article.Description),
			Source:      article.Source.Name,
			URL:         article.URL,
			PublishedAt: article.PublishedAt,
			Category:    CategoryInjury,
			Priority:    categoryPriorities[CategoryInjury],
			Impact:      ImpactMedium,
		})
	}
	return stories
}
