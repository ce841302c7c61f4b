// cmd/coysfeed/rssfeed.go
package main

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
)

// Per-feed cap so one chatty feed cannot crowd the candidate pool.
const maxItemsPerFeed = 5

// RSSAdapter pulls the club feeds listed in sources.yml and runs each
// item through the classifier. A failing or empty feed contributes
// nothing; it never fails outward.
type RSSAdapter struct {
	parser     *gofeed.Parser
	feeds      []FeedSource
	classifier *Classifier
	timeout    time.Duration
}

func NewRSSAdapter(feeds []FeedSource, classifier *Classifier, timeout time.Duration, userAgent string) *RSSAdapter {
	parser := gofeed.NewParser()
	if userAgent != "" {
		parser.UserAgent = userAgent
	}
	return &RSSAdapter{
		parser:     parser,
		feeds:      feeds,
		classifier: classifier,
		timeout:    timeout,
	}
}

func (a *RSSAdapter) Name() string { return "rss" }

func (a *RSSAdapter) Fetch(ctx context.Context) []Story {
	var stories []Story
	for _, feed := range a.feeds {
		stories = append(stories, a.fetchFeed(ctx, feed)...)
	}
	return stories
}

func (a *RSSAdapter) fetchFeed(ctx context.Context, source FeedSource) []Story {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	feed, err := a.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		Logger().Warning("rss fetch %s failed: %v", source.Name, err)
		RecordSourceError(a.Name())
		return nil
	}

	var stories []Story
	for _, item := range feed.Items {
		if len(stories) >= maxItemsPerFeed {
			break
		}
		// Items without a title or parsable date cannot be ranked
		if item.Title == "" || item.PublishedParsed == nil {
			continue
		}

		text := item.Title + " " + item.Description
		stories = append(stories, Story{
			Title:       item.Title,
			Summary:     truncateSummary(item.Description),
			Source:      source.Name,
			URL:         item.Link,
			PublishedAt: *item.PublishedParsed,
			Category:    a.classifier.Categorize(text),
			Priority:    a.classifier.Priority(text),
			Impact:      AssessImpact(item.Title),
		})
	}
	return stories
}
