// cmd/coysfeed/scraper.go
package main

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ScrapeAdapter lifts headlines off the HTML pages listed in
// sources.yml, selecting with each source's own CSS selector. Scraped
// pages carry no usable timestamps, so stories are stamped with the
// fetch time. Empty on any failure.
type ScrapeAdapter struct {
	client     *http.Client
	sources    []HTMLSource
	classifier *Classifier
	userAgent  string
	now        func() time.Time
}

func NewScrapeAdapter(sources []HTMLSource, classifier *Classifier, timeout time.Duration, userAgent string) *ScrapeAdapter {
	return &ScrapeAdapter{
		client:     &http.Client{Timeout: timeout},
		sources:    sources,
		classifier: classifier,
		userAgent:  userAgent,
		now:        time.Now,
	}
}

func (a *ScrapeAdapter) Name() string { return "scraper" }

func (a *ScrapeAdapter) Fetch(ctx context.Context) []Story {
	var stories []Story
	for _, source := range a.sources {
		stories = append(stories, a.scrape(ctx, source)...)
	}
	return stories
}

func (a *ScrapeAdapter) scrape(ctx context.Context, source HTMLSource) []Story {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		Logger().Warning("scrape %s bad request: %v", source.Name, err)
		return nil
	}
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		Logger().Warning("scrape %s failed: %v", source.Name, err)
		RecordSourceError(a.Name())
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		Logger().Warning("scrape %s status %d", source.Name, resp.StatusCode)
		RecordSourceError(a.Name())
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		Logger().Warning("scrape %s parse failed: %v", source.Name, err)
		RecordSourceError(a.Name())
		return nil
	}

	// The fetch above already succeeded, so the page URL parses
	base, err := url.Parse(source.URL)
	if err != nil {
		Logger().Warning("scrape %s bad page url: %v", source.Name, err)
		return nil
	}

	fetched := a.now()
	var stories []Story
	doc.Find(source.Selector).Each(func(i int, sel *goquery.Selection) {
		if len(stories) >= maxItemsPerFeed {
			return
		}
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return
		}

		link, ok := sel.Attr("href")
		if !ok {
			link, _ = sel.Find("a").Attr("href")
		}
		if link != "" {
			if ref, err := url.Parse(link); err == nil {
				link = base.ResolveReference(ref).String()
			}
		}

		stories = append(stories, Story{
			Title:       title,
			Summary:     truncateSummary(""),
			Source:      source.Name,
			URL:         link,
			PublishedAt: fetched,
			Category:    a.classifier.Categorize(title),
			Priority:    a.classifier.Priority(title),
			Impact:      AssessImpact(title),
		})
	})
	return stories
}
