// cmd/coysfeed/fetcher.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SourceAdapter is the contract every news source implements. Fetch
// never fails outward: upstream errors are absorbed inside the adapter
// and turn into an empty slice or the adapter's generated fallback.
type SourceAdapter interface {
	Name() string
	Fetch(ctx context.Context) []Story
}

// fetchResult carries one adapter's stories back through the fan-in
// channel.
type fetchResult struct {
	source  string
	stories []Story
}

// FetchAll fans out to every adapter concurrently and merges only after
// all have settled. No adapter's failure cancels the others, and there
// is no shared mutable state during the fan-out.
func FetchAll(ctx context.Context, adapters []SourceAdapter) []Story {
	results := make(chan fetchResult, len(adapters))
	var wg sync.WaitGroup

	for _, adapter := range adapters {
		wg.Add(1)
		go func(a SourceAdapter) {
			defer wg.Done()
			defer RecoverFromPanic("fetch-" + a.Name())
			results <- fetchResult{source: a.Name(), stories: a.Fetch(ctx)}
		}(adapter)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []Story
	for result := range results {
		for _, story := range result.stories {
			if story.Title == "" {
				continue
			}
			all = append(all, story)
		}
	}

	return all
}

// apiClient is the shared HTTP client for JSON upstreams. Outbound
// calls go through a rate limiter so a burst of refreshes cannot burn
// the NewsAPI free-tier quota.
type apiClient struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func newAPIClient(timeout time.Duration, userAgent string) *apiClient {
	return &apiClient{
		http:      &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		userAgent: userAgent,
	}
}

// getJSON performs a rate-limited GET and decodes the 2xx body into out.
func (c *apiClient) getJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
