// cmd/coysfeed/scraper_test.go
package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const scraperTestPage = `<!DOCTYPE html>
<html><body>
<ul class="news-list">
  <li><a class="headline" href="/news/injury-update">Injury update ahead of north London derby</a></li>
  <li><a class="headline" href="https://example.com/transfer">Transfer exclusive on midfield target</a></li>
  <li><a class="headline" href="related/squad-rotation">Squad rotation expected for cup tie</a></li>
  <li><a class="headline" href="/news/empty">   </a></li>
</ul>
<a class="other" href="/ignored">Unrelated link</a>
</body></html>`

func TestScrapeAdapterExtractsHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "coysfeed-test" {
			t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
		}
		if r.URL.Path != "/team/spurs-news" {
			t.Errorf("request path = %q", r.URL.Path)
		}
		w.Write([]byte(scraperTestPage))
	}))
	defer srv.Close()

	// A page URL with its own path, like the real headline pages
	pageURL := srv.URL + "/team/spurs-news"
	a := NewScrapeAdapter(
		[]HTMLSource{{Name: "Test Site", URL: pageURL, Selector: "a.headline"}},
		newTestClassifier(), 2*time.Second, "coysfeed-test",
	)
	fixed := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	stories := a.Fetch(context.Background())
	if len(stories) != 3 {
		t.Fatalf("got %d stories, want 3 (blank headline skipped)", len(stories))
	}

	first := stories[0]
	if first.Title != "Injury update ahead of north London derby" {
		t.Errorf("first title = %q", first.Title)
	}
	if first.Category != CategoryInjury || first.Impact != ImpactHigh {
		t.Errorf("first story = %s/%s", first.Category, first.Impact)
	}
	// Root-relative links resolve against the host, not the page path
	if first.URL != srv.URL+"/news/injury-update" {
		t.Errorf("root-relative link not resolved: %q", first.URL)
	}
	if !first.PublishedAt.Equal(fixed) {
		t.Errorf("scraped story should carry the fetch time, got %v", first.PublishedAt)
	}
	if first.Summary != DefaultSummary {
		t.Errorf("scraped story summary = %q", first.Summary)
	}

	second := stories[1]
	if second.URL != "https://example.com/transfer" {
		t.Errorf("absolute link rewritten: %q", second.URL)
	}
	// TRANSFER base plus the exclusive boost
	if second.Category != CategoryTransfer || second.Priority != 11 {
		t.Errorf("second story = %s/%d", second.Category, second.Priority)
	}

	// Path-relative links resolve against the page's directory
	third := stories[2]
	if third.URL != srv.URL+"/team/related/squad-rotation" {
		t.Errorf("path-relative link not resolved: %q", third.URL)
	}
}

func TestScrapeAdapterEmptyOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := NewScrapeAdapter(
		[]HTMLSource{{Name: "Down", URL: srv.URL, Selector: "a.headline"}},
		newTestClassifier(), 2*time.Second, "",
	)
	if stories := a.Fetch(context.Background()); len(stories) != 0 {
		t.Errorf("failed scrape should yield no stories, got %d", len(stories))
	}
}

func TestScrapeAdapterNoSelectorMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>Nothing here</p></body></html>"))
	}))
	defer srv.Close()

	a := NewScrapeAdapter(
		[]HTMLSource{{Name: "Empty", URL: srv.URL, Selector: ".missing"}},
		newTestClassifier(), 2*time.Second, "",
	)
	if stories := a.Fetch(context.Background()); len(stories) != 0 {
		t.Errorf("selector miss should yield no stories, got %d", len(stories))
	}
}
