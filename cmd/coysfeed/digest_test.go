// cmd/coysfeed/digest_test.go
package main

import (
	"context"
	"testing"
	"time"
)

// stubAdapter is a canned source for engine tests. A nil stories slice
// with panicMsg set simulates an adapter blowing up mid-fetch.
type stubAdapter struct {
	name     string
	stories  []Story
	panicMsg string
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Fetch(ctx context.Context) []Story {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.stories
}

func stubStory(title string, priority int, published time.Time) Story {
	return Story{
		Title:       title,
		Summary:     "summary",
		Source:      "stub",
		URL:         "https://example.com/" + title,
		PublishedAt: published,
		Category:    CategoryGeneral,
		Priority:    priority,
		Impact:      ImpactLow,
	}
}

func TestRefreshBuildsTopThree(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	adapters := []SourceAdapter{
		&stubAdapter{name: "a", stories: []Story{
			stubStory("manager press conference highlights", 7, base),
			stubStory("academy side wins youth cup tie", 4, base),
		}},
		&stubAdapter{name: "b", stories: []Story{
			stubStory("striker signs new long term contract", 10, base),
			stubStory("ticket office opening hours change", 3, base),
		}},
		&stubAdapter{name: "c", stories: []Story{
			stubStory("captain passed fit for weekend derby", 8, base),
		}},
	}

	e := NewEngine(adapters, NewDigestCache(), nil, nil)
	e.now = func() time.Time { return base }

	digest := e.Refresh(context.Background())
	if digest == nil {
		t.Fatal("Refresh returned nil")
	}
	if digest.Date != "2026-01-15" || digest.LastUpdated != "09:00:00" {
		t.Errorf("digest stamps = %s %s", digest.Date, digest.LastUpdated)
	}
	if len(digest.Stories) != TopStoryCount {
		t.Fatalf("got %d stories, want %d", len(digest.Stories), TopStoryCount)
	}

	wantPriorities := []int{10, 8, 7}
	for i, s := range digest.Stories {
		if s.Priority != wantPriorities[i] {
			t.Errorf("story %d priority = %d, want %d", i, s.Priority, wantPriorities[i])
		}
	}
}

func TestRefreshSurvivesFailingAndPanickingAdapters(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	adapters := []SourceAdapter{
		&stubAdapter{name: "ok", stories: []Story{
			stubStory("new signing completes medical", 10, base),
		}},
		&stubAdapter{name: "empty"},
		&stubAdapter{name: "boom", panicMsg: "upstream exploded"},
	}

	e := NewEngine(adapters, NewDigestCache(), nil, nil)
	e.now = func() time.Time { return base }

	digest := e.Refresh(context.Background())
	if len(digest.Stories) != 1 {
		t.Fatalf("got %d stories, want the 1 healthy source's story", len(digest.Stories))
	}
	if digest.Stories[0].Title != "new signing completes medical" {
		t.Errorf("unexpected survivor: %q", digest.Stories[0].Title)
	}
}

func TestRefreshWithNoSourcesYieldsEmptyDigest(t *testing.T) {
	e := NewEngine(nil, NewDigestCache(), nil, nil)

	digest := e.Refresh(context.Background())
	if digest == nil {
		t.Fatal("Refresh returned nil")
	}
	if len(digest.Stories) != 0 {
		t.Errorf("got %d stories, want 0", len(digest.Stories))
	}
}

func TestRefreshAndPublishUpdatesCache(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	cache := NewDigestCache()
	e := NewEngine([]SourceAdapter{
		&stubAdapter{name: "ok", stories: []Story{
			stubStory("derby win seals top four spot", 9, base),
		}},
	}, cache, nil, nil)
	e.now = func() time.Time { return base }

	digest := e.RefreshAndPublish(context.Background())
	if cache.Current() != digest {
		t.Error("cache does not hold the published digest")
	}
}

// blockingNotifier holds PostDigest until the test receives, so a
// synchronous notification would deadlock RefreshAndPublish.
type blockingNotifier struct {
	posted chan *DailyDigest
}

func (n *blockingNotifier) PostDigest(d *DailyDigest) error {
	n.posted <- d
	return nil
}

func TestRefreshAndPublishNotifiesInBackground(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	notifier := &blockingNotifier{posted: make(chan *DailyDigest)}
	cache := NewDigestCache()
	e := NewEngine([]SourceAdapter{
		&stubAdapter{name: "ok", stories: []Story{
			stubStory("late winner settles cup replay", 9, base),
		}},
	}, cache, notifier, nil)
	e.now = func() time.Time { return base }

	// Returns while PostDigest is still blocked on the unbuffered send
	digest := e.RefreshAndPublish(context.Background())
	if cache.Current() != digest {
		t.Error("digest not published before notification completed")
	}

	select {
	case posted := <-notifier.posted:
		if posted != digest {
			t.Error("notifier received a different digest")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification never sent")
	}
}

func TestFallbackDigestShape(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	e := NewEngine(nil, NewDigestCache(), nil, nil)
	e.now = func() time.Time { return base }

	digest := e.FallbackDigest()
	if len(digest.Stories) != 3 {
		t.Fatalf("got %d stories, want 3", len(digest.Stories))
	}

	wantPriorities := []int{5, 6, 8}
	wantOffsets := []time.Duration{0, -30 * time.Minute, -time.Hour}
	for i, s := range digest.Stories {
		if s.Priority != wantPriorities[i] {
			t.Errorf("story %d priority = %d, want %d", i, s.Priority, wantPriorities[i])
		}
		if !s.PublishedAt.Equal(base.Add(wantOffsets[i])) {
			t.Errorf("story %d published = %v", i, s.PublishedAt)
		}
		if s.Title == "" || s.Summary == "" || s.URL == "" {
			t.Errorf("story %d has empty fields", i)
		}
	}
	if digest.Stories[2].Category != CategoryTransfer {
		t.Errorf("third story category = %s, want TRANSFER", digest.Stories[2].Category)
	}
}
