// cmd/coysfeed/digest.go
package main

import (
	"context"
	"time"
)

// DigestNotifier posts a published digest to an external channel.
type DigestNotifier interface {
	PostDigest(digest *DailyDigest) error
}

// Engine is the aggregation orchestrator: it fans out to every source
// adapter, ranks and dedups the merged candidates, and publishes the
// resulting top stories as the current daily digest.
type Engine struct {
	adapters   []SourceAdapter
	cache      *DigestCache
	notifier   DigestNotifier
	summarizer *Summarizer
	now        func() time.Time
}

// NewEngine wires the orchestrator. notifier and summarizer may be nil
// when their integrations are not configured.
func NewEngine(adapters []SourceAdapter, cache *DigestCache, notifier DigestNotifier, summarizer *Summarizer) *Engine {
	return &Engine{
		adapters:   adapters,
		cache:      cache,
		notifier:   notifier,
		summarizer: summarizer,
		now:        time.Now,
	}
}

// Refresh builds a fresh digest from every source. It never returns an
// error: adapters absorb their own failures, and an unexpected panic
// anywhere in the path resolves to the fixed fallback digest so callers
// always receive renderable content.
func (e *Engine) Refresh(ctx context.Context) (digest *DailyDigest) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("refresh panicked, serving fallback digest: %v", r)
			RecordFallback()
			digest = e.FallbackDigest()
		}
	}()

	Logger().Info("refreshing daily top %d", TopStoryCount)

	stories := FetchAll(ctx, e.adapters)
	ranked := Rank(stories)
	if len(ranked) > TopStoryCount {
		ranked = ranked[:TopStoryCount]
	}

	now := e.now()
	digest = &DailyDigest{
		Date:        now.Format(DateLayout),
		LastUpdated: now.Format(ClockLayout),
		Stories:     ranked,
	}

	Logger().Info("daily top %d updated with %d stories", TopStoryCount, len(ranked))
	return digest
}

// RefreshAndPublish is the single entry point used by the scheduler,
// the HTTP handlers and the startup fetch: refresh, enrich, swap the
// cached digest, then notify in the background. Enrichment and
// notification are best-effort and cannot fail the refresh.
func (e *Engine) RefreshAndPublish(ctx context.Context) *DailyDigest {
	digest := e.Refresh(ctx)

	if e.summarizer != nil {
		e.summarizer.Enrich(ctx, digest)
	}

	e.cache.Publish(digest)
	RecordRefresh(len(digest.Stories))

	if e.notifier != nil {
		// Posting paces itself between messages, so it runs off the
		// refresh path; synchronous readers must not wait on it
		notifier := e.notifier
		go func() {
			defer RecoverFromPanic("digest-notify")
			if err := notifier.PostDigest(digest); err != nil {
				Logger().Warning("digest notification failed: %v", err)
			}
		}()
	}

	return digest
}

// FallbackDigest is the last line of defense: three hardcoded
// placeholder stories so no caller ever sees an error or an empty
// digest.
func (e *Engine) FallbackDigest() *DailyDigest {
	now := e.now()

	return &DailyDigest{
		Date:        now.Format(DateLayout),
		LastUpdated: now.Format(ClockLayout),
		Stories: []Story{
			{
				Title:       "COYS Daily: Stay Connected for Latest Updates",
				Summary:     "Your daily dose of Tottenham news will be here soon. Check back for live updates.",
				Source:      "COYS News Feed",
				URL:         "https://www.tottenhamhotspur.com/",
				PublishedAt: now,
				Category:    CategoryGeneral,
				Priority:    5,
				Impact:      ImpactMedium,
			},
			{
				Title:       "Match Preview: Upcoming Fixtures Analysis",
				Summary:     "Tactical breakdown and team news for upcoming Spurs fixtures",
				Source:      "COYS Analysis",
				URL:         "https://www.tottenhamhotspur.com/fixtures/",
				PublishedAt: now.Add(-30 * time.Minute),
				Category:    CategoryTeamNews,
				Priority:    6,
				Impact:      ImpactMedium,
			},
			{
				Title:       "Transfer Watch: January Window Updates",
				Summary:     "Latest transfer rumors and confirmed moves affecting Tottenham",
				Source:      "Transfer Central",
				URL:         "https://www.tottenhamhotspur.com/news/",
				PublishedAt: now.Add(-1 * time.Hour),
				Category:    CategoryTransfer,
				Priority:    8,
				Impact:      ImpactHigh,
			},
		},
	}
}
