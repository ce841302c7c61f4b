// cmd/coysfeed/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	defer RecoverFromPanic("main")

	cfg := LoadConfig()

	if err := InitLogger(cfg.LogPath, LogInfo); err != nil {
		log.Printf("Warning: file logging unavailable: %v", err)
	}
	Logger().Info("%s v%s starting up", AppName, AppVersion)

	sources := &SourceList{}
	if loaded, err := LoadSourceList(cfg.SourcesPath); err != nil {
		Logger().Warning("no scraped sources configured: %v", err)
	} else {
		sources = loaded
	}

	classifier := NewClassifier(cfg.ManagerKeywords)
	cache := NewDigestCache()

	// Left nil unless configured; a nil *Notifier must not end up
	// wrapped in the interface
	var notifier DigestNotifier
	if cfg.DiscordBotToken != "" && cfg.DiscordChannelID != "" {
		n, err := NewNotifier(cfg.DiscordBotToken, cfg.DiscordChannelID)
		if err != nil {
			Logger().Warning("Discord notifications unavailable: %v", err)
		} else {
			Logger().Info("Discord digest notifications enabled")
			notifier = n
		}
	}

	var summarizer *Summarizer
	if cfg.EnableSummaries && cfg.OpenAIAPIKey != "" {
		summarizer = NewSummarizer(cfg.OpenAIAPIKey)
		Logger().Info("story summarization enabled")
	}

	engine := NewEngine(buildAdapters(cfg, classifier, sources), cache, notifier, summarizer)

	scheduler, err := NewScheduler(engine, cfg.PeriodicCron, cfg.RolloverCron)
	if err != nil {
		Logger().Error("invalid schedule configuration: %v", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: NewRouter(engine, cache),
	}
	go func() {
		defer RecoverFromPanic("http-server")
		Logger().Info("serving daily feed on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			Logger().Error("HTTP server failed: %v", err)
		}
	}()

	// Initial fetch so the first reader never waits for the cron
	Logger().Info("fetching initial daily top %d", TopStoryCount)
	engine.RefreshAndPublish(context.Background())

	scheduler.Start()
	defer scheduler.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	Logger().Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		Logger().Warning("HTTP shutdown: %v", err)
	}
}

// buildAdapters registers every source the engine fans out to. The
// first five are the core adapter set; RSS and scraped sources join
// when sources.yml lists any.
func buildAdapters(cfg *Config, classifier *Classifier, sources *SourceList) []SourceAdapter {
	client := newAPIClient(cfg.FetchTimeout, cfg.UserAgent)
	newsAPI := newNewsAPIClient(client, cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.FetchTimeout)

	adapters := []SourceAdapter{
		NewNewsAdapter(newsAPI, classifier),
		NewMatchAdapter(client, cfg.FootballAPIURL, cfg.FootballAPIKey, cfg.TeamName, cfg.FetchTimeout),
		NewTransferAdapter(newsAPI),
		NewInjuryAdapter(newsAPI),
		NewTeamNewsAdapter(),
	}

	if len(sources.RSS) > 0 {
		adapters = append(adapters, NewRSSAdapter(sources.RSS, classifier, cfg.FetchTimeout, cfg.UserAgent))
	}
	if len(sources.HTML) > 0 {
		adapters = append(adapters, NewScrapeAdapter(sources.HTML, classifier, cfg.FetchTimeout, cfg.UserAgent))
	}

	return adapters
}
