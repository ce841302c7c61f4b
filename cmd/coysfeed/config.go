// cmd/coysfeed/config.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds all runtime settings. Everything comes from the
// environment (optionally seeded by a .env file) except the scraped
// source list, which lives in sources.yml.
type Config struct {
	Port int

	NewsAPIKey     string
	NewsAPIURL     string
	FootballAPIKey string
	FootballAPIURL string

	TeamName        string
	ManagerKeywords []string

	PeriodicCron string
	RolloverCron string
	FetchTimeout time.Duration

	SourcesPath string
	LogPath     string
	UserAgent   string

	DiscordBotToken  string
	DiscordChannelID string

	EnableSummaries bool
	OpenAIAPIKey    string
}

// LoadConfig reads .env (when present) and assembles the configuration
// from environment variables with workable defaults.
func LoadConfig() *Config {
	// Missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	return &Config{
		Port:             GetEnvInt("PORT", 3006),
		NewsAPIKey:       GetEnvString("NEWS_API_KEY", ""),
		NewsAPIURL:       GetEnvString("NEWS_API_URL", DefaultNewsAPIURL),
		FootballAPIKey:   GetEnvString("FOOTBALL_API_KEY", ""),
		FootballAPIURL:   GetEnvString("FOOTBALL_API_URL", DefaultFootballAPIURL),
		TeamName:         GetEnvString("TEAM_NAME", "Tottenham"),
		ManagerKeywords:  GetEnvStringSlice("MANAGER_KEYWORDS", []string{"ange", "postecoglou"}),
		PeriodicCron:     GetEnvString("PERIODIC_CRON", DefaultPeriodicCron),
		RolloverCron:     GetEnvString("ROLLOVER_CRON", DefaultRolloverCron),
		FetchTimeout:     time.Duration(GetEnvInt("FETCH_TIMEOUT_SECONDS", 5)) * time.Second,
		SourcesPath:      GetEnvString("SOURCES_PATH", DefaultSourcesPath),
		LogPath:          GetEnvString("LOG_PATH", DefaultLogPath),
		UserAgent:        GetEnvString("USER_AGENT", AppName+"/"+AppVersion),
		DiscordBotToken:  GetEnvString("DISCORD_BOT_TOKEN", ""),
		DiscordChannelID: GetEnvString("DISCORD_CHANNEL_ID", ""),
		EnableSummaries:  GetEnvBool("ENABLE_SUMMARIES", false),
		OpenAIAPIKey:     GetEnvString("OPENAI_API_KEY", ""),
	}
}

// GetEnvString gets a string from environment variables with a default value
func GetEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer from environment variables with a default value
func GetEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool gets a boolean from environment variables with a default value
func GetEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetEnvStringSlice gets a comma-separated list from environment
// variables with a default value
func GetEnvStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

// FeedSource is one RSS feed entry from sources.yml.
type FeedSource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// HTMLSource is one scraped headline page from sources.yml, with the
// CSS selector that picks its headline nodes.
type HTMLSource struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Selector string `yaml:"selector"`
}

// SourceList is the parsed sources.yml.
type SourceList struct {
	RSS  []FeedSource `yaml:"rss"`
	HTML []HTMLSource `yaml:"html"`
}

// LoadSourceList reads the RSS/HTML source definitions. A missing file
// is an error the caller may choose to tolerate (the API adapters work
// without it).
func LoadSourceList(path string) (*SourceList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %v", err)
	}

	var list SourceList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %v", err)
	}
	return &list, nil
}
