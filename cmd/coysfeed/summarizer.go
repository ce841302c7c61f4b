// cmd/coysfeed/summarizer.go
package main

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Summarizer writes a one-line summary for digest stories whose source
// offered no description. It is strictly best-effort: any API failure
// leaves the placeholder summary in place.
type Summarizer struct {
	client *openai.Client
	model  string
}

func NewSummarizer(apiKey string) *Summarizer {
	return &Summarizer{
		client: openai.NewClient(apiKey),
		model:  openai.GPT3Dot5Turbo,
	}
}

// Enrich fills placeholder summaries in a not-yet-published digest.
func (s *Summarizer) Enrich(ctx context.Context, digest *DailyDigest) {
	for i := range digest.Stories {
		if digest.Stories[i].Summary != DefaultSummary {
			continue
		}

		summary, err := s.summarize(ctx, digest.Stories[i].Title)
		if err != nil {
			Logger().Warning("summarize failed for %q: %v", digest.Stories[i].Title, err)
			continue
		}
		if summary != "" {
			digest.Stories[i].Summary = truncateSummary(summary)
		}
	}
}

func (s *Summarizer) summarize(ctx context.Context, title string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write one-sentence factual summaries of football news headlines about Tottenham Hotspur. No opinions, no emoji.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: title,
			},
		},
		MaxTokens:   60,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
