// cmd/coysfeed/notify.go
package main

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Notifier posts each freshly published digest to a Discord channel as
// one embed per story. It only uses the REST API, so no gateway
// connection is opened.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

func NewNotifier(botToken, channelID string) (*Notifier, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %v", err)
	}
	return &Notifier{session: session, channelID: channelID}, nil
}

// PostDigest sends the digest header followed by one embed per story.
func (n *Notifier) PostDigest(digest *DailyDigest) error {
	header := fmt.Sprintf("📰 **COYS Daily Top %d** (%s)", TopStoryCount, digest.Date)
	if _, err := n.session.ChannelMessageSend(n.channelID, header); err != nil {
		return err
	}

	for _, story := range digest.Stories {
		embed := &discordgo.MessageEmbed{
			Title:       story.Title,
			URL:         story.URL,
			Description: story.Summary,
			Color:       colorForCategory(story.Category),
			Timestamp:   story.PublishedAt.Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Source: %s | %s | %s", story.Source, story.Category, story.Impact),
			},
		}

		if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
			return err
		}
		// Small delay between posts to avoid rate limiting
		time.Sleep(500 * time.Millisecond)
	}

	return nil
}

func colorForCategory(category Category) int {
	switch category {
	case CategoryTransfer:
		return 0x008800 // Green
	case CategoryMatchResult:
		return 0xFF0000 // Red
	case CategoryInjury:
		return 0xFF8800 // Orange
	case CategoryManager:
		return 0x880088 // Purple
	case CategoryYouth:
		return 0x00FFFF // Cyan
	default:
		return 0x0099FF // Blue
	}
}
