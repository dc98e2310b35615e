package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/lootgrid/lootgrid/internal/scanner"
)

// scanJob carries one posted screenshot through the scan pipeline and
// announces any new grants back in the channel it came from.
type scanJob struct {
	bot       *Bot
	channelID string
	url       string
	submitter scanner.Submitter
}

func (j *scanJob) Process(ctx context.Context) error {
	results, err := j.bot.Scanner.ProcessScreenshot(ctx, j.url, j.submitter)
	if err != nil {
		return fmt.Errorf("screenshot scan failed: %w", err)
	}

	announcement := formatGrantAnnouncement(j.submitter.DisplayName, results)
	if announcement == "" {
		return nil
	}

	if _, err := j.bot.Session.ChannelMessageSend(j.channelID, announcement); err != nil {
		return fmt.Errorf("failed to announce grants: %w", err)
	}
	return nil
}

// messageCreate watches for image attachments and queues a scan per
// screenshot. The handler itself never blocks on pipeline work.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	for _, attachment := range m.Attachments {
		if !isImageAttachment(attachment) {
			continue
		}

		job := &scanJob{
			bot:       b,
			channelID: m.ChannelID,
			url:       attachment.URL,
			submitter: scanner.Submitter{
				DiscordID:   m.Author.ID,
				DisplayName: displayName(m),
			},
		}

		if !b.Scans.Enqueue(job) {
			slog.Warn("Scan queue full, dropping screenshot", "user", m.Author.ID)
		}
	}
}

func isImageAttachment(a *discordgo.MessageAttachment) bool {
	return strings.HasPrefix(a.ContentType, "image/")
}

// displayName prefers the guild nickname over the account username.
func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
