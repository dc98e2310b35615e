package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the top collectors",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "size",
				Description: "Number of players to show (default: 10)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		limit := 0
		if opts := i.ApplicationCommandData().Options; len(opts) > 0 {
			limit = int(opts[0].IntValue())
		}

		players, err := b.Ledger.GetLeaderboard(context.Background(), limit)
		if err != nil {
			slog.Error("Failed to get leaderboard", "error", err)
			respondError(s, i, MsgGenericError)
			return
		}

		if len(players) == 0 {
			respondError(s, i, MsgNoScores)
			return
		}

		embed := createEmbed("🏆 Leaderboard", formatLeaderboard(players), ColorGold)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
