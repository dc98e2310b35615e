package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// ScoreCommand returns the score command definition and handler
func ScoreCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "score",
		Description: "Show your score and collected items",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		ctx := context.Background()

		player, err := b.Ledger.GetPlayer(ctx, user.ID)
		if err != nil {
			if errors.Is(err, domain.ErrPlayerNotFound) {
				respondError(s, i, MsgPlayerNotFound)
				return
			}
			slog.Error("Failed to get player", "error", err)
			respondError(s, i, MsgGenericError)
			return
		}

		owned, err := b.Ledger.GetOwnedItems(ctx, user.ID)
		if err != nil {
			slog.Error("Failed to get owned items", "error", err)
			respondError(s, i, MsgGenericError)
			return
		}

		description := fmt.Sprintf("**%d points** from %d items", player.Score, len(owned))
		embed := createEmbed(fmt.Sprintf("%s's Score", player.DisplayName), description, ColorInfo)
		if len(owned) > 0 {
			names := make([]string, len(owned))
			for idx, item := range owned {
				names[idx] = item.Name
			}
			embed.Fields = []*discordgo.MessageEmbedField{
				{
					Name:  "Collection",
					Value: strings.Join(names, ", "),
				},
			}
		}
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL(""),
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
