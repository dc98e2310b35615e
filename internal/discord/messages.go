package discord

import (
	"fmt"
	"strings"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// Friendly message constants for Discord responses
const (
	MsgPlayerNotFound = "👤 **Player Not Found**\nPost an inventory screenshot to get on the board!"
	MsgNoScores       = "🏆 **Nothing here yet**\nNobody has scored a single point. Sad."
	MsgGenericError   = "❌ Something went wrong."

	FooterLootGrid = "LootGrid"
)

// Embed colors
const (
	ColorSuccess = 0x2ecc71
	ColorInfo    = 0x3498db
	ColorGold    = 0xf1c40f
)

// formatGrantAnnouncement builds the channel message for a processed
// screenshot. Only newly granted items are announced; duplicates stay
// quiet so resubmissions do not spam the channel.
func formatGrantAnnouncement(displayName string, results []domain.GrantResult) string {
	var granted []domain.GrantResult
	total := 0
	for _, r := range results {
		if r.Granted {
			granted = append(granted, r)
			total = r.TotalScore
		}
	}
	if len(granted) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🎉 **%s** found new loot!\n", displayName)
	for _, r := range granted {
		fmt.Fprintf(&sb, "• **%s** (+%d points)\n", r.ItemName, r.PointValue)
	}
	fmt.Fprintf(&sb, "Total score: **%d**", total)
	return sb.String()
}

// formatLeaderboard renders the top players with medals for the podium.
func formatLeaderboard(players []domain.Player) string {
	medals := []string{"🥇", "🥈", "🥉"}

	var sb strings.Builder
	for idx, p := range players {
		rank := fmt.Sprintf("%d.", idx+1)
		if idx < len(medals) {
			rank = medals[idx]
		}
		fmt.Fprintf(&sb, "%s **%s**: %d points\n", rank, p.DisplayName, p.Score)
	}
	return strings.TrimRight(sb.String(), "\n")
}
