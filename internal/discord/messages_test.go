package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lootgrid/lootgrid/internal/domain"
)

func TestFormatGrantAnnouncement(t *testing.T) {
	t.Run("announces new grants with running total", func(t *testing.T) {
		results := []domain.GrantResult{
			{ItemName: "sword", PointValue: 25, Granted: true, TotalScore: 25},
			{ItemName: "gem", PointValue: 10, Granted: true, TotalScore: 35},
		}

		msg := formatGrantAnnouncement("Runa", results)

		assert.Contains(t, msg, "Runa")
		assert.Contains(t, msg, "sword")
		assert.Contains(t, msg, "+25 points")
		assert.Contains(t, msg, "gem")
		assert.Contains(t, msg, "Total score: **35**")
	})

	t.Run("duplicates are silent", func(t *testing.T) {
		results := []domain.GrantResult{
			{ItemName: "sword", PointValue: 25, Granted: false, TotalScore: 25},
		}

		assert.Empty(t, formatGrantAnnouncement("Runa", results))
	})

	t.Run("mixed results announce only the new items", func(t *testing.T) {
		results := []domain.GrantResult{
			{ItemName: "sword", PointValue: 25, Granted: false, TotalScore: 25},
			{ItemName: "gem", PointValue: 10, Granted: true, TotalScore: 35},
		}

		msg := formatGrantAnnouncement("Runa", results)

		assert.NotContains(t, msg, "sword")
		assert.Contains(t, msg, "gem")
	})

	t.Run("no results yields empty message", func(t *testing.T) {
		assert.Empty(t, formatGrantAnnouncement("Runa", nil))
	})
}

func TestFormatLeaderboard(t *testing.T) {
	players := []domain.Player{
		{DiscordID: "1", DisplayName: "Runa", Score: 120},
		{DiscordID: "2", DisplayName: "Bram", Score: 95},
		{DiscordID: "3", DisplayName: "Ivo", Score: 40},
		{DiscordID: "4", DisplayName: "Sten", Score: 5},
	}

	board := formatLeaderboard(players)

	assert.Contains(t, board, "🥇 **Runa**: 120 points")
	assert.Contains(t, board, "🥈 **Bram**: 95 points")
	assert.Contains(t, board, "🥉 **Ivo**: 40 points")
	assert.Contains(t, board, "4. **Sten**: 5 points")
}
