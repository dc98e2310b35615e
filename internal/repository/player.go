package repository

import (
	"context"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	// UpsertPlayer creates the player on first contact or refreshes the
	// display name, returning the stored record.
	UpsertPlayer(ctx context.Context, discordID, displayName string) (*domain.Player, error)
	GetPlayerByDiscordID(ctx context.Context, discordID string) (*domain.Player, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.Player, error)
}
