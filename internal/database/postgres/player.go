// Package postgres implements the repository interfaces on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// UpsertPlayer inserts the player on first contact and refreshes the
// display name on later contacts. The score is never touched here.
func (r *PlayerRepository) UpsertPlayer(ctx context.Context, discordID, displayName string) (*domain.Player, error) {
	query := `
		INSERT INTO players (discord_id, display_name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (discord_id) DO UPDATE
		SET display_name = EXCLUDED.display_name, updated_at = NOW()
		RETURNING discord_id, display_name, score
	`
	var player domain.Player
	err := r.db.QueryRow(ctx, query, discordID, displayName).
		Scan(&player.DiscordID, &player.DisplayName, &player.Score)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPlayer, err)
	}
	return &player, nil
}

// GetPlayerByDiscordID returns the player or nil when no row exists.
func (r *PlayerRepository) GetPlayerByDiscordID(ctx context.Context, discordID string) (*domain.Player, error) {
	query := `
		SELECT discord_id, display_name, score
		FROM players
		WHERE discord_id = $1
	`
	var player domain.Player
	err := r.db.QueryRow(ctx, query, discordID).
		Scan(&player.DiscordID, &player.DisplayName, &player.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return &player, nil
}

// GetLeaderboard returns the top players ordered by score descending,
// ties broken by discord id for a stable ordering.
func (r *PlayerRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.Player, error) {
	query := `
		SELECT discord_id, display_name, score
		FROM players
		ORDER BY score DESC, discord_id ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var player domain.Player
		if err := rows.Scan(&player.DiscordID, &player.DisplayName, &player.Score); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
	}
	return players, nil
}
