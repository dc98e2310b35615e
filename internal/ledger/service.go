// Package ledger turns confirmed screenshot matches into durable,
// race-free ownership and score updates.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lootgrid/lootgrid/internal/domain"
	"github.com/lootgrid/lootgrid/internal/logger"
	"github.com/lootgrid/lootgrid/internal/metrics"
	"github.com/lootgrid/lootgrid/internal/repository"
)

// Service is the grant ledger: idempotent, atomic first-time ownership
// plus score credit per (player, item) pair.
type Service interface {
	RegisterPlayer(ctx context.Context, discordID, displayName string) (*domain.Player, error)
	Grant(ctx context.Context, discordID string, item domain.Item) (*domain.GrantResult, error)
	GetPlayer(ctx context.Context, discordID string) (*domain.Player, error)
	GetOwnedItems(ctx context.Context, discordID string) ([]domain.Item, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.Player, error)
}

type service struct {
	players repository.Player
	items   repository.Item
	ledger  repository.Ledger

	maxAttempts int
	retryDelay  time.Duration
}

// NewService creates a new ledger service.
func NewService(players repository.Player, items repository.Item, ledgerRepo repository.Ledger) Service {
	return &service{
		players:     players,
		items:       items,
		ledger:      ledgerRepo,
		maxAttempts: MaxGrantAttempts,
		retryDelay:  GrantRetryDelay,
	}
}

// RegisterPlayer creates the player on first contact and refreshes the
// display name on later contacts.
func (s *service) RegisterPlayer(ctx context.Context, discordID, displayName string) (*domain.Player, error) {
	if discordID == "" {
		return nil, fmt.Errorf("%w: empty discord id", domain.ErrInvalidInput)
	}

	player, err := s.players.UpsertPlayer(ctx, discordID, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert player: %w", err)
	}
	return player, nil
}

// Grant records first-time ownership of item for the player and credits
// its point value, retrying transient transaction failures a bounded
// number of times. Repeated and concurrent calls for the same pair are
// safe: at most one returns Granted=true, and every call returns the
// player's current total score.
func (s *service) Grant(ctx context.Context, discordID string, item domain.Item) (*domain.GrantResult, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		result, err := s.ledger.Grant(ctx, discordID, item)
		if err == nil {
			s.observeGrant(ctx, item, result)
			return result, nil
		}

		if !errors.Is(err, domain.ErrTransactionFailed) {
			return nil, err
		}

		lastErr = err
		metrics.GrantRetries.Inc()
		log.Warn(LogMsgGrantRetry, "item", item.Name, "attempt", attempt, "error", err)

		if attempt < s.maxAttempts {
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	log.Error(LogMsgGrantExhausted, "item", item.Name, "attempts", s.maxAttempts, "error", lastErr)
	return nil, fmt.Errorf("grant for item %q gave up after %d attempts: %w", item.Name, s.maxAttempts, lastErr)
}

func (s *service) observeGrant(ctx context.Context, item domain.Item, result *domain.GrantResult) {
	log := logger.FromContext(ctx)
	if result.Granted {
		metrics.GrantsTotal.WithLabelValues(metrics.GrantResultNew).Inc()
		log.Info(LogMsgItemGranted, "item", item.Name, "points", item.PointValue, "total_score", result.TotalScore)
	} else {
		metrics.GrantsTotal.WithLabelValues(metrics.GrantResultDuplicate).Inc()
		log.Debug(LogMsgDuplicateGrant, "item", item.Name, "total_score", result.TotalScore)
	}
}

// GetPlayer returns the stored player record.
func (s *service) GetPlayer(ctx context.Context, discordID string) (*domain.Player, error) {
	player, err := s.players.GetPlayerByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, domain.ErrPlayerNotFound
	}
	return player, nil
}

// GetOwnedItems resolves the player's acquired item ids against the
// catalog. Ids with no catalog row are skipped; the catalog only ever
// grows, so that means a concurrent reseed and not data loss.
func (s *service) GetOwnedItems(ctx context.Context, discordID string) ([]domain.Item, error) {
	ids, err := s.ledger.GetOwnedItemIDs(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned item ids: %w", err)
	}

	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		item, err := s.items.GetItemByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve item %d: %w", id, err)
		}
		if item == nil {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

// GetLeaderboard returns the top players ordered by score.
func (s *service) GetLeaderboard(ctx context.Context, limit int) ([]domain.Player, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	return s.players.GetLeaderboard(ctx, limit)
}
