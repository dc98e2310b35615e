package repository

import (
	"context"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// Ledger defines the interface for the grant ledger.
//
// Grant must execute "check ownership -> mark owned -> add point value
// to score" as one isolated unit per (player, item) pair: of N
// concurrent attempts for the same pair exactly one observes
// granted=true, and the point value is added to the score exactly
// once. Both winner and losers get the player's resulting total score.
// An existing ownership row with acquired=false is a legacy state and
// counts as not granted.
//
// Implementations wrap transient transaction failures (serialization,
// deadlock) in domain.ErrTransactionFailed so the service layer can
// retry them.
type Ledger interface {
	Grant(ctx context.Context, discordID string, item domain.Item) (*domain.GrantResult, error)
	GetOwnedItemIDs(ctx context.Context, discordID string) ([]int, error)
}
