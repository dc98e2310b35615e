package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// LedgerRepository implements the grant ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Grant performs the claim and the score credit in one transaction.
//
// The conditional upsert claims first-time ownership: the row lock on
// (player_id, item_id) serializes concurrent claims, and the WHERE
// clause re-evaluates against the winner's committed row, so losers
// see no row returned and read the score without crediting. A legacy
// acquired=FALSE row is claimed the same way a missing row is.
func (r *LedgerRepository) Grant(ctx context.Context, discordID string, item domain.Item) (*domain.GrantResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	result := &domain.GrantResult{
		ItemID:     item.ID,
		ItemName:   item.Name,
		PointValue: item.PointValue,
	}

	claimQuery := `
		INSERT INTO player_items (player_id, item_id, acquired, acquired_at)
		VALUES ($1, $2, TRUE, NOW())
		ON CONFLICT (player_id, item_id) DO UPDATE
		SET acquired = TRUE, acquired_at = NOW()
		WHERE player_items.acquired = FALSE
		RETURNING player_id
	`
	var claimedBy string
	err = tx.QueryRow(ctx, claimQuery, discordID, item.ID).Scan(&claimedBy)
	switch {
	case err == nil:
		result.Granted = true
	case errors.Is(err, pgx.ErrNoRows):
		result.Granted = false
	case isForeignKeyViolation(err):
		return nil, domain.ErrPlayerNotFound
	default:
		return nil, wrapTxError(ErrMsgFailedToClaimItem, err)
	}

	if result.Granted {
		creditQuery := `
			UPDATE players
			SET score = score + $2, updated_at = NOW()
			WHERE discord_id = $1
			RETURNING score
		`
		err = tx.QueryRow(ctx, creditQuery, discordID, item.PointValue).Scan(&result.TotalScore)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrPlayerNotFound
			}
			return nil, wrapTxError(ErrMsgFailedToCreditScore, err)
		}
	} else {
		readQuery := `SELECT score FROM players WHERE discord_id = $1`
		err = tx.QueryRow(ctx, readQuery, discordID).Scan(&result.TotalScore)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrPlayerNotFound
			}
			return nil, wrapTxError(ErrMsgFailedToReadScore, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapTxError(ErrMsgFailedToCommitTransaction, err)
	}
	return result, nil
}

// GetOwnedItemIDs returns the ids of items the player has acquired,
// ordered ascending.
func (r *LedgerRepository) GetOwnedItemIDs(ctx context.Context, discordID string) ([]int, error) {
	query := `
		SELECT item_id
		FROM player_items
		WHERE player_id = $1 AND acquired = TRUE
		ORDER BY item_id
	`
	rows, err := r.db.Query(ctx, query, discordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOwnedItems, err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOwnedItems, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOwnedItems, err)
	}
	return ids, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation
}

// wrapTxError tags retryable serialization and deadlock failures with
// domain.ErrTransactionFailed so the service layer can retry them.
func wrapTxError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PgErrorCodeSerializationFailure || pgErr.Code == PgErrorCodeDeadlockDetected {
			return fmt.Errorf("%s: %w: %w", msg, domain.ErrTransactionFailed, err)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
