package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// ItemRepository implements the item repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetAllItems returns the full catalog ordered by id.
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	query := `
		SELECT item_id, item_name, point_value, reference_image
		FROM items
		ORDER BY item_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAllItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.PointValue, &item.ReferenceImage); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAllItems, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAllItems, err)
	}
	return items, nil
}

// GetItemByID returns the item or nil when no row exists.
func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	query := `
		SELECT item_id, item_name, point_value, reference_image
		FROM items
		WHERE item_id = $1
	`
	var item domain.Item
	err := r.db.QueryRow(ctx, query, id).
		Scan(&item.ID, &item.Name, &item.PointValue, &item.ReferenceImage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItemByID, err)
	}
	return &item, nil
}

// InsertItem adds a catalog entry, updating the existing row when an
// item of the same name is already registered. Returns the item id.
func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	query := `
		INSERT INTO items (item_name, point_value, reference_image)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_name) DO UPDATE
		SET point_value = EXCLUDED.point_value, reference_image = EXCLUDED.reference_image
		RETURNING item_id
	`
	var id int
	err := r.db.QueryRow(ctx, query, item.Name, item.PointValue, item.ReferenceImage).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	return id, nil
}
