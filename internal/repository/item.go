package repository

import (
	"context"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// Item defines the interface for catalog persistence
type Item interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)
	InsertItem(ctx context.Context, item *domain.Item) (int, error)
}
