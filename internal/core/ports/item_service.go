package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// CreateItemInput carries all data needed to create an inventory item.
type CreateItemInput struct {
	Name        string
	CategoryID  string
	UnitID      string
	Quantity    float64
	Price       float64
	WarehouseID string
	ShelfID     string
	Fields      []domain.ItemField
	ActorID     string
}

// UpdateItemInput carries an item edit. Zero values overwrite: the modal
// submits the full form state, not a partial patch.
type UpdateItemInput struct {
	ID          string
	Name        string
	CategoryID  string
	UnitID      string
	Quantity    float64
	Price       float64
	WarehouseID string
	ShelfID     string
	Fields      []domain.ItemField
	ActorID     string
}

// ItemService defines use-case operations for inventory items.
type ItemService interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, filter ListItemsFilter) ([]*domain.Item, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, id, actorID string) error
}
