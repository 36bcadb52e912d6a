package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// ListItemsFilter carries the query parameters for listing items.
type ListItemsFilter struct {
	CategoryID string // optional: scope to one category
	Search     string // optional: partial match on name
}

// ItemRepository defines persistence operations for inventory items.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
	// StockByCategory aggregates quantity and value totals per category.
	StockByCategory(ctx context.Context) ([]domain.StockRow, error)
}
