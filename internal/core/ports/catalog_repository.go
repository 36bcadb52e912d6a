package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// CategoryRepository defines persistence operations for warehouse sections.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// UnitRepository defines persistence operations for units of measure.
type UnitRepository interface {
	Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	List(ctx context.Context, availableOnly bool) ([]*domain.Unit, error)
}

// WarehouseRepository defines persistence operations for warehouses and shelves.
type WarehouseRepository interface {
	Create(ctx context.Context, w *domain.Warehouse) (*domain.Warehouse, error)
	FindByID(ctx context.Context, id string) (*domain.Warehouse, error)
	List(ctx context.Context) ([]*domain.Warehouse, error)
	CreateShelf(ctx context.Context, s *domain.Shelf) (*domain.Shelf, error)
	ListShelves(ctx context.Context, warehouseID string) ([]*domain.Shelf, error)
}
