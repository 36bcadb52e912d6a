package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// CreateCategoryInput carries the fields of the category form.
type CreateCategoryInput struct {
	Name        string
	Kind        domain.CategoryKind
	Description string
	ActorID     string
}

// CreateWarehouseInput carries the fields of the warehouse form.
type CreateWarehouseInput struct {
	Name    string
	Address string
	ActorID string
}

// CreateShelfInput carries the fields of the shelf form.
type CreateShelfInput struct {
	WarehouseID string
	Label       string
	ActorID     string
}

// CreateUnitInput carries the fields of the unit form.
type CreateUnitInput struct {
	Name      string
	Short     string
	Available bool
	ActorID   string
}

// CatalogService covers the reference-data screens: categories, units,
// warehouses and shelves.
type CatalogService interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, input CreateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id, actorID string) error

	CreateUnit(ctx context.Context, input CreateUnitInput) (*domain.Unit, error)
	ListUnits(ctx context.Context, availableOnly bool) ([]*domain.Unit, error)

	CreateWarehouse(ctx context.Context, input CreateWarehouseInput) (*domain.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]*domain.Warehouse, error)
	CreateShelf(ctx context.Context, input CreateShelfInput) (*domain.Shelf, error)
	ListShelves(ctx context.Context, warehouseID string) ([]*domain.Shelf, error)
}
