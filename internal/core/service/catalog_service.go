package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// CatalogService implements the reference-data screens: categories, units,
// warehouses and shelves.
type CatalogService struct {
	categories ports.CategoryRepository
	units      ports.UnitRepository
	warehouses ports.WarehouseRepository
	activity   ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewCatalogService(categories ports.CategoryRepository, units ports.UnitRepository, warehouses ports.WarehouseRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		categories: categories,
		units:      units,
		warehouses: warehouses,
		activity:   activity,
		logger:     logger,
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	kind := input.Kind
	if kind != domain.KindEquipment {
		kind = domain.KindMaterial
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		Name:        input.Name,
		Kind:        kind,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.record("category", created.ID, "create", input.ActorID)
	return created, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, input ports.CreateCategoryInput) (*domain.Category, error) {
	existing, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	if input.Kind == domain.KindMaterial || input.Kind == domain.KindEquipment {
		existing.Kind = input.Kind
	}
	existing.Description = input.Description

	updated, err := s.categories.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.record("category", updated.ID, "update", input.ActorID)
	return updated, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id, actorID string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.record("category", id, "delete", actorID)
	return nil
}

func (s *CatalogService) CreateUnit(ctx context.Context, input ports.CreateUnitInput) (*domain.Unit, error) {
	created, err := s.units.Create(ctx, &domain.Unit{
		Name:      input.Name,
		Short:     input.Short,
		Available: input.Available,
	})
	if err != nil {
		return nil, err
	}
	s.record("unit", created.ID, "create", input.ActorID)
	return created, nil
}

func (s *CatalogService) ListUnits(ctx context.Context, availableOnly bool) ([]*domain.Unit, error) {
	return s.units.List(ctx, availableOnly)
}

func (s *CatalogService) CreateWarehouse(ctx context.Context, input ports.CreateWarehouseInput) (*domain.Warehouse, error) {
	created, err := s.warehouses.Create(ctx, &domain.Warehouse{
		Name:      input.Name,
		Address:   input.Address,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.record("warehouse", created.ID, "create", input.ActorID)
	return created, nil
}

func (s *CatalogService) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	return s.warehouses.FindByID(ctx, id)
}

func (s *CatalogService) ListWarehouses(ctx context.Context) ([]*domain.Warehouse, error) {
	return s.warehouses.List(ctx)
}

// CreateShelf adds a shelf to an existing warehouse.
func (s *CatalogService) CreateShelf(ctx context.Context, input ports.CreateShelfInput) (*domain.Shelf, error) {
	warehouse, err := s.warehouses.FindByID(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}

	created, err := s.warehouses.CreateShelf(ctx, &domain.Shelf{
		WarehouseID: warehouse.ID,
		Label:       input.Label,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.record("shelf", created.ID, "create", input.ActorID)
	return created, nil
}

func (s *CatalogService) ListShelves(ctx context.Context, warehouseID string) ([]*domain.Shelf, error) {
	if _, err := s.warehouses.FindByID(ctx, warehouseID); err != nil {
		return nil, err
	}
	return s.warehouses.ListShelves(ctx, warehouseID)
}

func (s *CatalogService) record(entity, id, action, actorID string) {
	s.activity.Record(domain.ActivityEvent{
		Entity:   entity,
		EntityID: id,
		Action:   action,
		ActorID:  actorID,
		At:       time.Now().UTC(),
	})
}
