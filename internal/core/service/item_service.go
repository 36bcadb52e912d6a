package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// ItemService implements the inventory item screens.
type ItemService struct {
	items      ports.ItemRepository
	categories ports.CategoryRepository
	activity   ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewItemService(items ports.ItemRepository, categories ports.CategoryRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *ItemService {
	return &ItemService{items: items, categories: categories, activity: activity, logger: logger}
}

func (s *ItemService) CreateItem(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	category, err := s.categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.Item{
		Name:        input.Name,
		CategoryID:  category.ID,
		UnitID:      input.UnitID,
		Quantity:    input.Quantity,
		Price:       input.Price,
		WarehouseID: input.WarehouseID,
		ShelfID:     input.ShelfID,
		Fields:      input.Fields,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create item")
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID).Str("category_id", created.CategoryID).Msg("item created")
	s.activity.Record(domain.ActivityEvent{
		Entity:   "item",
		EntityID: created.ID,
		Action:   "create",
		ActorID:  input.ActorID,
		At:       now,
	})
	return created, nil
}

func (s *ItemService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.FindByID(ctx, id)
}

func (s *ItemService) ListItems(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.Item, error) {
	return s.items.List(ctx, filter)
}

func (s *ItemService) UpdateItem(ctx context.Context, input ports.UpdateItemInput) (*domain.Item, error) {
	existing, err := s.items.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.CategoryID = input.CategoryID
	existing.UnitID = input.UnitID
	existing.Quantity = input.Quantity
	existing.Price = input.Price
	existing.WarehouseID = input.WarehouseID
	existing.ShelfID = input.ShelfID
	existing.Fields = input.Fields
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.items.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		Entity:   "item",
		EntityID: updated.ID,
		Action:   "update",
		ActorID:  input.ActorID,
		At:       existing.UpdatedAt,
	})
	return updated, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id, actorID string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(domain.ActivityEvent{
		Entity:   "item",
		EntityID: id,
		Action:   "delete",
		ActorID:  actorID,
		At:       time.Now().UTC(),
	})
	return nil
}
