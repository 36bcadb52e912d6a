package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

const (
	categoriesCollection = "categories"
	unitsCollection      = "units"
	warehousesCollection = "warehouses"
	shelvesCollection    = "shelves"
)

// CategoryRepository persists warehouse sections.
type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(categoriesCollection)}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Category
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []*domain.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// UnitRepository persists units of measure.
type UnitRepository struct {
	coll *mongo.Collection
}

func NewUnitRepository(db *mongo.Database) *UnitRepository {
	return &UnitRepository{coll: db.Collection(unitsCollection)}
}

func (r *UnitRepository) Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	u.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return nil, fmt.Errorf("insert unit: %w", err)
	}
	return u, nil
}

func (r *UnitRepository) List(ctx context.Context, availableOnly bool) ([]*domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if availableOnly {
		query["available"] = true
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer cur.Close(ctx)

	var units []*domain.Unit
	if err := cur.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("decode units: %w", err)
	}
	return units, nil
}

// WarehouseRepository persists warehouses and their shelves.
type WarehouseRepository struct {
	warehouses *mongo.Collection
	shelves    *mongo.Collection
}

func NewWarehouseRepository(db *mongo.Database) *WarehouseRepository {
	return &WarehouseRepository{
		warehouses: db.Collection(warehousesCollection),
		shelves:    db.Collection(shelvesCollection),
	}
}

func (r *WarehouseRepository) Create(ctx context.Context, w *domain.Warehouse) (*domain.Warehouse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	w.ID = primitive.NewObjectID().Hex()
	if _, err := r.warehouses.InsertOne(ctx, w); err != nil {
		return nil, fmt.Errorf("insert warehouse: %w", err)
	}
	return w, nil
}

func (r *WarehouseRepository) FindByID(ctx context.Context, id string) (*domain.Warehouse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.Warehouse
	if err := r.warehouses.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("find warehouse: %w", err)
	}
	return &w, nil
}

func (r *WarehouseRepository) List(ctx context.Context) ([]*domain.Warehouse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.warehouses.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer cur.Close(ctx)

	var list []*domain.Warehouse
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode warehouses: %w", err)
	}
	return list, nil
}

func (r *WarehouseRepository) CreateShelf(ctx context.Context, s *domain.Shelf) (*domain.Shelf, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s.ID = primitive.NewObjectID().Hex()
	if _, err := r.shelves.InsertOne(ctx, s); err != nil {
		return nil, fmt.Errorf("insert shelf: %w", err)
	}
	return s, nil
}

func (r *WarehouseRepository) ListShelves(ctx context.Context, warehouseID string) ([]*domain.Shelf, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.shelves.Find(ctx, bson.M{"warehouse_id": warehouseID})
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	defer cur.Close(ctx)

	var list []*domain.Shelf
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode shelves: %w", err)
	}
	return list, nil
}
