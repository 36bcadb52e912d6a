package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("item not found")
var ErrCategoryNotFound = errors.New("category not found")
var ErrUnitNotFound = errors.New("unit not found")

// ItemField is a free-form attribute attached to an item, e.g. {Длина, 2м}.
type ItemField struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

// Item is a single warehouse position: raw material, hardware or equipment.
type Item struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	CategoryID  string      `json:"category_id" bson:"category_id"`
	UnitID      string      `json:"unit_id,omitempty" bson:"unit_id,omitempty"`
	Quantity    float64     `json:"quantity" bson:"quantity"`
	Price       float64     `json:"price" bson:"price"`
	WarehouseID string      `json:"warehouse_id,omitempty" bson:"warehouse_id,omitempty"`
	ShelfID     string      `json:"shelf_id,omitempty" bson:"shelf_id,omitempty"`
	Fields      []ItemField `json:"fields,omitempty" bson:"fields,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

// CategoryKind distinguishes material sections from equipment sections.
type CategoryKind string

const (
	KindMaterial  CategoryKind = "material"
	KindEquipment CategoryKind = "equipment"
)

// Category is a warehouse section grouping items.
type Category struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Name        string       `json:"name" bson:"name"`
	Kind        CategoryKind `json:"kind" bson:"kind"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
}

// Unit is a unit of measure (шт, м, кг, …).
type Unit struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Short     string `json:"short" bson:"short"`
	Available bool   `json:"available" bson:"available"`
}
