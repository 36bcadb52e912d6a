package domain

import (
	"errors"
	"time"
)

var ErrWarehouseNotFound = errors.New("warehouse not found")

// Warehouse is a physical storage site.
type Warehouse struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Shelf is a labelled storage location inside a warehouse.
type Shelf struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	WarehouseID string    `json:"warehouse_id" bson:"warehouse_id"`
	Label       string    `json:"label" bson:"label"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
