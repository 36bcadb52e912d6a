package domain

import (
	"errors"
	"time"
)

var ErrMachineNotFound = errors.New("machine not found")
var ErrOperationNotFound = errors.New("operation not found")
var ErrProfileNotFound = errors.New("profile not found")
var ErrPassportNotFound = errors.New("passport not found")

// Machine is a production machine (saw, CNC router, edge bander, …).
type Machine struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Type      string    `json:"type,omitempty" bson:"type,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Operation is a single manufacturing step, optionally bound to a machine.
type Operation struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	MachineID   string    `json:"machine_id,omitempty" bson:"machine_id,omitempty"`
	DurationMin int       `json:"duration_min,omitempty" bson:"duration_min,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Profile describes a material profile used by tech-cards.
type Profile struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Material  string    `json:"material,omitempty" bson:"material,omitempty"`
	SizeMM    string    `json:"size_mm,omitempty" bson:"size_mm,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Passport is a tech-card: the manufacturing recipe for one nomenclature
// position, listing the ordered operations it takes to produce it.
type Passport struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Code         string    `json:"code" bson:"code"`
	Name         string    `json:"name" bson:"name"`
	Type         string    `json:"type" bson:"type"`
	ProfileID    string    `json:"profile_id,omitempty" bson:"profile_id,omitempty"`
	OperationIDs []string  `json:"operation_ids,omitempty" bson:"operation_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// NomenclatureEntry is the lightweight view served to the autocomplete.
type NomenclatureEntry struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Code string `json:"code" bson:"code"`
	Name string `json:"name" bson:"name"`
	Type string `json:"type" bson:"type"`
}
