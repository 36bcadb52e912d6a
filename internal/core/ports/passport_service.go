package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// CreatePassportInput carries the fields of the passport form.
type CreatePassportInput struct {
	Code         string
	Name         string
	Type         string
	ProfileID    string
	OperationIDs []string
	ActorID      string
}

// CreateOperationInput carries the fields of the operation form.
type CreateOperationInput struct {
	Name        string
	MachineID   string
	DurationMin int
	ActorID     string
}

// CreateProfileInput carries the fields of the profile form.
type CreateProfileInput struct {
	Name     string
	Material string
	SizeMM   string
	ActorID  string
}

// PassportService covers the manufacturing-metadata screens: passports
// (tech-cards), operations, profiles, machines and the nomenclature
// autocomplete.
type PassportService interface {
	CreatePassport(ctx context.Context, input CreatePassportInput) (*domain.Passport, error)
	GetPassport(ctx context.Context, id string) (*domain.Passport, error)
	ListPassports(ctx context.Context) ([]*domain.Passport, error)

	CreateOperation(ctx context.Context, input CreateOperationInput) (*domain.Operation, error)
	ListOperations(ctx context.Context) ([]*domain.Operation, error)

	CreateProfile(ctx context.Context, input CreateProfileInput) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]*domain.Profile, error)

	ListMachines(ctx context.Context) ([]*domain.Machine, error)

	// SearchNomenclature serves the autocomplete. Results for identical
	// filters may be served from cache.
	SearchNomenclature(ctx context.Context, filter NomenclatureFilter) ([]domain.NomenclatureEntry, error)
}
