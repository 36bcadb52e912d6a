package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// NomenclatureFilter carries the autocomplete query parameters.
type NomenclatureFilter struct {
	Type   string // optional: passport type
	Search string // optional: case-insensitive substring on name or code
	Limit  int    // capped by the service
}

// PassportRepository defines persistence for tech-cards and their lookups.
type PassportRepository interface {
	Create(ctx context.Context, p *domain.Passport) (*domain.Passport, error)
	FindByID(ctx context.Context, id string) (*domain.Passport, error)
	List(ctx context.Context) ([]*domain.Passport, error)
	SearchNomenclature(ctx context.Context, filter NomenclatureFilter) ([]domain.NomenclatureEntry, error)
}

// MachineRepository defines persistence for production machines.
type MachineRepository interface {
	List(ctx context.Context) ([]*domain.Machine, error)
}

// OperationRepository defines persistence for manufacturing operations.
type OperationRepository interface {
	Create(ctx context.Context, op *domain.Operation) (*domain.Operation, error)
	List(ctx context.Context) ([]*domain.Operation, error)
}

// ProfileRepository defines persistence for material profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
}
