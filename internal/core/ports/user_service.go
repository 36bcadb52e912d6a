package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// AssignRoleInput carries a role-assignment request for a user.
// WarehouseID is required when Role is WAREHOUSE and must be empty otherwise.
type AssignRoleInput struct {
	UserID      string
	Role        string
	WarehouseID string
	ActorID     string
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	AssignRole(ctx context.Context, input AssignRoleInput) (*domain.User, error)
}
