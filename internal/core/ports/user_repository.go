package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateRole sets the user's role and warehouse assignment. An empty
	// warehouseID clears any previous assignment.
	UpdateRole(ctx context.Context, id, role, warehouseID string) (*domain.User, error)
}
