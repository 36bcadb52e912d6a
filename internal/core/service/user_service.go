package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// UserService implements user listing and role assignment.
type UserService struct {
	users      ports.UserRepository
	warehouses ports.WarehouseRepository
	activity   ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewUserService(users ports.UserRepository, warehouses ports.WarehouseRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *UserService {
	return &UserService{users: users, warehouses: warehouses, activity: activity, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// AssignRole changes a user's role. The WAREHOUSE role must carry a warehouse
// that exists; every other role drops any warehouse assignment. The dashboard
// confirms the warehouse choice before submitting, so an incomplete request
// here means the client skipped that step.
func (s *UserService) AssignRole(ctx context.Context, input ports.AssignRoleInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	warehouseID := ""
	if input.Role == domain.RoleWarehouse {
		if input.WarehouseID == "" {
			return nil, domain.ErrWarehouseRequired
		}
		if _, err := s.warehouses.FindByID(ctx, input.WarehouseID); err != nil {
			return nil, err
		}
		warehouseID = input.WarehouseID
	}

	updated, err := s.users.UpdateRole(ctx, input.UserID, input.Role, warehouseID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Str("role", input.Role).Msg("role assignment failed")
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Str("role", updated.Role).Msg("role assigned")
	s.activity.Record(domain.ActivityEvent{
		Entity:   "user",
		EntityID: updated.ID,
		Action:   "assign_role",
		ActorID:  input.ActorID,
		At:       time.Now().UTC(),
	})
	return updated, nil
}
