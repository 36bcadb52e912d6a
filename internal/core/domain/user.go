package domain

import (
	"errors"
	"time"
)

// Role values mirror the dashboard's access levels.
const (
	RoleAdmin     = "ADMIN"
	RoleWarehouse = "WAREHOUSE"
	RoleSeller    = "SELLER"
	RoleUser      = "USER"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleWarehouse, RoleSeller, RoleUser:
		return true
	}
	return false
}

var ErrInvalidRole = errors.New("invalid role")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")

// ErrWarehouseRequired is returned when the WAREHOUSE role is assigned
// without a warehouse to scope it to.
var ErrWarehouseRequired = errors.New("warehouse role requires a warehouse")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Role         string    `json:"role"`
	WarehouseID  string    `json:"warehouse_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
