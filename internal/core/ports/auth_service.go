package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// TokenPair is the credential pair handed to the client on login, register
// and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput carries the fields collected by the registration form.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService implements registration, login and credential validation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*TokenPair, *domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	// Validate checks an access token and returns the identity it belongs to.
	// Any failure (malformed, expired, revoked, unknown subject) yields
	// domain.ErrInvalidToken.
	Validate(ctx context.Context, accessToken string) (*domain.User, error)
	// Refresh exchanges a refresh token for a new pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, *domain.User, error)
	// Logout revokes the presented access token for its remaining lifetime.
	Logout(ctx context.Context, accessToken string) error
}
