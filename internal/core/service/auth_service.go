package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// TokenRevoker abstracts the revoked-token store (Redis).
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// AuthService implements registration, login and credential validation.
type AuthService struct {
	repo       ports.UserRepository
	revoker    TokenRevoker
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(repo ports.UserRepository, revoker TokenRevoker, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		repo:       repo,
		revoker:    revoker,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates a new account with the USER role and logs it in.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.TokenPair, *domain.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.generatePair(created)
	if err != nil {
		return nil, nil, err
	}
	return pair, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.generatePair(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Validate resolves an access token to its identity. Every failure class is
// collapsed into ErrInvalidToken: the bootstrapper treats them all as log-out.
func (s *AuthService) Validate(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.parseToken(ctx, accessToken, tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	sub, _ := claims["sub"].(string)
	user, err := s.repo.FindByID(ctx, sub)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, *domain.User, error) {
	claims, err := s.parseToken(ctx, refreshToken, tokenTypeRefresh)
	if err != nil {
		return nil, nil, err
	}

	sub, _ := claims["sub"].(string)
	user, err := s.repo.FindByID(ctx, sub)
	if err != nil {
		return nil, nil, domain.ErrInvalidToken
	}

	pair, err := s.generatePair(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Logout revokes the token for its remaining lifetime. Revoking an already
// invalid token is not an error.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.parseToken(ctx, accessToken, tokenTypeAccess)
	if err != nil {
		return nil
	}

	jti, _ := claims["jti"].(string)
	exp, convErr := claims.GetExpirationTime()
	if jti == "" || convErr != nil || exp == nil {
		return nil
	}

	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, jti, ttl)
}

func (s *AuthService) parseToken(ctx context.Context, token, wantType string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != wantType {
		return nil, domain.ErrInvalidToken
	}

	if jti, _ := claims["jti"].(string); jti != "" && s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, jti)
		if err != nil || revoked {
			return nil, domain.ErrInvalidToken
		}
	}

	return claims, nil
}

func (s *AuthService) generatePair(user *domain.User) (*ports.TokenPair, error) {
	access, err := s.signToken(user, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) signToken(user *domain.User, typ string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":          user.ID,
		"role":         user.Role,
		"warehouse_id": user.WarehouseID,
		"typ":          typ,
		"jti":          newJTI(),
		"exp":          time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newJTI returns a random token identifier used for revocation.
func newJTI() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(b)
}
