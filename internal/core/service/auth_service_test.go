package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role, warehouseID string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	u.WarehouseID = warehouseID
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

type stubRevoker struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]bool)}
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = true
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[jti], nil
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Email:     "alice@example.com",
		Password:  "pass123",
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour, 24*time.Hour)

	pair, user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if pair == nil || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a full token pair, got %+v", pair)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("new accounts must start as USER, got %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, 24*time.Hour)

	cases := []ports.RegisterInput{
		{},
		{Email: "a@b.c", Password: "p", FirstName: "A"},
		{Email: "a@b.c", FirstName: "A", LastName: "B"},
	}
	for _, input := range cases {
		if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %+v, got %v", input, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, 24*time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, 24*time.Hour)
	if _, _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Validate_RoundTrip(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, 24*time.Hour)
	pair, created, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Validate(context.Background(), pair.AccessToken)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, user.ID)
	}
}

func TestAuthService_Validate_RejectsRefreshToken(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, 24*time.Hour)
	pair, _, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Validate(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for refresh token, got %v", err)
	}
}

func TestAuthService_Validate_Garbage(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, 24*time.Hour)
	if _, err := svc.Validate(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, 24*time.Hour)
	pair, _, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(context.Background(), pair.AccessToken); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := svc.Validate(context.Background(), pair.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected revoked token to be invalid, got %v", err)
	}
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, 24*time.Hour)
	if err := svc.Logout(context.Background(), "junk"); err != nil {
		t.Fatalf("expected nil for invalid token, got %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, 24*time.Hour)
	pair, created, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	next, user, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, user.ID)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatalf("expected a fresh pair, got %+v", next)
	}

	if _, _, err := svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected access token to be rejected by Refresh, got %v", err)
	}
}
