package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

type recorderStub struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (r *recorderStub) Record(event domain.ActivityEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorderStub) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

type stubWarehouseRepo struct {
	warehouses map[string]*domain.Warehouse
}

func newStubWarehouseRepo(ids ...string) *stubWarehouseRepo {
	r := &stubWarehouseRepo{warehouses: make(map[string]*domain.Warehouse)}
	for _, id := range ids {
		r.warehouses[id] = &domain.Warehouse{ID: id, Name: "wh " + id}
	}
	return r
}

func (r *stubWarehouseRepo) Create(_ context.Context, w *domain.Warehouse) (*domain.Warehouse, error) {
	r.warehouses[w.ID] = w
	return w, nil
}

func (r *stubWarehouseRepo) FindByID(_ context.Context, id string) (*domain.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, domain.ErrWarehouseNotFound
	}
	return w, nil
}

func (r *stubWarehouseRepo) List(_ context.Context) ([]*domain.Warehouse, error) {
	out := make([]*domain.Warehouse, 0, len(r.warehouses))
	for _, w := range r.warehouses {
		out = append(out, w)
	}
	return out, nil
}

func (r *stubWarehouseRepo) CreateShelf(_ context.Context, s *domain.Shelf) (*domain.Shelf, error) {
	return s, nil
}

func (r *stubWarehouseRepo) ListShelves(_ context.Context, _ string) ([]*domain.Shelf, error) {
	return nil, nil
}

func seedUser(t *testing.T, repo *stubUserRepo) *domain.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.User{
		Email: "bob@example.com",
		Role:  domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUserService_AssignRole_WarehouseNeedsSelection(t *testing.T) {
	users := newStubUserRepo()
	target := seedUser(t, users)
	recorder := &recorderStub{}
	svc := NewUserService(users, newStubWarehouseRepo("w1"), recorder, zerolog.Nop())

	_, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID: target.ID,
		Role:   domain.RoleWarehouse,
	})
	if !errors.Is(err, domain.ErrWarehouseRequired) {
		t.Fatalf("expected ErrWarehouseRequired, got %v", err)
	}
	if recorder.count() != 0 {
		t.Fatalf("rejected assignment must not be recorded")
	}
}

func TestUserService_AssignRole_WarehouseMustExist(t *testing.T) {
	users := newStubUserRepo()
	target := seedUser(t, users)
	svc := NewUserService(users, newStubWarehouseRepo("w1"), &recorderStub{}, zerolog.Nop())

	_, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID:      target.ID,
		Role:        domain.RoleWarehouse,
		WarehouseID: "missing",
	})
	if !errors.Is(err, domain.ErrWarehouseNotFound) {
		t.Fatalf("expected ErrWarehouseNotFound, got %v", err)
	}
}

func TestUserService_AssignRole_Warehouse(t *testing.T) {
	users := newStubUserRepo()
	target := seedUser(t, users)
	recorder := &recorderStub{}
	svc := NewUserService(users, newStubWarehouseRepo("w1"), recorder, zerolog.Nop())

	updated, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID:      target.ID,
		Role:        domain.RoleWarehouse,
		WarehouseID: "w1",
		ActorID:     "admin-1",
	})
	if err != nil {
		t.Fatalf("AssignRole returned error: %v", err)
	}
	if updated.Role != domain.RoleWarehouse || updated.WarehouseID != "w1" {
		t.Fatalf("unexpected result: role=%s warehouse=%s", updated.Role, updated.WarehouseID)
	}
	if recorder.count() != 1 {
		t.Fatalf("expected one activity event, got %d", recorder.count())
	}
}

func TestUserService_AssignRole_OtherRolesClearWarehouse(t *testing.T) {
	users := newStubUserRepo()
	target := seedUser(t, users)
	svc := NewUserService(users, newStubWarehouseRepo("w1"), &recorderStub{}, zerolog.Nop())

	if _, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID: target.ID, Role: domain.RoleWarehouse, WarehouseID: "w1",
	}); err != nil {
		t.Fatalf("warehouse assignment failed: %v", err)
	}

	updated, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID: target.ID,
		Role:   domain.RoleSeller,
	})
	if err != nil {
		t.Fatalf("AssignRole returned error: %v", err)
	}
	if updated.WarehouseID != "" {
		t.Fatalf("warehouse assignment must be dropped, got %q", updated.WarehouseID)
	}
}

func TestUserService_AssignRole_InvalidRole(t *testing.T) {
	users := newStubUserRepo()
	target := seedUser(t, users)
	svc := NewUserService(users, newStubWarehouseRepo(), &recorderStub{}, zerolog.Nop())

	if _, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID: target.ID,
		Role:   "OWNER",
	}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
