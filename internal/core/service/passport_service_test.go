package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

type countingPassportRepo struct {
	stubPassportRepo
	searches int
	entries  []domain.NomenclatureEntry
	lastSeen ports.NomenclatureFilter
}

func (r *countingPassportRepo) SearchNomenclature(_ context.Context, filter ports.NomenclatureFilter) ([]domain.NomenclatureEntry, error) {
	r.searches++
	r.lastSeen = filter
	return r.entries, nil
}

type mapCache struct {
	values map[ports.NomenclatureFilter][]domain.NomenclatureEntry
	hits   int
}

func newMapCache() *mapCache {
	return &mapCache{values: make(map[ports.NomenclatureFilter][]domain.NomenclatureEntry)}
}

func (c *mapCache) Get(_ context.Context, filter ports.NomenclatureFilter) ([]domain.NomenclatureEntry, bool) {
	entries, ok := c.values[filter]
	if ok {
		c.hits++
	}
	return entries, ok
}

func (c *mapCache) Set(_ context.Context, filter ports.NomenclatureFilter, entries []domain.NomenclatureEntry) {
	c.values[filter] = entries
}

type stubOperationRepo struct{}

func (stubOperationRepo) Create(_ context.Context, op *domain.Operation) (*domain.Operation, error) {
	clone := *op
	clone.ID = "op-1"
	return &clone, nil
}

func (stubOperationRepo) List(_ context.Context) ([]*domain.Operation, error) { return nil, nil }

type stubProfileRepo struct{}

func (stubProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	clone := *p
	clone.ID = "pf-1"
	return &clone, nil
}

func (stubProfileRepo) List(_ context.Context) ([]*domain.Profile, error) { return nil, nil }

type stubMachineRepo struct{}

func (stubMachineRepo) List(_ context.Context) ([]*domain.Machine, error) {
	return []*domain.Machine{{ID: "m1", Name: "CNC"}}, nil
}

func newPassportService(repo *countingPassportRepo, cache NomenclatureCache) *PassportService {
	return NewPassportService(repo, stubOperationRepo{}, stubProfileRepo{}, stubMachineRepo{}, cache, &recorderStub{}, zerolog.Nop())
}

func TestPassportService_SearchNomenclature_CapsLimit(t *testing.T) {
	repo := &countingPassportRepo{stubPassportRepo: *newStubPassportRepo()}
	svc := newPassportService(repo, nil)

	if _, err := svc.SearchNomenclature(context.Background(), ports.NomenclatureFilter{Limit: 10_000}); err != nil {
		t.Fatalf("SearchNomenclature returned error: %v", err)
	}
	if repo.lastSeen.Limit != maxNomenclatureLimit {
		t.Fatalf("expected limit capped to %d, got %d", maxNomenclatureLimit, repo.lastSeen.Limit)
	}

	if _, err := svc.SearchNomenclature(context.Background(), ports.NomenclatureFilter{}); err != nil {
		t.Fatalf("SearchNomenclature returned error: %v", err)
	}
	if repo.lastSeen.Limit != maxNomenclatureLimit {
		t.Fatalf("expected default limit %d, got %d", maxNomenclatureLimit, repo.lastSeen.Limit)
	}
}

func TestPassportService_SearchNomenclature_CacheAside(t *testing.T) {
	repo := &countingPassportRepo{
		stubPassportRepo: *newStubPassportRepo(),
		entries:          []domain.NomenclatureEntry{{ID: "n1", Code: "F-100", Name: "Фасад"}},
	}
	cache := newMapCache()
	svc := newPassportService(repo, cache)

	filter := ports.NomenclatureFilter{Search: "фас", Limit: 5}
	first, err := svc.SearchNomenclature(context.Background(), filter)
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	second, err := svc.SearchNomenclature(context.Background(), filter)
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}

	if repo.searches != 1 {
		t.Fatalf("expected one repository hit, got %d", repo.searches)
	}
	if cache.hits != 1 {
		t.Fatalf("expected one cache hit, got %d", cache.hits)
	}
	if len(first) != 1 || len(second) != 1 || second[0].ID != "n1" {
		t.Fatalf("cache must return the same entries, got %v then %v", first, second)
	}
}

func TestPassportService_CreatePassport_RecordsActivity(t *testing.T) {
	repo := &countingPassportRepo{stubPassportRepo: *newStubPassportRepo()}
	recorder := &recorderStub{}
	svc := NewPassportService(repo, stubOperationRepo{}, stubProfileRepo{}, stubMachineRepo{}, nil, recorder, zerolog.Nop())

	created, err := svc.CreatePassport(context.Background(), ports.CreatePassportInput{
		Code:    "P-001",
		Name:    "Фасад 600x300",
		Type:    "facade",
		ActorID: "u1",
	})
	if err != nil {
		t.Fatalf("CreatePassport returned error: %v", err)
	}
	if created.Code != "P-001" {
		t.Fatalf("unexpected code %q", created.Code)
	}
	if recorder.count() != 1 {
		t.Fatalf("expected one activity event, got %d", recorder.count())
	}
}
