package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

const maxNomenclatureLimit = 50

// NomenclatureCache abstracts the short-lived autocomplete cache (Redis).
type NomenclatureCache interface {
	Get(ctx context.Context, filter ports.NomenclatureFilter) ([]domain.NomenclatureEntry, bool)
	Set(ctx context.Context, filter ports.NomenclatureFilter, entries []domain.NomenclatureEntry)
}

// PassportService implements the manufacturing-metadata screens.
type PassportService struct {
	passports  ports.PassportRepository
	operations ports.OperationRepository
	profiles   ports.ProfileRepository
	machines   ports.MachineRepository
	cache      NomenclatureCache
	activity   ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewPassportService(
	passports ports.PassportRepository,
	operations ports.OperationRepository,
	profiles ports.ProfileRepository,
	machines ports.MachineRepository,
	cache NomenclatureCache,
	activity ports.ActivityRecorder,
	logger zerolog.Logger,
) *PassportService {
	return &PassportService{
		passports:  passports,
		operations: operations,
		profiles:   profiles,
		machines:   machines,
		cache:      cache,
		activity:   activity,
		logger:     logger,
	}
}

func (s *PassportService) CreatePassport(ctx context.Context, input ports.CreatePassportInput) (*domain.Passport, error) {
	created, err := s.passports.Create(ctx, &domain.Passport{
		Code:         input.Code,
		Name:         input.Name,
		Type:         input.Type,
		ProfileID:    input.ProfileID,
		OperationIDs: input.OperationIDs,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("code", input.Code).Msg("failed to create passport")
		return nil, err
	}

	s.logger.Info().Str("passport_id", created.ID).Str("code", created.Code).Msg("passport created")
	s.activity.Record(domain.ActivityEvent{
		Entity:   "passport",
		EntityID: created.ID,
		Action:   "create",
		ActorID:  input.ActorID,
		At:       created.CreatedAt,
	})
	return created, nil
}

func (s *PassportService) GetPassport(ctx context.Context, id string) (*domain.Passport, error) {
	return s.passports.FindByID(ctx, id)
}

func (s *PassportService) ListPassports(ctx context.Context) ([]*domain.Passport, error) {
	return s.passports.List(ctx)
}

func (s *PassportService) CreateOperation(ctx context.Context, input ports.CreateOperationInput) (*domain.Operation, error) {
	created, err := s.operations.Create(ctx, &domain.Operation{
		Name:        input.Name,
		MachineID:   input.MachineID,
		DurationMin: input.DurationMin,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		Entity:   "operation",
		EntityID: created.ID,
		Action:   "create",
		ActorID:  input.ActorID,
		At:       created.CreatedAt,
	})
	return created, nil
}

func (s *PassportService) ListOperations(ctx context.Context) ([]*domain.Operation, error) {
	return s.operations.List(ctx)
}

func (s *PassportService) CreateProfile(ctx context.Context, input ports.CreateProfileInput) (*domain.Profile, error) {
	created, err := s.profiles.Create(ctx, &domain.Profile{
		Name:      input.Name,
		Material:  input.Material,
		SizeMM:    input.SizeMM,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		Entity:   "profile",
		EntityID: created.ID,
		Action:   "create",
		ActorID:  input.ActorID,
		At:       created.CreatedAt,
	})
	return created, nil
}

func (s *PassportService) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *PassportService) ListMachines(ctx context.Context) ([]*domain.Machine, error) {
	return s.machines.List(ctx)
}

// SearchNomenclature serves the autocomplete. The limit is capped; identical
// queries within the cache TTL are answered without touching the database.
func (s *PassportService) SearchNomenclature(ctx context.Context, filter ports.NomenclatureFilter) ([]domain.NomenclatureEntry, error) {
	if filter.Limit <= 0 || filter.Limit > maxNomenclatureLimit {
		filter.Limit = maxNomenclatureLimit
	}

	if s.cache != nil {
		if entries, ok := s.cache.Get(ctx, filter); ok {
			return entries, nil
		}
	}

	entries, err := s.passports.SearchNomenclature(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, filter, entries)
	}
	return entries, nil
}
