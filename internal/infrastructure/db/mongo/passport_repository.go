package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

const (
	passportsCollection  = "passports"
	machinesCollection   = "machines"
	operationsCollection = "operations"
	profilesCollection   = "profiles"
)

// PassportRepository persists tech-cards and serves the nomenclature search.
type PassportRepository struct {
	coll *mongo.Collection
}

func NewPassportRepository(db *mongo.Database) *PassportRepository {
	return &PassportRepository{coll: db.Collection(passportsCollection)}
}

func (r *PassportRepository) Create(ctx context.Context, p *domain.Passport) (*domain.Passport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert passport: %w", err)
	}
	return p, nil
}

func (r *PassportRepository) FindByID(ctx context.Context, id string) (*domain.Passport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Passport
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPassportNotFound
		}
		return nil, fmt.Errorf("find passport: %w", err)
	}
	return &p, nil
}

func (r *PassportRepository) List(ctx context.Context) ([]*domain.Passport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list passports: %w", err)
	}
	defer cur.Close(ctx)

	var list []*domain.Passport
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode passports: %w", err)
	}
	return list, nil
}

// SearchNomenclature serves the autocomplete: case-insensitive substring
// match on name or code, optionally narrowed by type.
func (r *PassportRepository) SearchNomenclature(ctx context.Context, filter ports.NomenclatureFilter) ([]domain.NomenclatureEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": searchRegex(filter.Search)},
			bson.M{"code": searchRegex(filter.Search)},
		}
	}

	opts := options.Find().
		SetLimit(int64(filter.Limit)).
		SetProjection(bson.M{"code": 1, "name": 1, "type": 1})

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("search nomenclature: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.NomenclatureEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode nomenclature: %w", err)
	}
	return entries, nil
}

// EnsureIndexes creates the search indexes on the passports collection.
func (r *PassportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// MachineRepository persists production machines.
type MachineRepository struct {
	coll *mongo.Collection
}

func NewMachineRepository(db *mongo.Database) *MachineRepository {
	return &MachineRepository{coll: db.Collection(machinesCollection)}
}

func (r *MachineRepository) List(ctx context.Context) ([]*domain.Machine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer cur.Close(ctx)

	var list []*domain.Machine
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode machines: %w", err)
	}
	return list, nil
}

// OperationRepository persists manufacturing operations.
type OperationRepository struct {
	coll *mongo.Collection
}

func NewOperationRepository(db *mongo.Database) *OperationRepository {
	return &OperationRepository{coll: db.Collection(operationsCollection)}
}

func (r *OperationRepository) Create(ctx context.Context, op *domain.Operation) (*domain.Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	op.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, op); err != nil {
		return nil, fmt.Errorf("insert operation: %w", err)
	}
	return op, nil
}

func (r *OperationRepository) List(ctx context.Context) ([]*domain.Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer cur.Close(ctx)

	var list []*domain.Operation
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode operations: %w", err)
	}
	return list, nil
}

// ProfileRepository persists material profiles.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	var list []*domain.Profile
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return list, nil
}
