package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

const (
	tasksCollection   = "tasks"
	workersCollection = "workers"
)

// TaskRepository persists production tasks.
type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(tasksCollection)}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	t.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Task
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	var list []*domain.Task
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return list, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

// CountByStatus aggregates task counts per status for the task report.
func (r *TaskRepository) CountByStatus(ctx context.Context) ([]domain.TaskCountRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("task aggregation: %w", err)
	}
	defer cur.Close(ctx)

	var rows []domain.TaskCountRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode task rows: %w", err)
	}
	return rows, nil
}

// WorkerRepository persists shop-floor workers.
type WorkerRepository struct {
	coll *mongo.Collection
}

func NewWorkerRepository(db *mongo.Database) *WorkerRepository {
	return &WorkerRepository{coll: db.Collection(workersCollection)}
}

func (r *WorkerRepository) FindByID(ctx context.Context, id string) (*domain.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.Worker
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("find worker: %w", err)
	}
	return &w, nil
}

func (r *WorkerRepository) List(ctx context.Context) ([]*domain.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer cur.Close(ctx)

	var list []*domain.Worker
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode workers: %w", err)
	}
	return list, nil
}
