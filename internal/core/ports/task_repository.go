package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// TaskRepository defines persistence operations for production tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	// CountByStatus aggregates task counts per status for the task report.
	CountByStatus(ctx context.Context) ([]domain.TaskCountRow, error)
}

// WorkerRepository defines persistence operations for workers.
type WorkerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
}
