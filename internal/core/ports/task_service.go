package ports

import (
	"context"
	"time"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// CreateTaskInput carries the fields of the task-assignment modal.
type CreateTaskInput struct {
	PassportID string
	WorkerID   string
	MachineID  string
	Quantity   int
	DueDate    time.Time
	ActorID    string
}

// TaskService defines use-case operations for production tasks.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	// TransitionTask moves a task along its status machine; invalid
	// transitions fail with domain.ErrInvalidTransition.
	TransitionTask(ctx context.Context, id string, next domain.TaskStatus, actorID string) (*domain.Task, error)
	ListWorkers(ctx context.Context) ([]*domain.Worker, error)
}
