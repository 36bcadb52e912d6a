package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// TaskService implements task creation and status transitions.
type TaskService struct {
	tasks     ports.TaskRepository
	workers   ports.WorkerRepository
	passports ports.PassportRepository
	activity  ports.ActivityRecorder
	logger    zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, workers ports.WorkerRepository, passports ports.PassportRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, workers: workers, passports: passports, activity: activity, logger: logger}
}

func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if _, err := s.passports.FindByID(ctx, input.PassportID); err != nil {
		return nil, err
	}
	if _, err := s.workers.FindByID(ctx, input.WorkerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		PassportID: input.PassportID,
		WorkerID:   input.WorkerID,
		MachineID:  input.MachineID,
		Quantity:   input.Quantity,
		Status:     domain.TaskCreated,
		DueDate:    input.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("passport_id", input.PassportID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("worker_id", created.WorkerID).Msg("task created")
	s.activity.Record(domain.ActivityEvent{
		Entity:   "task",
		EntityID: created.ID,
		Action:   "create",
		ActorID:  input.ActorID,
		At:       now,
	})
	return created, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

// TransitionTask moves a task along its status machine.
func (s *TaskService) TransitionTask(ctx context.Context, id string, next domain.TaskStatus, actorID string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !task.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.tasks.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		Entity:   "task",
		EntityID: updated.ID,
		Action:   "status_" + string(next),
		ActorID:  actorID,
		At:       time.Now().UTC(),
	})
	return updated, nil
}

func (s *TaskService) ListWorkers(ctx context.Context) ([]*domain.Worker, error) {
	return s.workers.List(ctx)
}
