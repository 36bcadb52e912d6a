package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

type stubTaskRepo struct {
	tasks  map[string]*domain.Task
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.nextID++
	clone := *t
	clone.ID = fmt.Sprintf("task-%d", r.nextID)
	r.tasks[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) List(_ context.Context) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTaskRepo) UpdateStatus(_ context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) CountByStatus(_ context.Context) ([]domain.TaskCountRow, error) {
	counts := make(map[domain.TaskStatus]int64)
	for _, t := range r.tasks {
		counts[t.Status]++
	}
	out := make([]domain.TaskCountRow, 0, len(counts))
	for status, n := range counts {
		out = append(out, domain.TaskCountRow{Status: status, Count: n})
	}
	return out, nil
}

type stubWorkerRepo struct {
	workers map[string]*domain.Worker
}

func newStubWorkerRepo(ids ...string) *stubWorkerRepo {
	r := &stubWorkerRepo{workers: make(map[string]*domain.Worker)}
	for _, id := range ids {
		r.workers[id] = &domain.Worker{ID: id, FirstName: "worker", LastName: id}
	}
	return r
}

func (r *stubWorkerRepo) FindByID(_ context.Context, id string) (*domain.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, domain.ErrWorkerNotFound
	}
	return w, nil
}

func (r *stubWorkerRepo) List(_ context.Context) ([]*domain.Worker, error) {
	out := make([]*domain.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		out = append(out, w)
	}
	return out, nil
}

type stubPassportRepo struct {
	passports map[string]*domain.Passport
}

func newStubPassportRepo(ids ...string) *stubPassportRepo {
	r := &stubPassportRepo{passports: make(map[string]*domain.Passport)}
	for _, id := range ids {
		r.passports[id] = &domain.Passport{ID: id, Code: "P-" + id}
	}
	return r
}

func (r *stubPassportRepo) Create(_ context.Context, p *domain.Passport) (*domain.Passport, error) {
	r.passports[p.ID] = p
	return p, nil
}

func (r *stubPassportRepo) FindByID(_ context.Context, id string) (*domain.Passport, error) {
	p, ok := r.passports[id]
	if !ok {
		return nil, domain.ErrPassportNotFound
	}
	return p, nil
}

func (r *stubPassportRepo) List(_ context.Context) ([]*domain.Passport, error) {
	out := make([]*domain.Passport, 0, len(r.passports))
	for _, p := range r.passports {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPassportRepo) SearchNomenclature(_ context.Context, _ ports.NomenclatureFilter) ([]domain.NomenclatureEntry, error) {
	return nil, nil
}

func newTaskService(tasks *stubTaskRepo, recorder *recorderStub) *TaskService {
	return NewTaskService(tasks, newStubWorkerRepo("wk1"), newStubPassportRepo("pp1"), recorder, zerolog.Nop())
}

func TestTaskService_CreateTask(t *testing.T) {
	tasks := newStubTaskRepo()
	recorder := &recorderStub{}
	svc := newTaskService(tasks, recorder)

	created, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{
		PassportID: "pp1",
		WorkerID:   "wk1",
		Quantity:   10,
		ActorID:    "admin-1",
	})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	if created.Status != domain.TaskCreated {
		t.Fatalf("new tasks must start as created, got %s", created.Status)
	}
	if recorder.count() != 1 {
		t.Fatalf("expected one activity event, got %d", recorder.count())
	}
}

func TestTaskService_CreateTask_UnknownWorker(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), &recorderStub{})

	_, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{
		PassportID: "pp1",
		WorkerID:   "ghost",
		Quantity:   1,
	})
	if !errors.Is(err, domain.ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}
}

func TestTaskService_CreateTask_UnknownPassport(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), &recorderStub{})

	_, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{
		PassportID: "ghost",
		WorkerID:   "wk1",
		Quantity:   1,
	})
	if !errors.Is(err, domain.ErrPassportNotFound) {
		t.Fatalf("expected ErrPassportNotFound, got %v", err)
	}
}

func TestTaskService_Transitions(t *testing.T) {
	tasks := newStubTaskRepo()
	svc := newTaskService(tasks, &recorderStub{})

	created, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{
		PassportID: "pp1", WorkerID: "wk1", Quantity: 1,
	})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	// created -> done skips in_progress and must be rejected.
	if _, err := svc.TransitionTask(context.Background(), created.ID, domain.TaskDone, "u1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	task, err := svc.TransitionTask(context.Background(), created.ID, domain.TaskInProgress, "u1")
	if err != nil {
		t.Fatalf("created -> in_progress failed: %v", err)
	}
	if task.Status != domain.TaskInProgress {
		t.Fatalf("unexpected status %s", task.Status)
	}

	if _, err := svc.TransitionTask(context.Background(), created.ID, domain.TaskDone, "u1"); err != nil {
		t.Fatalf("in_progress -> done failed: %v", err)
	}

	// done is terminal.
	if _, err := svc.TransitionTask(context.Background(), created.ID, domain.TaskCancelled, "u1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected terminal state, got %v", err)
	}
}

func TestTaskService_Transition_UnknownTask(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), &recorderStub{})
	if _, err := svc.TransitionTask(context.Background(), "nope", domain.TaskInProgress, "u1"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
