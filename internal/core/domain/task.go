package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a production task.
type TaskStatus string

const (
	TaskCreated    TaskStatus = "created"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskCancelled  TaskStatus = "cancelled"
)

// validTaskTransitions defines the allowed state machine transitions.
var validTaskTransitions = map[TaskStatus][]TaskStatus{
	TaskCreated:    {TaskInProgress, TaskCancelled},
	TaskInProgress: {TaskDone, TaskCancelled},
}

var ErrTaskNotFound = errors.New("task not found")
var ErrWorkerNotFound = errors.New("worker not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, allowed := range validTaskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Task assigns the production of a passport position to a worker and machine.
type Task struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	PassportID string     `json:"passport_id" bson:"passport_id"`
	WorkerID   string     `json:"worker_id" bson:"worker_id"`
	MachineID  string     `json:"machine_id,omitempty" bson:"machine_id,omitempty"`
	Quantity   int        `json:"quantity" bson:"quantity"`
	Status     TaskStatus `json:"status" bson:"status"`
	DueDate    time.Time  `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" bson:"updated_at"`
}

// Worker is a shop-floor employee tasks can be assigned to.
type Worker struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	Position  string    `json:"position,omitempty" bson:"position,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
