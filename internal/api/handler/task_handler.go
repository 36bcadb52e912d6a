package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/woodline/warehouse-system/internal/api/metrics"
	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// TaskHandler covers production tasks and the worker roster.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type taskRequest struct {
	PassportID string `json:"passport_id" validate:"required"`
	WorkerID   string `json:"worker_id" validate:"required"`
	MachineID  string `json:"machine_id"`
	Quantity   int    `json:"quantity" validate:"min=1"`
	DueDate    string `json:"due_date"`
}

type taskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=created in_progress done cancelled"`
}

// List handles GET /tasks.
//
// @Summary      List production tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Task
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create handles POST /tasks.
//
// @Summary      Assign a production task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	var dueDate time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "due_date must be RFC3339"})
		}
		dueDate = parsed
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	task, err := h.service.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		PassportID: req.PassportID,
		WorkerID:   req.WorkerID,
		MachineID:  req.MachineID,
		Quantity:   req.Quantity,
		DueDate:    dueDate,
		ActorID:    userID,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, task)
}

// UpdateStatus handles PATCH /tasks/:id/status.
//
// @Summary      Move a task along its status flow
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task ID"
// @Param        body  body      taskStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Task
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	var req taskStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	task, err := h.service.TransitionTask(c.Request().Context(), c.Param("id"), domain.TaskStatus(req.Status), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// ListWorkers handles GET /workers.
//
// @Summary      List workers
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Worker
// @Router       /workers [get]
func (h *TaskHandler) ListWorkers(c echo.Context) error {
	workers, err := h.service.ListWorkers(c.Request().Context())
	if err != nil {
		return err
	}
	if workers == nil {
		workers = []*domain.Worker{}
	}
	return c.JSON(http.StatusOK, workers)
}
