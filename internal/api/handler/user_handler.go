package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/woodline/warehouse-system/internal/api/metrics"
	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// UserHandler handles the users screen: listing and role assignment.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type assignRoleRequest struct {
	Role        string `json:"role" validate:"required,oneof=ADMIN WAREHOUSE SELLER USER"`
	WarehouseID string `json:"warehouse_id"`
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// AssignRole handles PATCH /users/:id/role. The WAREHOUSE role must carry a
// warehouse_id; the dashboard collects it through the selection popover
// before the request is ever sent.
//
// @Summary      Assign a role to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      assignRoleRequest  true  "Role assignment"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users/{id}/role [patch]
func (h *UserHandler) AssignRole(c echo.Context) error {
	var req assignRoleRequest
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

	updated, err := h.service.AssignRole(c.Request().Context(), ports.AssignRoleInput{
		UserID:      c.Param("id"),
		Role:        req.Role,
		WarehouseID: req.WarehouseID,
		ActorID:     userID,
	})
	if err != nil {
		return err
	}

	metrics.RoleAssignmentsTotal.WithLabelValues(updated.Role).Inc()
	return c.JSON(http.StatusOK, updated)
}
