package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// MenuHandler serves the role-filtered navigation tree.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

type menuResponse struct {
	Entries []domain.MenuEntry `json:"entries"`
	Active  string             `json:"active,omitempty"`
}

// Get handles GET /menu?path= — the entries visible to the caller's role,
// with the active entry resolved when a route path is supplied.
//
// @Summary      Navigation menu for the current role
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        path  query     string  false  "Current route path for active-item detection"
// @Success      200   {object}  menuResponse
// @Failure      401   {object}  errorResponse
// @Router       /menu [get]
func (h *MenuHandler) Get(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	resp := menuResponse{Entries: h.service.VisibleEntries(role)}
	if path := c.QueryParam("path"); path != "" {
		resp.Active = h.service.ActivePath(role, path)
	}
	if resp.Entries == nil {
		resp.Entries = []domain.MenuEntry{}
	}
	return c.JSON(http.StatusOK, resp)
}
