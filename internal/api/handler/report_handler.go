package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/woodline/warehouse-system/internal/core/ports"
)

// ReportHandler serves the read-only report screens.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Stock handles GET /reports/stock.
//
// @Summary      Stock report grouped by section
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.StockReport
// @Router       /reports/stock [get]
func (h *ReportHandler) Stock(c echo.Context) error {
	report, err := h.service.StockReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Tasks handles GET /reports/tasks.
//
// @Summary      Task counts per status
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.TaskReport
// @Router       /reports/tasks [get]
func (h *ReportHandler) Tasks(c echo.Context) error {
	report, err := h.service.TaskReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
