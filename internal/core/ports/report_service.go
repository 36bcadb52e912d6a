package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// StockReport is the full stock report with grand totals.
type StockReport struct {
	Rows          []domain.StockRow `json:"rows"`
	TotalQuantity float64           `json:"total_quantity"`
	TotalValue    float64           `json:"total_value"`
}

// TaskReport is the task report: counts per status.
type TaskReport struct {
	Rows  []domain.TaskCountRow `json:"rows"`
	Total int64                 `json:"total"`
}

// ReportService builds the read-only report screens.
type ReportService interface {
	StockReport(ctx context.Context) (*StockReport, error)
	TaskReport(ctx context.Context) (*TaskReport, error)
}
