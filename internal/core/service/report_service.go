package service

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/ports"
)

// ReportService builds the read-only report screens from repository
// aggregations.
type ReportService struct {
	items ports.ItemRepository
	tasks ports.TaskRepository
}

func NewReportService(items ports.ItemRepository, tasks ports.TaskRepository) *ReportService {
	return &ReportService{items: items, tasks: tasks}
}

func (s *ReportService) StockReport(ctx context.Context) (*ports.StockReport, error) {
	rows, err := s.items.StockByCategory(ctx)
	if err != nil {
		return nil, err
	}

	report := &ports.StockReport{Rows: rows}
	for _, row := range rows {
		report.TotalQuantity += row.Quantity
		report.TotalValue += row.Value
	}
	return report, nil
}

func (s *ReportService) TaskReport(ctx context.Context) (*ports.TaskReport, error) {
	rows, err := s.tasks.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	report := &ports.TaskReport{Rows: rows}
	for _, row := range rows {
		report.Total += row.Count
	}
	return report, nil
}
