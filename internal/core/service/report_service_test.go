package service

import (
	"context"
	"testing"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

type stubItemRepo struct {
	stock []domain.StockRow
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	return item, nil
}

func (r *stubItemRepo) FindByID(_ context.Context, _ string) (*domain.Item, error) {
	return nil, domain.ErrItemNotFound
}

func (r *stubItemRepo) List(_ context.Context, _ ports.ListItemsFilter) ([]*domain.Item, error) {
	return nil, nil
}

func (r *stubItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	return item, nil
}

func (r *stubItemRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *stubItemRepo) StockByCategory(_ context.Context) ([]domain.StockRow, error) {
	return r.stock, nil
}

func TestReportService_StockReport_Totals(t *testing.T) {
	items := &stubItemRepo{stock: []domain.StockRow{
		{CategoryID: "c1", CategoryName: "ЛДСП", Positions: 3, Quantity: 120, Value: 45_000},
		{CategoryID: "c2", CategoryName: "Фурнитура", Positions: 10, Quantity: 800, Value: 12_500},
	}}
	svc := NewReportService(items, newStubTaskRepo())

	report, err := svc.StockReport(context.Background())
	if err != nil {
		t.Fatalf("StockReport returned error: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}
	if report.TotalQuantity != 920 {
		t.Fatalf("expected total quantity 920, got %v", report.TotalQuantity)
	}
	if report.TotalValue != 57_500 {
		t.Fatalf("expected total value 57500, got %v", report.TotalValue)
	}
}

func TestReportService_TaskReport_Totals(t *testing.T) {
	tasks := newStubTaskRepo()
	for i := 0; i < 3; i++ {
		if _, err := tasks.Create(context.Background(), &domain.Task{Status: domain.TaskCreated}); err != nil {
			t.Fatalf("seed task: %v", err)
		}
	}
	if _, err := tasks.Create(context.Background(), &domain.Task{Status: domain.TaskDone}); err != nil {
		t.Fatalf("seed task: %v", err)
	}

	svc := NewReportService(&stubItemRepo{}, tasks)
	report, err := svc.TaskReport(context.Background())
	if err != nil {
		t.Fatalf("TaskReport returned error: %v", err)
	}
	if report.Total != 4 {
		t.Fatalf("expected 4 tasks in total, got %d", report.Total)
	}
}
