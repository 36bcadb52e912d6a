package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

type stubItemService struct {
	created *ports.CreateItemInput
	updated *ports.UpdateItemInput
	items   []*domain.Item
	err     error
}

func (s *stubItemService) CreateItem(_ context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &input
	return &domain.Item{
		ID:          "i1",
		Name:        input.Name,
		CategoryID:  input.CategoryID,
		UnitID:      input.UnitID,
		Quantity:    input.Quantity,
		Price:       input.Price,
		WarehouseID: input.WarehouseID,
		ShelfID:     input.ShelfID,
		Fields:      input.Fields,
	}, nil
}

func (s *stubItemService) GetItem(_ context.Context, _ string) (*domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.items) == 0 {
		return nil, domain.ErrItemNotFound
	}
	return s.items[0], nil
}

func (s *stubItemService) ListItems(_ context.Context, _ ports.ListItemsFilter) ([]*domain.Item, error) {
	return s.items, s.err
}

func (s *stubItemService) UpdateItem(_ context.Context, input ports.UpdateItemInput) (*domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated = &input
	return &domain.Item{ID: input.ID, Name: input.Name, Fields: input.Fields}, nil
}

func (s *stubItemService) DeleteItem(_ context.Context, _, _ string) error {
	return s.err
}

func authedContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newAuthTestContext(t, method, target, body)
	c.Set("user_id", "u1")
	c.Set("role", domain.RoleAdmin)
	return c, rec
}

func TestItemHandler_Create_FieldsRoundTrip(t *testing.T) {
	svc := &stubItemService{}
	h := NewItemHandler(svc)

	body := `{
		"name": "Фасад 600x300",
		"category_id": "c1",
		"quantity": 12,
		"price": 990.5,
		"fields": [
			{"key": "color", "value": "white"},
			{"key": "thickness", "value": "18mm"}
		]
	}`
	c, rec := authedContext(t, http.MethodPost, "/items", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var item domain.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(item.Fields) != 2 {
		t.Fatalf("expected both custom fields back, got %v", item.Fields)
	}
	if item.Fields[0].Key != "color" || item.Fields[0].Value != "white" {
		t.Fatalf("first field corrupted: %+v", item.Fields[0])
	}
	if item.Fields[1].Key != "thickness" || item.Fields[1].Value != "18mm" {
		t.Fatalf("second field corrupted: %+v", item.Fields[1])
	}
	if svc.created.ActorID != "u1" {
		t.Fatalf("actor must come from claims, got %q", svc.created.ActorID)
	}
}

func TestItemHandler_Create_EmptyName(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	c, rec := authedContext(t, http.MethodPost, "/items", `{"name":"","category_id":"c1"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty name must fail validation, got %d", rec.Code)
	}
}

func TestItemHandler_Create_FieldWithoutValue(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	body := `{"name":"n","category_id":"c1","fields":[{"key":"color","value":""}]}`
	c, rec := authedContext(t, http.MethodPost, "/items", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty field value must fail validation, got %d", rec.Code)
	}
}

func TestItemHandler_Create_Unauthenticated(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	c, _ := newAuthTestContext(t, http.MethodPost, "/items", `{"name":"n","category_id":"c1"}`)
	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestItemHandler_List_EmptyIsArray(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	c, rec := authedContext(t, http.MethodGet, "/items", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("empty list must serialize as [], got %q", got)
	}
}

func TestItemHandler_Update_PassesFilter(t *testing.T) {
	svc := &stubItemService{}
	h := NewItemHandler(svc)

	body := `{"name":"renamed","category_id":"c2","fields":[{"key":"color","value":"oak"}]}`
	c, rec := authedContext(t, http.MethodPut, "/items/i1", body)
	c.SetParamNames("id")
	c.SetParamValues("i1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updated.ID != "i1" || svc.updated.CategoryID != "c2" {
		t.Fatalf("unexpected update input: %+v", svc.updated)
	}
	if len(svc.updated.Fields) != 1 || svc.updated.Fields[0].Value != "oak" {
		t.Fatalf("fields not forwarded: %+v", svc.updated.Fields)
	}
}
