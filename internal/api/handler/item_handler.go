package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/woodline/warehouse-system/internal/api/metrics"
	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// ItemHandler handles HTTP requests for inventory items.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

type itemFieldRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type itemRequest struct {
	Name        string             `json:"name" validate:"required"`
	CategoryID  string             `json:"category_id" validate:"required"`
	UnitID      string             `json:"unit_id"`
	Quantity    float64            `json:"quantity" validate:"min=0"`
	Price       float64            `json:"price" validate:"min=0"`
	WarehouseID string             `json:"warehouse_id"`
	ShelfID     string             `json:"shelf_id"`
	Fields      []itemFieldRequest `json:"fields" validate:"dive"`
}

func (r itemRequest) fields() []domain.ItemField {
	out := make([]domain.ItemField, len(r.Fields))
	for i, f := range r.Fields {
		out[i] = domain.ItemField{Key: f.Key, Value: f.Value}
	}
	return out
}

// List handles GET /items and GET /inventory.
//
// @Summary      List inventory items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Filter by category ID"
// @Param        search    query     string  false  "Partial match on name"
// @Success      200       {array}   domain.Item
// @Failure      401       {object}  errorResponse
// @Router       /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context(), ports.ListItemsFilter{
		CategoryID: c.QueryParam("category"),
		Search:     c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.Item{}
	}
	return c.JSON(http.StatusOK, items)
}

// ListByCategory handles GET /items/by-category/:cat.
//
// @Summary      List items in one category
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        cat  path      string  true  "Category ID"
// @Success      200  {array}   domain.Item
// @Failure      401  {object}  errorResponse
// @Router       /items/by-category/{cat} [get]
func (h *ItemHandler) ListByCategory(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context(), ports.ListItemsFilter{
		CategoryID: c.Param("cat"),
	})
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.Item{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /items/:id.
//
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  domain.Item
// @Failure      404  {object}  errorResponse
// @Router       /items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.service.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /items. The created item is returned in full so the
// table can append it without a reload.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      itemRequest  true  "Item details"
// @Success      201   {object}  domain.Item
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
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

	item, err := h.service.CreateItem(c.Request().Context(), ports.CreateItemInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		UnitID:      req.UnitID,
		Quantity:    req.Quantity,
		Price:       req.Price,
		WarehouseID: req.WarehouseID,
		ShelfID:     req.ShelfID,
		Fields:      req.fields(),
		ActorID:     userID,
	})
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /items/:id.
//
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Item ID"
// @Param        body  body      itemRequest  true  "Item details"
// @Success      200   {object}  domain.Item
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req itemRequest
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

	item, err := h.service.UpdateItem(c.Request().Context(), ports.UpdateItemInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		UnitID:      req.UnitID,
		Quantity:    req.Quantity,
		Price:       req.Price,
		WarehouseID: req.WarehouseID,
		ShelfID:     req.ShelfID,
		Fields:      req.fields(),
		ActorID:     userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /items/:id.
//
// @Summary      Delete an item
// @Tags         items
// @Security     BearerAuth
// @Param        id  path  string  true  "Item ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
