package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// CatalogHandler handles the reference-data endpoints: categories, units,
// warehouses and shelves.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Kind        string `json:"kind" validate:"omitempty,oneof=material equipment"`
	Description string `json:"description"`
}

type warehouseRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
}

type shelfRequest struct {
	Label string `json:"label" validate:"required"`
}

type unitRequest struct {
	Name      string `json:"name" validate:"required"`
	Short     string `json:"short" validate:"required"`
	Available bool   `json:"available"`
}

// ListCategories handles GET /categories.
//
// @Summary      List warehouse sections
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Category
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []*domain.Category{}
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /categories/:id.
//
// @Summary      Get a warehouse section
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  errorResponse
// @Router       /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.service.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /categories.
//
// @Summary      Create a warehouse section
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Section details"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  errorResponse
// @Router       /categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
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

	category, err := h.service.CreateCategory(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Kind:        domain.CategoryKind(req.Kind),
		Description: req.Description,
		ActorID:     userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /categories/:id.
//
// @Summary      Update a warehouse section
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Category ID"
// @Param        body  body      categoryRequest  true  "Section details"
// @Success      200   {object}  domain.Category
// @Failure      404   {object}  errorResponse
// @Router       /categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
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

	category, err := h.service.UpdateCategory(c.Request().Context(), c.Param("id"), ports.CreateCategoryInput{
		Name:        req.Name,
		Kind:        domain.CategoryKind(req.Kind),
		Description: req.Description,
		ActorID:     userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /categories/:id.
//
// @Summary      Delete a warehouse section
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  string  true  "Category ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteCategory(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListUnits handles GET /units and GET /units/available.
//
// @Summary      List units of measure
// @Tags         units
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Unit
// @Router       /units [get]
func (h *CatalogHandler) ListUnits(c echo.Context) error {
	availableOnly := c.Path() == "/units/available"
	units, err := h.service.ListUnits(c.Request().Context(), availableOnly)
	if err != nil {
		return err
	}
	if units == nil {
		units = []*domain.Unit{}
	}
	return c.JSON(http.StatusOK, units)
}

// CreateUnit handles POST /units.
//
// @Summary      Create a unit of measure
// @Tags         units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      unitRequest  true  "Unit details"
// @Success      201   {object}  domain.Unit
// @Failure      400   {object}  errorResponse
// @Router       /units [post]
func (h *CatalogHandler) CreateUnit(c echo.Context) error {
	var req unitRequest
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

	unit, err := h.service.CreateUnit(c.Request().Context(), ports.CreateUnitInput{
		Name:      req.Name,
		Short:     req.Short,
		Available: req.Available,
		ActorID:   userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, unit)
}

// ListWarehouses handles GET /warehouses.
//
// @Summary      List warehouses
// @Tags         warehouses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Warehouse
// @Router       /warehouses [get]
func (h *CatalogHandler) ListWarehouses(c echo.Context) error {
	warehouses, err := h.service.ListWarehouses(c.Request().Context())
	if err != nil {
		return err
	}
	if warehouses == nil {
		warehouses = []*domain.Warehouse{}
	}
	return c.JSON(http.StatusOK, warehouses)
}

// GetWarehouse handles GET /warehouses/:id.
//
// @Summary      Get a warehouse
// @Tags         warehouses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Warehouse ID"
// @Success      200  {object}  domain.Warehouse
// @Failure      404  {object}  errorResponse
// @Router       /warehouses/{id} [get]
func (h *CatalogHandler) GetWarehouse(c echo.Context) error {
	warehouse, err := h.service.GetWarehouse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, warehouse)
}

// CreateWarehouse handles POST /warehouses.
//
// @Summary      Create a warehouse
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      warehouseRequest  true  "Warehouse details"
// @Success      201   {object}  domain.Warehouse
// @Failure      400   {object}  errorResponse
// @Router       /warehouses [post]
func (h *CatalogHandler) CreateWarehouse(c echo.Context) error {
	var req warehouseRequest
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

	warehouse, err := h.service.CreateWarehouse(c.Request().Context(), ports.CreateWarehouseInput{
		Name:    req.Name,
		Address: req.Address,
		ActorID: userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, warehouse)
}

// ListShelves handles GET /warehouses/:id/shelves.
//
// @Summary      List shelves of a warehouse
// @Tags         warehouses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Warehouse ID"
// @Success      200  {array}  domain.Shelf
// @Failure      404  {object}  errorResponse
// @Router       /warehouses/{id}/shelves [get]
func (h *CatalogHandler) ListShelves(c echo.Context) error {
	shelves, err := h.service.ListShelves(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if shelves == nil {
		shelves = []*domain.Shelf{}
	}
	return c.JSON(http.StatusOK, shelves)
}

// CreateShelf handles POST /warehouses/:id/shelves.
//
// @Summary      Add a shelf to a warehouse
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Warehouse ID"
// @Param        body  body      shelfRequest  true  "Shelf details"
// @Success      201   {object}  domain.Shelf
// @Failure      404   {object}  errorResponse
// @Router       /warehouses/{id}/shelves [post]
func (h *CatalogHandler) CreateShelf(c echo.Context) error {
	var req shelfRequest
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

	shelf, err := h.service.CreateShelf(c.Request().Context(), ports.CreateShelfInput{
		WarehouseID: c.Param("id"),
		Label:       req.Label,
		ActorID:     userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, shelf)
}
