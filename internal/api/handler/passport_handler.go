package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/ports"
)

// PassportHandler covers the production screens: tech-cards (passports),
// operations, profiles, machines and the nomenclature autocomplete.
type PassportHandler struct {
	service ports.PassportService
}

func NewPassportHandler(service ports.PassportService) *PassportHandler {
	return &PassportHandler{service: service}
}

type passportRequest struct {
	Code         string   `json:"code" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	ProfileID    string   `json:"profile_id"`
	OperationIDs []string `json:"operation_ids"`
}

type operationRequest struct {
	Name        string `json:"name" validate:"required"`
	MachineID   string `json:"machine_id"`
	DurationMin int    `json:"duration_min" validate:"min=0"`
}

type profileRequest struct {
	Name     string `json:"name" validate:"required"`
	Material string `json:"material"`
	SizeMM   string `json:"size_mm"`
}

// ListPassports handles GET /passports and GET /tech-cards.
//
// @Summary      List tech-cards
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Passport
// @Router       /passports [get]
func (h *PassportHandler) ListPassports(c echo.Context) error {
	passports, err := h.service.ListPassports(c.Request().Context())
	if err != nil {
		return err
	}
	if passports == nil {
		passports = []*domain.Passport{}
	}
	return c.JSON(http.StatusOK, passports)
}

// GetPassport handles GET /passports/:id.
//
// @Summary      Get a tech-card
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Passport ID"
// @Success      200  {object}  domain.Passport
// @Failure      404  {object}  errorResponse
// @Router       /passports/{id} [get]
func (h *PassportHandler) GetPassport(c echo.Context) error {
	passport, err := h.service.GetPassport(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, passport)
}

// CreatePassport handles POST /passports.
//
// @Summary      Create a tech-card
// @Tags         production
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      passportRequest  true  "Tech-card details"
// @Success      201   {object}  domain.Passport
// @Failure      400   {object}  errorResponse
// @Router       /passports [post]
func (h *PassportHandler) CreatePassport(c echo.Context) error {
	var req passportRequest
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

	passport, err := h.service.CreatePassport(c.Request().Context(), ports.CreatePassportInput{
		Code:         req.Code,
		Name:         req.Name,
		Type:         req.Type,
		ProfileID:    req.ProfileID,
		OperationIDs: req.OperationIDs,
		ActorID:      userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, passport)
}

// ListOperations handles GET /operations.
//
// @Summary      List manufacturing operations
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Operation
// @Router       /operations [get]
func (h *PassportHandler) ListOperations(c echo.Context) error {
	operations, err := h.service.ListOperations(c.Request().Context())
	if err != nil {
		return err
	}
	if operations == nil {
		operations = []*domain.Operation{}
	}
	return c.JSON(http.StatusOK, operations)
}

// CreateOperation handles POST /operations.
//
// @Summary      Create a manufacturing operation
// @Tags         production
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      operationRequest  true  "Operation details"
// @Success      201   {object}  domain.Operation
// @Failure      400   {object}  errorResponse
// @Router       /operations [post]
func (h *PassportHandler) CreateOperation(c echo.Context) error {
	var req operationRequest
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

	operation, err := h.service.CreateOperation(c.Request().Context(), ports.CreateOperationInput{
		Name:        req.Name,
		MachineID:   req.MachineID,
		DurationMin: req.DurationMin,
		ActorID:     userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, operation)
}

// ListProfiles handles GET /profiles.
//
// @Summary      List material profiles
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Profile
// @Router       /profiles [get]
func (h *PassportHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.service.ListProfiles(c.Request().Context())
	if err != nil {
		return err
	}
	if profiles == nil {
		profiles = []*domain.Profile{}
	}
	return c.JSON(http.StatusOK, profiles)
}

// CreateProfile handles POST /profiles.
//
// @Summary      Create a material profile
// @Tags         production
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile details"
// @Success      201   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Router       /profiles [post]
func (h *PassportHandler) CreateProfile(c echo.Context) error {
	var req profileRequest
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

	profile, err := h.service.CreateProfile(c.Request().Context(), ports.CreateProfileInput{
		Name:     req.Name,
		Material: req.Material,
		SizeMM:   req.SizeMM,
		ActorID:  userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// ListMachines handles GET /machines.
//
// @Summary      List production machines
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Machine
// @Router       /machines [get]
func (h *PassportHandler) ListMachines(c echo.Context) error {
	machines, err := h.service.ListMachines(c.Request().Context())
	if err != nil {
		return err
	}
	if machines == nil {
		machines = []*domain.Machine{}
	}
	return c.JSON(http.StatusOK, machines)
}

// SearchNomenclature handles GET /passport-nomenclature. It backs the
// autocomplete field of the tech-card form; repeated queries are served
// from cache.
//
// @Summary      Nomenclature autocomplete
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Param        type    query     string  false  "Passport type filter"
// @Param        search  query     string  false  "Substring match on name or code"
// @Param        limit   query     int     false  "Max results"
// @Success      200     {array}   domain.NomenclatureEntry
// @Router       /passport-nomenclature [get]
func (h *PassportHandler) SearchNomenclature(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.service.SearchNomenclature(c.Request().Context(), ports.NomenclatureFilter{
		Type:   c.QueryParam("type"),
		Search: c.QueryParam("search"),
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.NomenclatureEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
