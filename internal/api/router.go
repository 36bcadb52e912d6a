package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/woodline/warehouse-system/docs"
	"github.com/woodline/warehouse-system/internal/api/handler"
	"github.com/woodline/warehouse-system/internal/api/middleware"
	"github.com/woodline/warehouse-system/internal/core/domain"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Menu     *handler.MenuHandler
	User     *handler.UserHandler
	Item     *handler.ItemHandler
	Catalog  *handler.CatalogHandler
	Passport *handler.PassportHandler
	Task     *handler.TaskHandler
	Report   *handler.ReportHandler
	Health   *handler.HealthHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(h Handlers, jwtSecret string, revoker middleware.Revoker, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("warehouse"))

	// --- Unauthenticated surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", h.Health.Liveness)
	e.GET("/health/ready", h.Health.Readiness)

	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)
	e.POST("/auth/refresh", h.Auth.Refresh)
	e.GET("/auth/me", h.Auth.Me)
	e.POST("/auth/logout", h.Auth.Logout)

	// --- Authenticated surface ---
	auth := middleware.Auth(jwtSecret, revoker)
	api := e.Group("", auth)

	api.GET("/menu", h.Menu.Get)

	// Warehouse data is readable by every authenticated role; mutations
	// need warehouse staff.
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleWarehouse)

	api.GET("/items", h.Item.List)
	api.GET("/inventory", h.Item.List)
	api.GET("/items/by-category/:cat", h.Item.ListByCategory)
	api.GET("/items/:id", h.Item.Get)
	api.POST("/items", h.Item.Create, staff)
	api.PUT("/items/:id", h.Item.Update, staff)
	api.DELETE("/items/:id", h.Item.Delete, staff)

	api.GET("/categories", h.Catalog.ListCategories)
	api.GET("/categories/:id", h.Catalog.GetCategory)
	api.POST("/categories", h.Catalog.CreateCategory, staff)
	api.PUT("/categories/:id", h.Catalog.UpdateCategory, staff)
	api.DELETE("/categories/:id", h.Catalog.DeleteCategory, staff)

	api.GET("/units", h.Catalog.ListUnits)
	api.GET("/units/available", h.Catalog.ListUnits)
	api.POST("/units", h.Catalog.CreateUnit, staff)

	api.GET("/warehouses", h.Catalog.ListWarehouses)
	api.GET("/warehouses/:id", h.Catalog.GetWarehouse)
	api.POST("/warehouses", h.Catalog.CreateWarehouse, staff)
	api.GET("/warehouses/:id/shelves", h.Catalog.ListShelves)
	api.POST("/warehouses/:id/shelves", h.Catalog.CreateShelf, middleware.RBAC(domain.RoleAdmin))

	api.GET("/passports", h.Passport.ListPassports)
	api.GET("/tech-cards", h.Passport.ListPassports)
	api.GET("/passports/:id", h.Passport.GetPassport)
	api.POST("/passports", h.Passport.CreatePassport, staff)
	api.GET("/passport-nomenclature", h.Passport.SearchNomenclature)

	api.GET("/operations", h.Passport.ListOperations)
	api.POST("/operations", h.Passport.CreateOperation, staff)
	api.GET("/profiles", h.Passport.ListProfiles)
	api.POST("/profiles", h.Passport.CreateProfile, staff)
	api.GET("/machines", h.Passport.ListMachines)

	api.GET("/tasks", h.Task.List)
	api.POST("/tasks", h.Task.Create, staff)
	api.PATCH("/tasks/:id/status", h.Task.UpdateStatus, staff)
	api.GET("/workers", h.Task.ListWorkers)

	api.GET("/reports/stock", h.Report.Stock)
	api.GET("/reports/tasks", h.Report.Tasks)

	// User administration is ADMIN only.
	admin := middleware.RBAC(domain.RoleAdmin)
	api.GET("/users", h.User.List, admin)
	api.PATCH("/users/:id/role", h.User.AssignRole, admin)

	return e
}
