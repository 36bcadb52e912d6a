package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/woodline/warehouse-system/internal/api"
	"github.com/woodline/warehouse-system/internal/api/handler"
	"github.com/woodline/warehouse-system/internal/core/domain"
	"github.com/woodline/warehouse-system/internal/core/service"
	"github.com/woodline/warehouse-system/internal/infrastructure/config"
	mongodb "github.com/woodline/warehouse-system/internal/infrastructure/db/mongo"
	redisdb "github.com/woodline/warehouse-system/internal/infrastructure/db/redis"
	"github.com/woodline/warehouse-system/internal/infrastructure/queue"
	"github.com/woodline/warehouse-system/pkg/logger"
)

// @title        Woodline Warehouse System API
// @version      1.0
// @description  Warehouse and production management for a woodworking factory.
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	unitRepo := mongodb.NewUnitRepository(db)
	warehouseRepo := mongodb.NewWarehouseRepository(db)
	passportRepo := mongodb.NewPassportRepository(db)
	operationRepo := mongodb.NewOperationRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	machineRepo := mongodb.NewMachineRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	workerRepo := mongodb.NewWorkerRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	for _, ensure := range []func(context.Context) error{
		userRepo.EnsureIndexes,
		itemRepo.EnsureIndexes,
		passportRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	tokenStore := redisdb.NewTokenStore(rdb)
	searchCache := redisdb.NewSearchCache(rdb)

	// --- Activity audit dispatcher ---
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityRepo, log)
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	menuService := service.NewMenuService(domain.DefaultMenu)
	userService := service.NewUserService(userRepo, warehouseRepo, dispatcher, log)
	itemService := service.NewItemService(itemRepo, categoryRepo, dispatcher, log)
	catalogService := service.NewCatalogService(categoryRepo, unitRepo, warehouseRepo, dispatcher, log)
	passportService := service.NewPassportService(passportRepo, operationRepo, profileRepo, machineRepo, searchCache, dispatcher, log)
	taskService := service.NewTaskService(taskRepo, workerRepo, passportRepo, dispatcher, log)
	reportService := service.NewReportService(itemRepo, taskRepo)

	// --- HTTP ---
	e := api.NewRouter(api.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Menu:     handler.NewMenuHandler(menuService),
		User:     handler.NewUserHandler(userService),
		Item:     handler.NewItemHandler(itemService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Passport: handler.NewPassportHandler(passportService),
		Task:     handler.NewTaskHandler(taskService),
		Report:   handler.NewReportHandler(reportService),
		Health:   handler.NewHealthHandler(db, rdb),
	}, cfg.JWTSecret, tokenStore, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}
