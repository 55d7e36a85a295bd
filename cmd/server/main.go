package main

import (
	"log"
	"net/http"

	"roomcare/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"roomcare/internal/auth"
	"roomcare/internal/cache"
	"roomcare/internal/config"
	"roomcare/internal/db"
	"roomcare/internal/handler"
	"roomcare/internal/model"
	"roomcare/internal/repository"
	"roomcare/internal/router"
	"roomcare/internal/service"
)

// @title Hotel Maintenance API
// @version 1.0
// @description Maintenance-reporting backend: tenants file repair reports for their room, staff triage and resolve them.
// @host localhost:5001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.Report{},
		&model.RoomDeletionLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roomRepo := repository.NewRoomRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)
	deletionLogRepo := repository.NewDeletionLogRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	imageStore, err := service.NewImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("image store init: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	roomService := service.NewRoomService(roomRepo, userRepo, reportRepo, deletionLogRepo, cacheClient)
	reportService := service.NewReportService(reportRepo, roomRepo, userRepo, cacheClient)
	statsService := service.NewStatsService(reportRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roomHandler := handler.NewRoomHandler(roomService)
	reportHandler := handler.NewReportHandler(reportService, imageStore)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		roomHandler,
		reportHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
