package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/aakib-hotelwala/ttm-api/api/swagger"
	"github.com/aakib-hotelwala/ttm-api/internal/handler"
	"github.com/aakib-hotelwala/ttm-api/internal/middleware"
	"github.com/aakib-hotelwala/ttm-api/internal/repository"
	"github.com/aakib-hotelwala/ttm-api/internal/service"
	"github.com/aakib-hotelwala/ttm-api/pkg/cache"
	"github.com/aakib-hotelwala/ttm-api/pkg/config"
	"github.com/aakib-hotelwala/ttm-api/pkg/database"
	"github.com/aakib-hotelwala/ttm-api/pkg/logger"
	corsmiddleware "github.com/aakib-hotelwala/ttm-api/pkg/middleware/cors"
	reqidmiddleware "github.com/aakib-hotelwala/ttm-api/pkg/middleware/requestid"
)

// @title Timetable Manager API
// @version 1.0.0
// @description Slot allocation and conflict detection engine for university timetables
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	var optionCache *repository.OptionCache
	if cfg.Catalog.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, option cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			optionCache = repository.NewOptionCache(redisClient, cfg.Catalog.CacheTTL)
		}
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	catalogRepo := repository.NewCatalogRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	hierarchySvc := service.NewHierarchyService(catalogRepo, optionCache, metricsSvc, logr)
	catalogSvc := service.NewCatalogService(catalogRepo, entryRepo, optionCache, metricsSvc, logr)
	entrySvc := service.NewEntryService(entryRepo, catalogRepo, validate, metricsSvc, logr)
	conflictSvc := service.NewConflictService(entryRepo, catalogRepo, validate, metricsSvc, logr)
	availabilitySvc := service.NewAvailabilityService(entryRepo, catalogRepo, metricsSvc, logr)

	catalogHandler := handler.NewCatalogHandler(hierarchySvc, catalogSvc)
	entryHandler := handler.NewEntryHandler(entrySvc)
	conflictHandler := handler.NewConflictHandler(conflictSvc, availabilitySvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.Identity(cfg.JWT.Secret))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/faculties", catalogHandler.Faculties)
		api.GET("/departments", catalogHandler.Departments)
		api.GET("/programs", catalogHandler.Programs)
		api.GET("/classes", catalogHandler.Classes)
		api.GET("/divisions", catalogHandler.Divisions)
		api.GET("/batches", catalogHandler.Batches)
		api.GET("/subjects", catalogHandler.Subjects)
		api.GET("/academic-years", catalogHandler.AcademicYears)
		api.GET("/days", catalogHandler.Days)
		api.GET("/timeslots", catalogHandler.TimeSlots)
		api.GET("/staff", catalogHandler.Staff)
		api.GET("/locations", catalogHandler.Locations)
		api.GET("/fields/:field/dependents", catalogHandler.DependentFields)

		api.GET("/entries", entryHandler.List)
		api.GET("/entries/:id", entryHandler.Get)
		api.POST("/entries", entryHandler.Create)
		api.PUT("/entries/:id", entryHandler.Update)
		api.DELETE("/entries/:id", entryHandler.Delete)

		api.POST("/conflicts/check", conflictHandler.Check)
		api.POST("/conflicts/check-slot", conflictHandler.CheckSlot)
		api.POST("/conflicts/check-staff", conflictHandler.CheckStaff)
		api.POST("/conflicts/check-location", conflictHandler.CheckLocation)

		api.POST("/availability/days", conflictHandler.AvailableDays)
		api.POST("/availability/timeslots", conflictHandler.AvailableTimeSlots)
		api.POST("/availability/staff", conflictHandler.AvailableStaff)
		api.POST("/availability/locations", conflictHandler.AvailableLocations)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
