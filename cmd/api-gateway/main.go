package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/uniplan/timetable-api/api/swagger"
	"github.com/uniplan/timetable-api/internal/handler"
	"github.com/uniplan/timetable-api/internal/middleware"
	"github.com/uniplan/timetable-api/internal/repository"
	"github.com/uniplan/timetable-api/internal/service"
	"github.com/uniplan/timetable-api/pkg/cache"
	"github.com/uniplan/timetable-api/pkg/config"
	"github.com/uniplan/timetable-api/pkg/database"
	"github.com/uniplan/timetable-api/pkg/logger"
	corsmiddleware "github.com/uniplan/timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/uniplan/timetable-api/pkg/middleware/requestid"
)

// @title Timetable API
// @version 0.1.0
// @description Course timetabling: schedule construction, occupancy maps and the academic calendar
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
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	weekRepo := repository.NewAcademicWeekRepository(db)
	slotRepo := repository.NewTimeSlotRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	planRepo := repository.NewStudyPlanRepository(db)
	pairRepo := repository.NewPairRepository(db)

	var cacheRepo *repository.CacheRepository
	if cfg.Schedule.BusyCacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, busy cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	calendarSvc := service.NewCalendarService(weekRepo, cfg.Calendar.SeedStartYear, cfg.Calendar.SeedEndYear, logr)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, planRepo, validate, logr)

	// A typed nil repository would defeat the nil-cache check inside the
	// service, so the interface value is only set when redis is up.
	var busyCache service.BusyCache
	if cacheRepo != nil {
		busyCache = cacheRepo
	}
	busySvc := service.NewBusyService(pairRepo, busyCache, metricsSvc, cfg.Schedule.BusyCacheTTL, logr)

	scheduleSvc := service.NewScheduleService(pairRepo, slotRepo, assignmentRepo, planRepo, busySvc, validate, logr)
	exportSvc := service.NewExportService(scheduleSvc, nil, nil, logr)

	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	sentinels, err := assignmentSvc.EnsureHolidaySentinels(bootCtx)
	cancel()
	if err != nil {
		logr.Sugar().Fatalw("failed to bootstrap holiday sentinels", "error", err)
	}
	holidaySvc := service.NewHolidayService(weekRepo, pairRepo, slotRepo, sentinels, busySvc, validate, logr)

	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, busySvc, exportSvc)
	holidayHandler := handler.NewHolidayHandler(holidaySvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

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
		schedule := api.Group("/schedule")
		{
			schedule.POST("", scheduleHandler.BulkReplace)
			schedule.POST("/distance", scheduleHandler.BulkReplaceDistance)
			schedule.GET("/distance", scheduleHandler.DistanceSchedule)
			schedule.GET("/group/:groupId", scheduleHandler.GroupSchedule)
			schedule.GET("/group/:groupId/busy", scheduleHandler.GroupBusy)
			schedule.GET("/group/:groupId/export", scheduleHandler.ExportGroupTimetable)
			schedule.GET("/room/:audienceId/busy", scheduleHandler.RoomBusy)
			schedule.GET("/teacher/:teacherId/busy", scheduleHandler.TeacherBusy)
			schedule.POST("/pair", scheduleHandler.CreatePair)
			schedule.GET("/pair/:id", scheduleHandler.GetPair)
			schedule.PATCH("/pair/:id", scheduleHandler.UpdatePair)
			schedule.DELETE("/pair/:id", scheduleHandler.DeletePair)
		}

		holiday := api.Group("/holiday")
		{
			holiday.POST("/one-time", holidayHandler.CreateOneTime)
			holiday.POST("/recurring", holidayHandler.CreateRecurring)
			holiday.GET("", holidayHandler.List)
		}

		calendar := api.Group("/calendar")
		{
			calendar.GET("/weeks", calendarHandler.ListWeeks)
			calendar.POST("/weeks/generate", calendarHandler.GenerateWeeks)
			calendar.GET("/weeks/resolve", calendarHandler.ResolveWeek)
			calendar.GET("/half-year", calendarHandler.HalfYear)
		}

		assignments := api.Group("/assignments")
		{
			assignments.POST("", assignmentHandler.Upsert)
			assignments.GET("", assignmentHandler.List)
			assignments.PATCH("/:id/audience-type", assignmentHandler.SetAudienceType)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
