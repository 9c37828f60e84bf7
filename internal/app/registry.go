package app

import (
	"database/sql"

	"github.com/alex-morcg/horarios-vacaciones/internal/auth"
	"github.com/alex-morcg/horarios-vacaciones/internal/bootstrap"
	"github.com/alex-morcg/horarios-vacaciones/internal/department"
	"github.com/alex-morcg/horarios-vacaciones/internal/employee"
	"github.com/alex-morcg/horarios-vacaciones/internal/feedback"
	"github.com/alex-morcg/horarios-vacaciones/internal/holiday"
	"github.com/alex-morcg/horarios-vacaciones/internal/messaging/kafka"
	"github.com/alex-morcg/horarios-vacaciones/internal/planning"
	"github.com/alex-morcg/horarios-vacaciones/internal/request"
	"github.com/alex-morcg/horarios-vacaciones/internal/timeclock"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	planningRepo := planning.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	timeclockRepo := timeclock.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	auditLogger := bootstrap.NewStdoutAuditLogger()

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewService(db, employeeRepo, departmentRepo)
	holidayService := holiday.NewService(db, holidayRepo)
	planningService := planning.NewService(planningRepo)
	requestService := request.NewService(db, requestRepo, outboxRepo, planningService, employeeRepo, auditLogger)
	timeclockService := timeclock.NewService(db, timeclockRepo, employeeRepo)
	feedbackService := feedback.NewService(feedbackRepo)

	seedDefaults(holidayService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayService)
	planningHandler := planning.NewHandler(planningService)
	requestHandler := request.NewHandler(requestService)
	timeclockHandler := timeclock.NewHandler(timeclockService)
	feedbackHandler := feedback.NewHandler(feedbackService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		holiday.RegisterRoutes(api, holidayHandler)
		planning.RegisterRoutes(api, planningHandler)
		request.RegisterRoutes(api, requestHandler, rdb)
		timeclock.RegisterRoutes(api, timeclockHandler)
		feedback.RegisterRoutes(api, feedbackHandler)
	}

	return nil
}
