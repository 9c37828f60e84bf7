package app

import (
	"context"
	"os"

	"github.com/alex-morcg/horarios-vacaciones/internal/department"
	"github.com/alex-morcg/horarios-vacaciones/internal/employee"
	"github.com/alex-morcg/horarios-vacaciones/internal/feedback"
	"github.com/alex-morcg/horarios-vacaciones/internal/holiday"
	"github.com/alex-morcg/horarios-vacaciones/internal/request"
	"github.com/alex-morcg/horarios-vacaciones/internal/shared/connection"
	"github.com/alex-morcg/horarios-vacaciones/internal/timeclock"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	return registerModules(router, sqlDB, gormDB, redisClient)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&department.Department{},
		&employee.Employee{},
		&employee.ScheduleDay{},
		&holiday.Holiday{},
		&request.Request{},
		&request.RequestDate{},
		&timeclock.Record{},
		&timeclock.Break{},
		&timeclock.Settings{},
		&feedback.Item{},
	); err != nil {
		return err
	}

	// The outbox table is managed outside gorm: the worker reads it with
	// plain SQL and needs the retry columns in place.
	return gormDB.Exec(`
        CREATE TABLE IF NOT EXISTS outbox_events (
            id UUID PRIMARY KEY,
            request_id UUID,
            aggregate_type TEXT NOT NULL,
            aggregate_id UUID NOT NULL,
            event_type TEXT NOT NULL,
            topic TEXT NOT NULL,
            payload JSONB NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            retry_count INT NOT NULL DEFAULT 0,
            next_retry_at TIMESTAMPTZ,
            processed_at TIMESTAMPTZ,
            error_message TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `).Error
}

// seedDefaults loads the built-in holiday calendar on an empty database.
func seedDefaults(holidayService holiday.Service) {
	if err := holidayService.EnsureDefaults(context.Background()); err != nil {
		zap.L().Warn("holiday defaults seeding failed", zap.Error(err))
	}
}
