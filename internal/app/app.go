package app

import (
	"context"
	"fmt"

	"go-leave/internal/audit"
	"go-leave/internal/config"
	"go-leave/internal/leave"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/connection"
	"go-leave/internal/userrole"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the infrastructure the HTTP server was built on.
type App struct {
	DB    *gorm.DB
	Redis *redis.Client
	Audit audit.Service

	logger *zap.Logger
}

// BuildApp connects the stores, migrates the schema, optionally seeds demo
// data and registers every route on router.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	if err := Migrate(gormDB); err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		log.Warn("REDIS_ADDR not set, leave type cache and idempotency disabled")
	}

	a := &App{DB: gormDB, Redis: rdb, logger: log}
	if err := registerModules(router, a, cfg, logger); err != nil {
		a.Close()
		return nil, err
	}

	if cfg.App.SeedDemoData {
		seeder := NewSeeder(userrole.NewRepository(gormDB), leavetype.NewRepository(gormDB), a.Audit, rdb, logger)
		if err := seeder.Seed(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrole.UserRole{},
		&leavetype.LeaveType{},
		&leave.LeaveRequest{},
		&audit.Entry{},
		&kafka.OutboxRecord{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.logger.Warn("close redis failed", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.logger.Warn("close database failed", zap.Error(err))
		}
	}
}
