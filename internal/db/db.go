package db

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arencloud/hestia/internal/models"
)

// Open connects to PostgreSQL, runs migrations, and routes gorm's logs
// into the service logger.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database dsn is required (DATABASE_URL or DB_DSN)")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(log, gormLevelFor(log)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := gdb.AutoMigrate(&models.Tenant{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("db connect", zap.String("driver", "postgres"))
	return gdb, nil
}

// gormLevelFor maps the logger's enabled level to a gorm log level. SQL
// traces only show up when the service runs at debug.
func gormLevelFor(log *zap.Logger) gormlogger.LogLevel {
	core := log.Core()
	switch {
	case core.Enabled(zapcore.DebugLevel):
		return gormlogger.Info
	case core.Enabled(zapcore.WarnLevel):
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}
