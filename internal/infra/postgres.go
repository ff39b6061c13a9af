package infra

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"yatrasetu/internal/models/db_models"
)

// InitPostgresql opens the pool and migrates the tables this service owns.
func InitPostgresql(ctx context.Context, dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db.WithContext(ctx)); err != nil {
		return nil, err
	}
	log.Info("postgres ready")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&db_models.SavedItinerary{}, &db_models.Review{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("error getting database instance", zap.Error(err))
		return err
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("error closing database connection", zap.Error(err))
		return err
	}
	log.Info("postgres connection closed")
	return nil
}
