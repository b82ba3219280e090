package infra

import (
	"fmt"

	"insurance/internal/config"
	"insurance/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the GORM connection backed by pgx. Schema changes are not
// made here: they belong to the SQL migrations applied by RunMigrations.
//
// TranslateError is required: services rely on gorm.ErrDuplicatedKey to turn
// a lost insert race on a natural key into a conflict.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if !cfg.IsProduction() {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	return db, nil
}

// Models lists every persisted type. Only used to build throwaway schemas
// (SQLite in tests); Postgres is migrated from the SQL files.
func Models() []any {
	return []any{
		&model.Product{},
		&model.Holder{},
		&model.HolderHistory{},
		&model.Vehicle{},
		&model.Policy{},
	}
}
