package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/opsdesk/backoffice/internal/core/domain"
)

// Config captures the minimal settings required to open a Postgres connection.
type Config struct {
	DSN string
}

// Connect opens a GORM connection against Postgres and runs schema migration
// for all persisted entities.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Employee{},
		&domain.Item{},
	); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}

	return db, nil
}
