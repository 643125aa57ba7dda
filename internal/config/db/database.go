package db

import (
	"fmt"

	"github.com/hirestack/jobboard-go/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the Postgres connection. Unlike most services, a failure
// here is not fatal: the job engine keeps serving reads from the
// in-memory snapshot when the store is unreachable.
func Init() error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		DB = nil
		return fmt.Errorf("connect postgres: %w", err)
	}
	return nil
}

// InitWithGormDB injects an existing connection. Used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
