// Package db opens the GORM database connection for the service.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"accounts_backend/internal/feature/accounts/domain/entity"
)

// OpenDB connects to PostgreSQL using the given connection string, retrying
// for up to 60 seconds so the service survives a database that is still
// starting. When migrate is true the user table is auto-migrated.
func OpenDB(dsn string, migrate bool) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database connection string is empty")
	}

	var (
		gdb *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after 60s: %w", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if migrate {
		if err := gdb.AutoMigrate(&entity.User{}); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return gdb, nil
}
