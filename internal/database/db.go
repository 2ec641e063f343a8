package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justsurfingit/jobly/internal/models"
)

// Connect opens the Postgres connection, runs migrations, and returns the
// raw handle the repositories execute against.
func Connect(dsn string) *sql.DB {
	var gormDB *gorm.DB

	// Postgres may still be starting (docker compose); retry before giving up.
	err := retry(5, 1*time.Second, func() error {
		var openErr error
		gormDB, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		return openErr
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: This creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	if err := gormDB.AutoMigrate(&models.Company{}, &models.Job{}, &models.User{}, &models.Application{}); err != nil {
		log.Fatal("Migration failed:", err)
	}

	db, err := gormDB.DB()
	if err != nil {
		log.Fatal("Failed to unwrap database handle:", err)
	}
	return db
}

func retry(attempts int, sleep time.Duration, f func() error) error {
	for i := 0; i < attempts; i++ {
		err := f()
		if err == nil {
			return nil
		}

		log.Printf("⚠️ Database not ready: %v. Retrying in %v...", err, sleep)
		time.Sleep(sleep)
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts", attempts)
}
