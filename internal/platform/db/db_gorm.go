// Package db provides the GORM database connection for the application.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
)

// Config holds the database connection settings.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// Opener opens a gorm.DB for the given DSN. It exists so connection retry
// logic can be tested without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv reads the database settings from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
	}
}

// BuildDSN builds the PostgreSQL DSN from the config.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
}

// ConnectWithRetry opens the database, retrying every 3 seconds until the
// timeout elapses. Container orchestrators often start the app before the
// database accepts connections.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to PostgreSQL using environment configuration and runs the
// schema migration when RUN_MIGRATIONS=true. It exits the process when the
// database stays unreachable.
func OpenDB() *gorm.DB {
	dsn := BuildDSN(LoadConfigFromEnv())

	open := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	db, err := ConnectWithRetry(dsn, 60*time.Second, open)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
