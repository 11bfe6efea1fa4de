package db

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the database backing the key-value store.
// A Turso URL takes precedence over the local SQLite file.
func Initialize(dbPath, tursoURL, tursoToken, environment string) error {
	var err error

	// Determine log level based on environment
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	if tursoURL != "" {
		conn, err := openLibSQL(tursoURL, tursoToken)
		if err != nil {
			return err
		}
		DB, err = gorm.Open(sqlite.Dialector{Conn: conn}, gormCfg)
		if err != nil {
			return fmt.Errorf("failed to connect to turso database: %w", err)
		}
		log.Println("Database connection established (Turso/libSQL)")
		return nil
	}

	// Enable WAL mode for better concurrency support
	dsn := dbPath + "?_journal_mode=WAL"

	DB, err = gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established (WAL mode enabled)")
	return nil
}

func openLibSQL(tursoURL, token string) (*sql.DB, error) {
	dsn := tursoURL
	if token != "" {
		u, err := url.Parse(tursoURL)
		if err != nil {
			return nil, fmt.Errorf("invalid turso url: %w", err)
		}
		q := u.Query()
		q.Set("authToken", token)
		u.RawQuery = q.Encode()
		dsn = u.String()
	}

	conn, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open libsql connection: %w", err)
	}
	return conn, nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
