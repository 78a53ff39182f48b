package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPostgres opens a PostgreSQL connection and runs the schema
// migrations. It is provisioning glue only — the compiler itself never
// calls this; a host wires it in when it wants queryc to bootstrap a
// fresh database for it.
func ConnectPostgres(dsn string, debug bool) (*gorm.DB, error) {
	if err := ensurePostgresDatabase(dsn); err != nil && debug {
		fmt.Printf("[WARN] could not ensure database exists: %v\n", err)
	}

	config := &gorm.Config{}
	if debug {
		config.Logger = logger.Default.LogMode(logger.Info)
	}

	gdb, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("db: connect postgres: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("db: migrate postgres: %w", err)
	}
	return gdb, nil
}

// ensurePostgresDatabase creates the target database if it does not
// already exist, connecting to the administrative "postgres" database
// first the way initial provisioning scripts do.
func ensurePostgresDatabase(dsn string) error {
	dbName := extractPostgresDBName(dsn)
	if dbName == "" {
		return fmt.Errorf("db: could not extract database name from dsn")
	}

	adminDSN := strings.Replace(dsn, "/"+dbName, "/postgres", 1)
	admin, err := gorm.Open(postgres.Open(adminDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("db: connect to admin database: %w", err)
	}
	sqlDB, err := admin.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var exists bool
	admin.Raw("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = ?)", dbName).Scan(&exists)
	if !exists {
		if err := admin.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName)).Error; err != nil {
			return fmt.Errorf("db: create database: %w", err)
		}
	}
	return nil
}

func extractPostgresDBName(dsn string) string {
	parts := strings.Split(dsn, "/")
	if len(parts) < 4 {
		return ""
	}
	dbPart := parts[3]
	if idx := strings.Index(dbPart, "?"); idx > 0 {
		dbPart = dbPart[:idx]
	}
	return dbPart
}
