package db

import (
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectMySQL opens a MySQL/MariaDB connection and runs the schema
// migrations. The dsn is validated up front with mysql.ParseDSN so a
// malformed connection string is rejected before gorm ever dials out.
func ConnectMySQL(dsn string, debug bool) (*gorm.DB, error) {
	if _, err := mysqldriver.ParseDSN(dsn); err != nil {
		return nil, fmt.Errorf("db: parse mysql dsn: %w", err)
	}

	config := &gorm.Config{}
	if debug {
		config.Logger = logger.Default.LogMode(logger.Info)
	}

	gdb, err := gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("db: connect mysql: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("db: migrate mysql: %w", err)
	}
	return gdb, nil
}
