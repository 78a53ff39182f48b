package db

import (
	"gorm.io/gorm"

	"github.com/oxhq/queryc/schema"
)

// Migrate runs AutoMigrate for every table the compiler's generated SQL
// can reference, shared by ConnectPostgres, ConnectMySQL and ConnectSQLite.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&schema.Certname{},
		&schema.CertnameCatalog{},
		&schema.CatalogResource{},
		&schema.ResourceParam{},
		&schema.CertnameFact{},
	)
}
