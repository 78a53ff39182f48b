package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/queryc/schema"
)

func TestConnectSQLite(t *testing.T) {
	tests := []struct {
		name  string
		dsn   func(t *testing.T) string
		debug bool
	}{
		{
			name:  "in-memory database",
			dsn:   func(t *testing.T) string { return ":memory:" },
			debug: false,
		},
		{
			name: "file database in a new nested directory",
			dsn: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nested", "queryc.db")
			},
			debug: false,
		},
		{
			name: "debug logging enabled",
			dsn: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "queryc.db")
			},
			debug: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb, err := ConnectSQLite(tt.dsn(t), tt.debug)
			require.NoError(t, err)
			require.NotNil(t, gdb)

			sqlDB, err := gdb.DB()
			require.NoError(t, err)
			defer sqlDB.Close()
			require.NoError(t, sqlDB.Ping())

			var fkEnabled int
			require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&fkEnabled).Error)
			assert.Equal(t, 1, fkEnabled, "foreign keys should be enabled")

			assert.True(t, gdb.Migrator().HasTable(&schema.Certname{}))
			assert.True(t, gdb.Migrator().HasTable(&schema.CertnameCatalog{}))
			assert.True(t, gdb.Migrator().HasTable(&schema.CatalogResource{}))
			assert.True(t, gdb.Migrator().HasTable(&schema.ResourceParam{}))
			assert.True(t, gdb.Migrator().HasTable(&schema.CertnameFact{}))
		})
	}
}

func TestIsRemoteDSN(t *testing.T) {
	tests := []struct {
		dsn      string
		expected bool
	}{
		{"http://example.com", true},
		{"https://example.com", true},
		{"libsql://test.turso.io", true},
		{"/path/to/database.db", false},
		{"queryc.db", false},
		{":memory:", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.expected, isRemoteDSN(tt.dsn))
		})
	}
}
