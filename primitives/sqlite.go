package primitives

import (
	"fmt"
	"strconv"
	"strings"
)

// sqliteBackend targets SQLite, reached either as a local file or, when
// the configured DSN is a libsql:// URL, as a remote libsql/Turso database
// over the same wire protocol. Only libsql:// and https:// DSNs count as
// remote here; db/sqlite.go's isRemoteDSN, which decides between
// sqlite.Open and libsql.NewConnector, also treats http:// and any
// libsql-prefixed DSN as remote. SQLite has no native regex operator, so
// RegexMatch/RegexArrayMatch assume the host has registered a scalar
// REGEXP function on the connection, the customary way Go SQLite drivers
// add one (both glebarez/sqlite and mattn/go-sqlite3 support registering
// custom functions).
type sqliteBackend struct {
	remote bool
}

// SQLite returns the SQLite/libsql primitive backend for the given DSN.
// The DSN is only inspected to decide whether it addresses a remote
// libsql database; SQLite returns semantically identical SQL either way,
// since both targets speak the same SQL dialect.
func SQLite(dsn string) Backend {
	return sqliteBackend{remote: isLibsqlURL(dsn)}
}

func isLibsqlURL(dsn string) bool {
	return strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "https://")
}

func (b sqliteBackend) Name() string {
	if b.remote {
		return "libsql"
	}
	return "sqlite"
}

func (sqliteBackend) Serialize(value any) any { return serializeJSON(value) }

func (sqliteBackend) NumericCast(columnSQL string) string {
	return fmt.Sprintf("CAST(%s AS REAL)", columnSQL)
}

func (sqliteBackend) RegexMatch(columnSQL string) string {
	return fmt.Sprintf("%s REGEXP ?", columnSQL)
}

func (sqliteBackend) RegexArrayMatch(table, column string) string {
	return fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(%s.%s) je WHERE je.value REGEXP ?)", table, column)
}

func (sqliteBackend) ArrayContainsMatch(column string) string {
	return fmt.Sprintf("? IN (SELECT value FROM json_each(%s))", column)
}

func (sqliteBackend) ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
