package primitives

import (
	"fmt"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

// mysqlBackend targets MySQL/MariaDB. MySQL has no array column type, so
// tag membership and tag regex matching are expressed against a
// comma-joined column via FIND_IN_SET and REGEXP respectively instead of
// the array operators PostgreSQL offers natively.
type mysqlBackend struct{}

// MySQL returns the MySQL primitive backend. dsn is validated (not
// connected to) via mysql.ParseDSN so a misconfigured QUERYC_DSN is
// rejected at backend-construction time rather than silently producing
// SQL nobody can execute.
func MySQL(dsn string) (Backend, error) {
	if dsn != "" {
		if _, err := mysql.ParseDSN(dsn); err != nil {
			return nil, fmt.Errorf("primitives: invalid mysql dsn: %w", err)
		}
	}
	return mysqlBackend{}, nil
}

func (mysqlBackend) Name() string { return "mysql" }

func (mysqlBackend) Serialize(value any) any { return serializeJSON(value) }

func (mysqlBackend) NumericCast(columnSQL string) string {
	return fmt.Sprintf("CAST(%s AS DECIMAL(65,10))", columnSQL)
}

func (mysqlBackend) RegexMatch(columnSQL string) string {
	return fmt.Sprintf("%s REGEXP ?", columnSQL)
}

func (mysqlBackend) RegexArrayMatch(table, column string) string {
	return fmt.Sprintf("%s.%s REGEXP ?", table, column)
}

func (mysqlBackend) ArrayContainsMatch(column string) string {
	return fmt.Sprintf("FIND_IN_SET(?, %s) > 0", column)
}

func (mysqlBackend) ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
