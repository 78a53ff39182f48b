package primitives

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// postgresBackend targets PostgreSQL, the database the teacher's
// gorm.io/driver/postgres wiring (db/postgres.go) connects to. PostgreSQL
// has a native regex match operator (`~`) and array columns, so its
// primitives are the most direct of the three backends.
type postgresBackend struct{}

// Postgres returns the PostgreSQL primitive backend.
func Postgres() Backend { return postgresBackend{} }

func (postgresBackend) Name() string { return "postgres" }

func (postgresBackend) Serialize(value any) any { return serializeJSON(value) }

func (postgresBackend) NumericCast(columnSQL string) string {
	return fmt.Sprintf("(%s)::double precision", columnSQL)
}

func (postgresBackend) RegexMatch(columnSQL string) string {
	return fmt.Sprintf("%s ~ ?", columnSQL)
}

func (postgresBackend) RegexArrayMatch(table, column string) string {
	return fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(%s.%s) elem WHERE elem ~ ?)", table, column)
}

func (postgresBackend) ArrayContainsMatch(column string) string {
	return fmt.Sprintf("? = ANY(%s)", column)
}

// ParseNumber uses pgx's wire-format-aware pgtype.Numeric so the lenient
// parse accepts the same numeric literal shapes (including scientific
// notation and NaN/Infinity) PostgreSQL itself accepts in a numeric
// column, rather than reimplementing that grammar with strconv alone.
func (postgresBackend) ParseNumber(s string) (float64, bool) {
	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return 0, false
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		// Fall back to plain float parsing for values pgtype.Numeric
		// rejects but strconv accepts (e.g. bare "inf").
		v, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return 0, false
		}
		return v, true
	}
	return f.Float64, true
}
