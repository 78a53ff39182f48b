// Package primitives defines the database-primitive contract the compiler
// delegates to (spec §6.1) and the concrete backends provided for
// PostgreSQL, MySQL, and SQLite/libsql. The compiler itself never embeds
// dialect-specific SQL fragments inline — every regex operator, numeric
// cast, and array predicate goes through a Backend so the same operator
// tables compile to correct SQL regardless of which database the host
// targets.
package primitives

// Backend supplies the six database-specific primitives spec §6.1 names.
// A Backend is plain data plus pure functions: it holds no connection and
// performs no I/O, matching the compiler's own purely-functional contract.
type Backend interface {
	// Name identifies the backend for diagnostics (e.g. "postgres").
	Name() string

	// Serialize turns an arbitrary operand value into a single scalar
	// suitable for binding as one SQL parameter.
	Serialize(value any) any

	// NumericCast returns a SQL expression coercing columnSQL to a
	// numeric type. The backends in this package emit a plain cast with
	// no guard for values that do not parse as numbers, so such a value
	// gets whatever the database's own cast does with it; it is not
	// mapped to NULL.
	NumericCast(columnSQL string) string

	// RegexMatch returns the "<col> <op> ?" form for this backend's
	// regex operator, with exactly one `?` placeholder.
	RegexMatch(columnSQL string) string

	// RegexArrayMatch returns a SQL boolean expression testing whether
	// any element of the array-typed column matches a regex bound as
	// the single `?` placeholder.
	RegexArrayMatch(table, column string) string

	// ArrayContainsMatch returns a SQL boolean expression testing
	// membership of a single bound `?` candidate in an array-typed
	// column.
	ArrayContainsMatch(column string) string

	// ParseNumber leniently parses s as a number, reporting ok=false if
	// s is not a valid number literal.
	ParseNumber(s string) (float64, bool)
}
