package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRegexMatch(t *testing.T) {
	b := Postgres()
	assert.Equal(t, "catalog_resources.title ~ ?", b.RegexMatch("catalog_resources.title"))
}

func TestPostgresArrayContainsMatch(t *testing.T) {
	b := Postgres()
	assert.Equal(t, "? = ANY(tags)", b.ArrayContainsMatch("tags"))
}

func TestPostgresSerializePassesStringsThrough(t *testing.T) {
	b := Postgres()
	assert.Equal(t, "present", b.Serialize("present"))
}

func TestPostgresSerializeNonStringAsJSON(t *testing.T) {
	b := Postgres()
	assert.Equal(t, "5", b.Serialize(5.0))
	assert.Equal(t, "true", b.Serialize(true))
}

func TestPostgresParseNumber(t *testing.T) {
	b := Postgres()
	n, ok := b.ParseNumber("0.3")
	require.True(t, ok)
	assert.InDelta(t, 0.3, n, 1e-9)

	_, ok = b.ParseNumber("not-a-number")
	assert.False(t, ok)
}

func TestMySQLRejectsMalformedDSN(t *testing.T) {
	_, err := MySQL("user:pass@tcp(127.0.0.1:3306/queryc")
	assert.Error(t, err)
}

func TestMySQLAcceptsEmptyDSN(t *testing.T) {
	b, err := MySQL("")
	require.NoError(t, err)
	assert.Equal(t, "mysql", b.Name())
}

func TestMySQLArrayContainsMatch(t *testing.T) {
	b, err := MySQL("user:pass@tcp(127.0.0.1:3306)/queryc")
	require.NoError(t, err)
	assert.Equal(t, "FIND_IN_SET(?, tags) > 0", b.ArrayContainsMatch("tags"))
}

func TestSQLiteLocalVsRemoteName(t *testing.T) {
	assert.Equal(t, "sqlite", SQLite("./queryc.db").Name())
	assert.Equal(t, "libsql", SQLite("libsql://queryc.turso.io").Name())
}

func TestSQLiteRegexArrayMatch(t *testing.T) {
	b := SQLite("./queryc.db")
	assert.Contains(t, b.RegexArrayMatch("catalog_resources", "tags"), "json_each(catalog_resources.tags)")
}
