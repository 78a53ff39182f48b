package compiler

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/internal/testutil"
)

// sqlFixture is the shape of a fixture file under testdata/: a query,
// the dataset/dialect to compile it against, and the SQL+params it must
// produce. Regex and numeric-inequality operators are the fixtures'
// focus — the cases where a stray backslash or a float's string form
// is most likely to drift.
type sqlFixture struct {
	Name    string          `json:"name"`
	Dataset string          `json:"dataset"`
	Dialect string          `json:"dialect"`
	Query   json.RawMessage `json:"query"`
	SQL     string          `json:"sql"`
	Params  []any           `json:"params"`
}

func TestFixtures(t *testing.T) {
	files, err := testutil.FixtureFiles(".", "testdata/**/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, files, "expected at least one fixture under testdata/")

	resourceV1, resourceV2, factV2 := testTables()

	for _, path := range files {
		data, err := os.ReadFile(path)
		require.NoError(t, err, path)

		var fx sqlFixture
		require.NoError(t, json.Unmarshal(data, &fx), path)

		t.Run(fx.Name, func(t *testing.T) {
			query, err := ast.FromJSON(fx.Query)
			require.NoError(t, err)

			var (
				table  *dialect.Table
				sql    string
				params []any
			)
			switch fx.Dataset {
			case "resource":
				table = resourceV2
				if fx.Dialect == "v1" {
					table = resourceV1
				}
				sql, params, err = ResourceQueryToSQL(table, query)
			case "fact":
				sql, params, err = FactQueryToSQL(factV2, query)
			default:
				t.Fatalf("fixture %s: unknown dataset %q", fx.Name, fx.Dataset)
			}
			require.NoError(t, err)

			if sql != fx.SQL {
				t.Fatalf("sql mismatch:\n%s", testutil.DiffSQL(fx.SQL, sql))
			}
			assert.Equal(t, fx.Params, params)
		})
	}
}
