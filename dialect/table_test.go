package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/queryc/ast"
)

func TestTableLookupFindsOnlyRegisteredOperators(t *testing.T) {
	table := NewTable("resource-v2", Resource)
	called := false
	table.Set("=", func(t *Table, args []ast.Node) (Term, error) {
		called = true
		return nil, nil
	})

	fn, ok := table.Lookup("=")
	require.True(t, ok)
	_, _ = fn(table, nil)
	assert.True(t, called)

	_, ok = table.Lookup("AND")
	assert.False(t, ok)
}

func TestTableLookupMissingOperator(t *testing.T) {
	table := NewTable("fact-v2", Fact)
	_, ok := table.Lookup("xor")
	assert.False(t, ok)
}

func TestTableSetIsCaseNormalizing(t *testing.T) {
	table := NewTable("resource-v1", Resource)
	table.Set("AND", func(t *Table, args []ast.Node) (Term, error) { return nil, nil })

	_, ok := table.Lookup("and")
	assert.True(t, ok)
}
