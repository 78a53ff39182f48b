package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectableColumnsResource(t *testing.T) {
	cols := SelectableColumns(Resource)
	assert.Equal(t, []string{
		"certname", "catalog", "resource", "type", "title",
		"tags", "exported", "sourcefile", "sourceline",
	}, cols)
}

func TestSelectableColumnsFact(t *testing.T) {
	assert.Equal(t, []string{"certname", "name", "value"}, SelectableColumns(Fact))
}

func TestSelectableColumnsReturnsACopy(t *testing.T) {
	cols := SelectableColumns(Fact)
	cols[0] = "mutated"
	assert.Equal(t, "certname", SelectableColumns(Fact)[0])
}

func TestIsSelectable(t *testing.T) {
	assert.True(t, IsSelectable(Resource, "certname"))
	assert.False(t, IsSelectable(Resource, "bogus"))
	assert.True(t, IsSelectable(Fact, "value"))
	assert.False(t, IsSelectable(Fact, "catalog"))
}
