package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONLeaf(t *testing.T) {
	n, err := FromJSON([]byte(`"certname"`))
	require.NoError(t, err)
	assert.Equal(t, KindString, n.Kind())
	assert.Equal(t, "certname", n.StringValue())
}

func TestFromJSONNestedList(t *testing.T) {
	n, err := FromJSON([]byte(`["and", ["=","type","Class"], ["=","title","apache"]]`))
	require.NoError(t, err)
	require.True(t, n.IsList())
	assert.Equal(t, "and", n.Operator())
	require.Len(t, n.Args(), 2)
	assert.Equal(t, "=", n.Args()[0].Operator())
}

func TestFromJSONRejectsEmptyList(t *testing.T) {
	_, err := FromJSON([]byte(`[]`))
	assert.Error(t, err)
}

func TestFromJSONRejectsNonStringHead(t *testing.T) {
	_, err := FromJSON([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestToJSONRoundTrips(t *testing.T) {
	n := List("=", String("type"), String("Class"))
	data, err := ToJSON(n)
	require.NoError(t, err)

	back, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, n.String(), back.String())
}
