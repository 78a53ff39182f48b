package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCopiesTail(t *testing.T) {
	tail := []Node{String("a"), String("b")}
	n := List("=", tail...)

	tail[0] = String("mutated")

	assert.Equal(t, "a", n.Args()[0].StringValue())
}

func TestTruthy(t *testing.T) {
	assert.True(t, String("x").Truthy())
	assert.True(t, Number(0).Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.False(t, Bool(false).Truthy())
}

func TestScalar(t *testing.T) {
	assert.Equal(t, "apache", String("apache").Scalar())
	assert.Equal(t, "3", Number(3).Scalar())
	assert.Equal(t, "0.3", Number(0.3).Scalar())
	assert.Equal(t, "true", Bool(true).Scalar())
	assert.Equal(t, "false", Bool(false).Scalar())
}

func TestAsPathBareString(t *testing.T) {
	p, ok := AsPath(String("certname"))
	require.True(t, ok)
	assert.True(t, p.Bare())
	assert.Equal(t, "certname", p.Member)
}

func TestAsPathNamespaced(t *testing.T) {
	p, ok := AsPath(List("node", String("active")))
	require.True(t, ok)
	assert.False(t, p.Bare())
	assert.Equal(t, "node", p.Namespace)
	assert.Equal(t, "active", p.Member)
}

func TestAsPathRejectsNonStringMember(t *testing.T) {
	_, ok := AsPath(List("node", Number(1)))
	assert.False(t, ok)
}

func TestAsPathRejectsTooManyArgs(t *testing.T) {
	_, ok := AsPath(List("node", String("a"), String("b")))
	assert.False(t, ok)
}

func TestAsPathRejectsOtherKinds(t *testing.T) {
	_, ok := AsPath(Number(1))
	assert.False(t, ok)
}

func TestNodeStringRendersNestedList(t *testing.T) {
	n := List("and", List("=", String("type"), String("Class")))
	assert.Equal(t, `["and" ["=" "type" "Class"]]`, n.String())
}

func TestRawValuePanicsOnList(t *testing.T) {
	assert.Panics(t, func() {
		List("=", String("x")).RawValue()
	})
}
