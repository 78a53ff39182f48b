package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCopiesParams(t *testing.T) {
	params := []any{"a", "b"}
	f := New("x = ? AND y = ?", params...)
	params[0] = "mutated"
	assert.Equal(t, "a", f.Params[0])
}

func TestCombineAndOrdersParamsAndJoins(t *testing.T) {
	a := Fragment{Where: "a = ?", Joins: []JoinTag{"certnames"}, Params: []any{1}}
	b := Fragment{Where: "b = ?", Joins: []JoinTag{"certnames", "other"}, Params: []any{2}}

	combined := Combine(" AND ", a, b)

	assert.Equal(t, "(a = ?) AND (b = ?)", combined.Where)
	assert.Equal(t, []any{1, 2}, combined.Params)
	assert.Equal(t, []JoinTag{"certnames", "other"}, combined.Joins)
}

func TestWithJoinsDedups(t *testing.T) {
	f := Fragment{Where: "x", Joins: []JoinTag{"certnames"}}
	out := f.WithJoins("certnames", "other")
	assert.Equal(t, []JoinTag{"certnames", "other"}, out.Joins)
}

func TestParenthesized(t *testing.T) {
	f := Fragment{Where: "a = 1"}
	assert.Equal(t, "(a = 1)", f.Parenthesized())
}
