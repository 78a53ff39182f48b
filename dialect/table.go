package dialect

import (
	"strings"

	"github.com/oxhq/queryc/ast"
)

// Term is what a CompileFunc returns: either a fragment.Fragment (the
// common case) or a fragment.Select (only for `select-resources` and
// `select-facts`, §4.9). The dialect package itself stays independent of
// the fragment package's concrete types to avoid import churn — callers
// type-assert the concrete type they expect.
type Term any

// CompileFunc compiles the tail of a list node (its operands) against a
// dialect table, returning a Term or an error. Boolean combinators and
// subquery operators hold a reference back to a Table so they can recurse
// into compiler.CompileTerm on their operands using the same (or, for
// cross-dataset subqueries, a different) table.
type CompileFunc func(t *Table, args []ast.Node) (Term, error)

// Table is a named operator-to-compiler map: a data entity, built once and
// held by reference, not mutated once its builder has populated it. Two tables may reference
// each other's CompileFuncs (resource-v2's `select-facts` resolves through
// the fact-v2 table and vice versa) because the maps are filled in after
// both Table values already exist.
type Table struct {
	// Name identifies the dialect for error messages (e.g. "resource-v1").
	Name string
	// Kind is the dataset this table's leaf predicates target.
	Kind Kind

	ops map[string]CompileFunc
}

// NewTable allocates an empty, named table for kind. Call Set to populate
// it, typically from an init-style builder function.
func NewTable(name string, kind Kind) *Table {
	return &Table{Name: name, Kind: kind, ops: make(map[string]CompileFunc)}
}

// Set registers (or replaces) the compiler for operator op. op is
// lowercased before it is stored, so Lookup finds it under any casing.
func (t *Table) Set(op string, fn CompileFunc) {
	t.ops[strings.ToLower(op)] = fn
}

// Lookup resolves operator (matched case-insensitively) to its
// CompileFunc. The bool result is false if the dialect has no such
// operator.
func (t *Table) Lookup(operator string) (CompileFunc, bool) {
	fn, ok := t.ops[strings.ToLower(operator)]
	return fn, ok
}
