// Package compiler implements the recursive term compiler, the boolean
// and subquery operator compilers, the per-dialect leaf predicates, and
// the two top-level finalizers. All of these are mutually recursive in
// the source spec (the term compiler dispatches into operator compilers,
// which recurse back into the term compiler on their operands; the
// subquery primitives call the finalizers, which call the term compiler
// on the root query) so they live in one package rather than being split
// across package boundaries Go cannot make circular.
package compiler

import (
	"fmt"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/queryerr"
)

// CompileTerm is the recursive dispatcher (spec §4.1): given a dialect
// table and one AST node, it validates the node's shape, resolves the
// operator, and invokes its compiler with the remaining arguments. The
// returned dialect.Term is a fragment.Fragment for every operator except
// `select-resources`/`select-facts`, which yield a fragment.Select.
func CompileTerm(table *dialect.Table, node ast.Node) (dialect.Term, error) {
	if !node.IsList() {
		return nil, queryerr.NewMalformed(fmt.Sprintf("expected an operator application, got %s", node.String()))
	}
	operator := node.Operator()
	if operator == "" {
		return nil, queryerr.NewMalformed("list node is missing an operator")
	}

	fn, ok := table.Lookup(operator)
	if !ok {
		return nil, &queryerr.UnknownOperator{Operator: operator, Node: node.String()}
	}

	return fn(table, node.Args())
}
