package compiler

import (
	"fmt"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/fragment"
	"github.com/oxhq/queryc/queryerr"
)

// compileChildren runs CompileTerm over each term against table, requiring
// every result to be a fragment.Fragment (boolean combinators never accept
// a finalized select as a direct operand — only `project` does).
func compileChildren(table *dialect.Table, op string, terms []ast.Node) ([]fragment.Fragment, error) {
	if len(terms) == 0 {
		return nil, queryerr.NewMalformed(fmt.Sprintf("%s requires at least one term", op))
	}
	out := make([]fragment.Fragment, len(terms))
	for i, term := range terms {
		result, err := CompileTerm(table, term)
		if err != nil {
			return nil, err
		}
		frag, ok := result.(fragment.Fragment)
		if !ok {
			return nil, queryerr.NewMalformed(fmt.Sprintf("%s operand %d must compile to a boolean expression, not a select", op, i))
		}
		out[i] = frag
	}
	return out, nil
}

// CompileAnd implements the `and` combinator: every term compiled against
// table, params concatenated in argument order, joins unioned preserving
// first appearance, where-clauses parenthesized and joined by " AND ".
func CompileAnd(table *dialect.Table, terms []ast.Node) (dialect.Term, error) {
	children, err := compileChildren(table, "and", terms)
	if err != nil {
		return nil, err
	}
	return fragment.Combine(" AND ", children...), nil
}

// CompileOr implements the `or` combinator, identical to CompileAnd but
// joining with " OR ".
func CompileOr(table *dialect.Table, terms []ast.Node) (dialect.Term, error) {
	children, err := compileChildren(table, "or", terms)
	if err != nil {
		return nil, err
	}
	return fragment.Combine(" OR ", children...), nil
}

// CompileNot implements `not` as a single-OR-then-negate lowering (spec
// §4.2): compiling `or` over the terms and wrapping its where in
// "NOT (...)" gives De Morgan's-correct semantics over any number of
// terms for free, sharing CompileOr's implementation instead of
// duplicating the join/param bookkeeping.
func CompileNot(table *dialect.Table, terms []ast.Node) (dialect.Term, error) {
	orResult, err := CompileOr(table, terms)
	if err != nil {
		return nil, err
	}
	or := orResult.(fragment.Fragment)
	return fragment.Fragment{
		Where:  "NOT (" + or.Where + ")",
		Joins:  or.Joins,
		Params: or.Params,
	}, nil
}
