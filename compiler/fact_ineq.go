package compiler

import (
	"fmt"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/fragment"
	"github.com/oxhq/queryc/primitives"
	"github.com/oxhq/queryc/queryerr"
)

// FactIneq builds the numeric-inequality compiler for op (one of
// ">", "<", ">=", "<=") against the fact dataset (spec §4.8). Only the
// "value" field is queryable; the value operand is stringified then
// parsed as a number through the backend's lenient parser.
func FactIneq(op string, backend primitives.Backend) dialect.CompileFunc {
	return func(table *dialect.Table, args []ast.Node) (dialect.Term, error) {
		if len(args) != 2 {
			return nil, &queryerr.Arity{Operator: op, Want: 2, Got: len(args)}
		}
		path, ok := ast.AsPath(args[0])
		if !ok || !path.Bare() || path.Member != "value" {
			field := "<invalid>"
			if ok {
				field = pathLabel(path)
			}
			return nil, &queryerr.UnqueryableField{Field: field, Allowed: []string{"value"}, Context: fmt.Sprintf("fact %s comparison", op)}
		}

		raw := args[1].Scalar()
		n, ok := backend.ParseNumber(raw)
		if !ok {
			return nil, &queryerr.TypeError{Value: raw, Want: fmt.Sprintf("number for %s comparison", op)}
		}

		where := fmt.Sprintf("%s %s ?", backend.NumericCast("certname_facts.value"), op)
		return fragment.New(where, n), nil
	}
}
