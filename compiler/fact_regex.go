package compiler

import (
	"fmt"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/fragment"
	"github.com/oxhq/queryc/primitives"
	"github.com/oxhq/queryc/queryerr"
)

// FactRegex builds the `~` compiler for facts (spec §4.7): path must be
// one of certname/name/value, regex-matched against the corresponding
// certname_facts column.
func FactRegex(backend primitives.Backend) dialect.CompileFunc {
	return func(table *dialect.Table, args []ast.Node) (dialect.Term, error) {
		if len(args) != 2 {
			return nil, &queryerr.Arity{Operator: "~", Want: 2, Got: len(args)}
		}
		path, ok := ast.AsPath(args[0])
		if !ok || !path.Bare() {
			return nil, queryerr.NewMalformed(fmt.Sprintf("~ path operand must be a bare string, got %s", args[0]))
		}
		pattern := args[1].Scalar()

		for _, col := range factEqFields {
			if path.Member == col {
				return fragment.New(backend.RegexMatch(fmt.Sprintf("certname_facts.%s", col)), pattern), nil
			}
		}

		return nil, &queryerr.UnqueryableField{
			Field:   path.Member,
			Allowed: sortedCopy(factEqFields),
			Context: "fact regexp",
		}
	}
}
