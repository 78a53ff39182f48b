package compiler

import (
	"fmt"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/fragment"
	"github.com/oxhq/queryc/primitives"
	"github.com/oxhq/queryc/queryerr"
)

// resourceRegexFields is the bare-string field set spec §4.5 allows for
// `~`. Deliberately narrower than resourceEqFields — it omits "tags"
// (tags matching goes through the array-typed ["tag"] path instead, see
// the open question in SPEC_FULL.md/DESIGN.md) but does include "title".
var resourceRegexFields = []string{
	"catalog", "resource", "type", "title", "exported", "sourcefile", "sourceline",
}

// ResourceRegex builds the `~` compiler for resource-v2 (spec §4.5).
func ResourceRegex(backend primitives.Backend) dialect.CompileFunc {
	return func(table *dialect.Table, args []ast.Node) (dialect.Term, error) {
		if len(args) != 2 {
			return nil, &queryerr.Arity{Operator: "~", Want: 2, Got: len(args)}
		}
		path, ok := ast.AsPath(args[0])
		if !ok {
			return nil, queryerr.NewMalformed(fmt.Sprintf("~ path operand must be a bare string or [namespace member] list, got %s", args[0]))
		}
		pattern := args[1].Scalar()

		if path.Bare() && path.Member == "tag" {
			return fragment.New(backend.RegexArrayMatch("catalog_resources", "tags"), pattern), nil
		}
		if path.Bare() && path.Member == "certname" {
			return fragment.New(backend.RegexMatch("certname_catalogs.certname"), pattern), nil
		}
		if path.Bare() {
			for _, col := range resourceRegexFields {
				if path.Member == col {
					return fragment.New(backend.RegexMatch(fmt.Sprintf("catalog_resources.%s", col)), pattern), nil
				}
			}
		}

		return nil, &queryerr.UnqueryableField{
			Field:   pathLabel(path),
			Allowed: sortedCopy(append(append([]string(nil), resourceRegexFields...), "certname", "tag")),
			Context: "resource regexp",
		}
	}
}
