package compiler

import (
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/primitives"
)

// BuildTables constructs the three dialect tables spec §4.10 names,
// wired against the given primitive backend. The tables are mutually
// recursive — resource-v2's `select-facts` resolves through the fact-v2
// table and fact-v2's `select-resources` resolves through the resource-v2
// table — so both *dialect.Table values are allocated up front and handed
// to each other's subquery compilers before either table's operator map
// is populated.
func BuildTables(backend primitives.Backend) (resourceV1, resourceV2, factV2 *dialect.Table) {
	resourceV1 = dialect.NewTable("resource-v1", dialect.Resource)
	resourceV2 = dialect.NewTable("resource-v2", dialect.Resource)
	factV2 = dialect.NewTable("fact-v2", dialect.Fact)

	populateResourceV1(resourceV1, backend)
	populateResourceV2(resourceV2, factV2, backend)
	populateFactV2(factV2, resourceV2, backend)

	return resourceV1, resourceV2, factV2
}

func populateResourceV1(t *dialect.Table, backend primitives.Backend) {
	t.Set("=", ResourceEqV1(backend))
	t.Set("and", CompileAnd)
	t.Set("or", CompileOr)
	t.Set("not", CompileNot)
	for _, op := range []string{"project", "in-result", "select-resources", "select-facts"} {
		t.Set(op, unsupportedInDialect(op, "resource-v1"))
	}
}

func populateResourceV2(t, factV2 *dialect.Table, backend primitives.Backend) {
	t.Set("=", ResourceEqV2(backend))
	t.Set("~", ResourceRegex(backend))
	t.Set("and", CompileAnd)
	t.Set("or", CompileOr)
	t.Set("not", CompileNot)
	t.Set("project", Project)
	t.Set("in-result", InResult)
	t.Set("select-resources", SelectResources(t))
	t.Set("select-facts", SelectFacts(factV2))
}

func populateFactV2(t, resourceV2 *dialect.Table, backend primitives.Backend) {
	t.Set("=", FactEq)
	t.Set("~", FactRegex(backend))
	for _, op := range []string{">", "<", ">=", "<="} {
		t.Set(op, FactIneq(op, backend))
	}
	t.Set("and", CompileAnd)
	t.Set("or", CompileOr)
	t.Set("not", CompileNot)
	t.Set("project", Project)
	t.Set("in-result", InResult)
	t.Set("select-resources", SelectResources(resourceV2))
	t.Set("select-facts", SelectFacts(t))
}
