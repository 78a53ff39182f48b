package compiler

import (
	"fmt"
	"strings"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/fragment"
	"github.com/oxhq/queryc/queryerr"
)

// joinTables maps a join tag to its SQL for a given dataset kind (spec
// §4.11's "known join mappings"). Unknown tags are a query-free win: they
// only ever exist because a compiler attached one, so hitting the default
// branch means a dialect table is misconfigured, not that the caller
// wrote a bad query.
func joinTables(kind dialect.Kind, tag fragment.JoinTag) (string, error) {
	switch {
	case tag == CertnamesJoin && kind == dialect.Resource:
		return "INNER JOIN certnames ON certname_catalogs.certname = certnames.name", nil
	case tag == CertnamesJoin && kind == dialect.Fact:
		return "INNER JOIN certnames ON certname_facts.certname = certnames.name", nil
	default:
		return "", &queryerr.UnknownJoinTag{Tag: string(tag), Kind: string(kind)}
	}
}

func joinClause(kind dialect.Kind, tags []fragment.JoinTag) (string, error) {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		sql, err := joinTables(kind, tag)
		if err != nil {
			return "", err
		}
		parts[i] = sql
	}
	return strings.Join(parts, " "), nil
}

// ResourceQueryToSelect compiles query against table and assembles the
// finalized resource SELECT, returning it as a fragment.Select for
// `select-resources` to embed in an enclosing `project`.
func ResourceQueryToSelect(table *dialect.Table, query ast.Node) (fragment.Select, error) {
	result, err := CompileTerm(table, query)
	if err != nil {
		return fragment.Select{}, err
	}
	frag, ok := result.(fragment.Fragment)
	if !ok {
		return fragment.Select{}, queryerr.NewMalformed("select-resources root term must compile to a boolean expression")
	}

	joins, err := joinClause(dialect.Resource, frag.Joins)
	if err != nil {
		return fragment.Select{}, err
	}

	cols := strings.Join(dialect.SelectableColumns(dialect.Resource), ", ")
	sql := fmt.Sprintf(
		"SELECT %s FROM catalog_resources JOIN certname_catalogs USING(catalog) %s WHERE %s",
		cols, joins, frag.Where,
	)
	return fragment.Select{SQL: sql, Params: frag.Params}, nil
}

// FactQueryToSelect mirrors ResourceQueryToSelect for the fact dataset.
func FactQueryToSelect(table *dialect.Table, query ast.Node) (fragment.Select, error) {
	result, err := CompileTerm(table, query)
	if err != nil {
		return fragment.Select{}, err
	}
	frag, ok := result.(fragment.Fragment)
	if !ok {
		return fragment.Select{}, queryerr.NewMalformed("select-facts root term must compile to a boolean expression")
	}

	joins, err := joinClause(dialect.Fact, frag.Joins)
	if err != nil {
		return fragment.Select{}, err
	}

	sql := fmt.Sprintf(
		"SELECT certname_facts.certname, certname_facts.name, certname_facts.value FROM certname_facts %s WHERE %s",
		joins, frag.Where,
	)
	return fragment.Select{SQL: sql, Params: frag.Params}, nil
}

// ResourceQueryToSQL is the top-level resource entry point (spec §6.2):
// compile query against table and return the finalized SQL string plus
// its positional parameters.
func ResourceQueryToSQL(table *dialect.Table, query ast.Node) (string, []any, error) {
	sel, err := ResourceQueryToSelect(table, query)
	if err != nil {
		return "", nil, err
	}
	return sel.SQL, sel.Params, nil
}

// FactQueryToSQL is the top-level fact entry point (spec §6.2).
func FactQueryToSQL(table *dialect.Table, query ast.Node) (string, []any, error) {
	sel, err := FactQueryToSelect(table, query)
	if err != nil {
		return "", nil, err
	}
	return sel.SQL, sel.Params, nil
}
