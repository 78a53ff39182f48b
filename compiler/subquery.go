package compiler

import (
	"fmt"
	"strings"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/fragment"
	"github.com/oxhq/queryc/queryerr"
)

// Project implements `project(field, subquery)` (spec §4.9). subquery
// must be a list headed by select-resources or select-facts; field must
// be selectable for that sub-select's dataset kind. The resulting
// Fragment's Where is a column-bearing SQL expression
// "SELECT r1.<field> FROM (<subselect>) r1", not a boolean — InResult is
// its consumer. Nothing checks that: a boolean combinator or a finalizer
// given a project term accepts it like any other Fragment.
func Project(table *dialect.Table, args []ast.Node) (dialect.Term, error) {
	if len(args) != 2 {
		return nil, &queryerr.Arity{Operator: "project", Want: 2, Got: len(args)}
	}
	fieldNode, subquery := args[0], args[1]
	if fieldNode.Kind() != ast.KindString {
		return nil, queryerr.NewMalformed("project field operand must be a string")
	}
	field := fieldNode.StringValue()

	if !subquery.IsList() {
		return nil, queryerr.NewBadSubquery("argument to project must be a select operator")
	}
	kind, ok := selectKind(subquery.Operator())
	if !ok {
		return nil, queryerr.NewBadSubquery("argument to project must be a select operator")
	}
	if !dialect.IsSelectable(kind, field) {
		return nil, &queryerr.UnqueryableField{Field: field, Allowed: dialect.SelectableColumns(kind), Context: fmt.Sprintf("%s projection", kind)}
	}

	result, err := CompileTerm(table, subquery)
	if err != nil {
		return nil, err
	}
	sel, ok := result.(fragment.Select)
	if !ok {
		return nil, queryerr.NewBadSubquery("argument to project must be a select operator")
	}

	return fragment.Fragment{
		Where:  fmt.Sprintf("SELECT r1.%s FROM (%s) r1", field, sel.SQL),
		Params: sel.Params,
	}, nil
}

// InResult implements `in-result(field, subquery)` (spec §4.9): field
// must be selectable for the table's own dataset kind, subquery must be
// headed by `project`. Wraps the project's column-bearing expression in
// "<field> IN (...)".
func InResult(table *dialect.Table, args []ast.Node) (dialect.Term, error) {
	if len(args) != 2 {
		return nil, &queryerr.Arity{Operator: "in-result", Want: 2, Got: len(args)}
	}
	fieldNode, subquery := args[0], args[1]
	if fieldNode.Kind() != ast.KindString {
		return nil, queryerr.NewMalformed("in-result field operand must be a string")
	}
	field := fieldNode.StringValue()
	if !dialect.IsSelectable(table.Kind, field) {
		return nil, &queryerr.UnqueryableField{Field: field, Allowed: dialect.SelectableColumns(table.Kind), Context: string(table.Kind)}
	}

	if !subquery.IsList() || !strings.EqualFold(subquery.Operator(), "project") {
		return nil, queryerr.NewBadSubquery("argument to in-result must be project")
	}

	result, err := CompileTerm(table, subquery)
	if err != nil {
		return nil, err
	}
	proj, ok := result.(fragment.Fragment)
	if !ok {
		return nil, queryerr.NewBadSubquery("argument to in-result must be project")
	}

	return fragment.Fragment{
		Where:  fmt.Sprintf("%s IN (%s)", field, proj.Where),
		Joins:  proj.Joins,
		Params: proj.Params,
	}, nil
}

func selectKind(operator string) (dialect.Kind, bool) {
	switch strings.ToLower(operator) {
	case "select-resources":
		return dialect.Resource, true
	case "select-facts":
		return dialect.Fact, true
	default:
		return "", false
	}
}

// SelectResources builds the `select-resources` compiler: it always
// finalizes against resourceTable regardless of which table dispatched
// it (spec §4.10 — both resource-v2 and fact-v2 bind select-resources to
// the same v2 resource finalizer). Its result is a fragment.Select, not a
// fragment.Fragment — only Project is allowed to consume it.
func SelectResources(resourceTable *dialect.Table) dialect.CompileFunc {
	return func(_ *dialect.Table, args []ast.Node) (dialect.Term, error) {
		if len(args) != 1 {
			return nil, &queryerr.Arity{Operator: "select-resources", Want: 1, Got: len(args)}
		}
		return ResourceQueryToSelect(resourceTable, args[0])
	}
}

// SelectFacts builds the `select-facts` compiler, mirroring SelectResources
// for the fact dataset.
func SelectFacts(factTable *dialect.Table) dialect.CompileFunc {
	return func(_ *dialect.Table, args []ast.Node) (dialect.Term, error) {
		if len(args) != 1 {
			return nil, &queryerr.Arity{Operator: "select-facts", Want: 1, Got: len(args)}
		}
		return FactQueryToSelect(factTable, args[0])
	}
}

// unsupportedInDialect builds a CompileFunc that unconditionally fails
// with UnsupportedInDialect, used to register subquery operators on
// resource-v1's table (spec §4.10: v1 knows these operator names exist in
// the language but refuses all of them).
func unsupportedInDialect(operator, dialectName string) dialect.CompileFunc {
	return func(_ *dialect.Table, _ []ast.Node) (dialect.Term, error) {
		return nil, &queryerr.UnsupportedInDialect{Operator: operator, Dialect: dialectName}
	}
}
