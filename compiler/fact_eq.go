package compiler

import (
	"fmt"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/fragment"
	"github.com/oxhq/queryc/queryerr"
)

var factEqFields = []string{"certname", "name", "value"}

// FactEq implements `=` for the fact dataset (spec §4.6).
func FactEq(table *dialect.Table, args []ast.Node) (dialect.Term, error) {
	if len(args) != 2 {
		return nil, &queryerr.Arity{Operator: "=", Want: 2, Got: len(args)}
	}
	path, ok := ast.AsPath(args[0])
	if !ok {
		return nil, queryerr.NewMalformed(fmt.Sprintf("= path operand must be a bare string or [namespace member] list, got %s", args[0]))
	}
	value := args[1]

	if path.Bare() {
		switch path.Member {
		case "name":
			return fragment.New("certname_facts.name = ?", value.RawValue()), nil
		case "value":
			// Fact values are stored as strings (spec §4.6).
			return fragment.New("certname_facts.value = ?", value.Scalar()), nil
		case "certname":
			return fragment.New("certname_facts.certname = ?", value.RawValue()), nil
		}
	}

	if !path.Bare() && path.Namespace == "node" && path.Member == "active" {
		where := "certnames.deactivated IS NULL"
		if !value.Truthy() {
			where = "certnames.deactivated IS NOT NULL"
		}
		return fragment.Fragment{Where: where, Joins: []fragment.JoinTag{CertnamesJoin}}, nil
	}

	return nil, &queryerr.UnqueryableField{
		Field:   pathLabel(path),
		Allowed: sortedCopy(append(append([]string(nil), factEqFields...), "node.active")),
		Context: "facts",
	}
}
