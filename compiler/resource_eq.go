package compiler

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oxhq/queryc/ast"
	"github.com/oxhq/queryc/dialect"
	"github.com/oxhq/queryc/fragment"
	"github.com/oxhq/queryc/primitives"
	"github.com/oxhq/queryc/queryerr"
)

var lowerCaser = cases.Lower(language.Und)

// resourceEqFields is the bare-string field set §4.3's equality table
// allows, used both for dispatch and for UnqueryableField's alphabetical
// field listing.
var resourceEqFields = []string{
	"catalog", "resource", "type", "title", "tags", "exported", "sourcefile", "sourceline",
}

func sortedCopy(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

// ResourceEqV2 builds the `=` compiler for resource-v2 (spec §4.3).
func ResourceEqV2(backend primitives.Backend) dialect.CompileFunc {
	return func(table *dialect.Table, args []ast.Node) (dialect.Term, error) {
		return compileResourceEq(backend, args, true)
	}
}

// ResourceEqV1 builds the `=` compiler for resource-v1 (spec §4.4):
// identical to v2 except the bare "certname" path is rejected and
// `["node" "name"]` is rewritten to "certname" before delegating.
func ResourceEqV1(backend primitives.Backend) dialect.CompileFunc {
	return func(table *dialect.Table, args []ast.Node) (dialect.Term, error) {
		return compileResourceEq(backend, args, false)
	}
}

func compileResourceEq(backend primitives.Backend, args []ast.Node, v2 bool) (dialect.Term, error) {
	if len(args) != 2 {
		return nil, &queryerr.Arity{Operator: "=", Want: 2, Got: len(args)}
	}
	path, ok := ast.AsPath(args[0])
	if !ok {
		return nil, queryerr.NewMalformed(fmt.Sprintf("= path operand must be a bare string or [namespace member] list, got %s", args[0]))
	}
	value := args[1]

	certnamePath := "certname"
	if !v2 {
		certnamePath = "node.name"
	}
	allowed := sortedCopy(append(append([]string(nil), resourceEqFields...), certnamePath, "tag", "node.active", "parameter.*"))

	if path.Bare() && path.Member == "certname" {
		if !v2 {
			return nil, &queryerr.UnqueryableField{Field: "certname", Allowed: allowed, Context: "resource-v1 equality"}
		}
		return fragment.New("certname_catalogs.certname = ?", value.RawValue()), nil
	}

	if !path.Bare() && path.Namespace == "node" && path.Member == "name" {
		// v1 rewrites ["node" "name"] to "certname"; v2 leaves it
		// unqueryable (it reaches v2's dispatch below as a namespaced
		// path that matches none of v2's recognized shapes).
		if !v2 {
			return fragment.New("certname_catalogs.certname = ?", value.RawValue()), nil
		}
	}

	if path.Bare() && path.Member == "tag" {
		return fragment.New(backend.ArrayContainsMatch("tags"), lowerCaser.String(value.Scalar())), nil
	}

	if !path.Bare() && path.Namespace == "node" && path.Member == "active" {
		where := "certnames.deactivated IS NULL"
		if !value.Truthy() {
			where = "certnames.deactivated IS NOT NULL"
		}
		return fragment.Fragment{Where: where, Joins: []fragment.JoinTag{CertnamesJoin}}, nil
	}

	if !path.Bare() && path.Namespace == "parameter" {
		return fragment.New(
			"catalog_resources.resource IN (SELECT rp.resource FROM resource_params rp WHERE rp.name = ? AND rp.value = ?)",
			path.Member, backend.Serialize(value.RawValue()),
		), nil
	}

	if path.Bare() {
		for _, col := range resourceEqFields {
			if path.Member == col {
				return fragment.New(fmt.Sprintf("catalog_resources.%s = ?", col), value.RawValue()), nil
			}
		}
	}

	return nil, &queryerr.UnqueryableField{
		Field:   pathLabel(path),
		Allowed: allowed,
		Context: "resource equality",
	}
}

// pathLabel renders a Path the way UnqueryableField messages name it.
func pathLabel(p ast.Path) string {
	if p.Bare() {
		return p.Member
	}
	return p.Namespace + "." + p.Member
}
