// Package queryerr defines the typed failures the compiler raises. Every
// error kind from spec §7 gets its own type so callers can type-switch on
// the failure instead of parsing messages, while Error() still renders a
// message detailed enough for a human (or an HTTP handler the core does
// not own) to act on directly.
package queryerr

import (
	"fmt"
	"sort"
	"strings"
)

// Malformed reports a node shaped wrong for a term: not a list, an empty
// list, or a variadic combinator given zero terms.
type Malformed struct {
	Reason string
}

func (e *Malformed) Error() string { return "malformed query: " + e.Reason }

// NewMalformed builds a Malformed with the given reason.
func NewMalformed(reason string) *Malformed { return &Malformed{Reason: reason} }

// UnknownOperator reports an operator absent from the active dialect table.
type UnknownOperator struct {
	Operator string
	Node     string
}

func (e *UnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator %q in %s", e.Operator, e.Node)
}

// UnsupportedInDialect reports an operator the language defines but the
// active dialect refuses (e.g. subqueries in resource-v1).
type UnsupportedInDialect struct {
	Operator string
	Dialect  string
}

func (e *UnsupportedInDialect) Error() string {
	return fmt.Sprintf("operator %q is not supported in dialect %s", e.Operator, e.Dialect)
}

// Arity reports a fixed-arity leaf given the wrong number of operands.
type Arity struct {
	Operator string
	Want     int
	Got      int
}

func (e *Arity) Error() string {
	return fmt.Sprintf("%s requires %d argument(s), got %d", e.Operator, e.Want, e.Got)
}

// UnqueryableField reports a path that is not queryable for the current
// dataset/operator combination. Allowed is rendered alphabetically, as
// spec §7 requires.
type UnqueryableField struct {
	Field   string
	Allowed []string
	Context string // e.g. "facts", "resource regexp"
}

func (e *UnqueryableField) Error() string {
	allowed := append([]string(nil), e.Allowed...)
	sort.Strings(allowed)
	ctx := e.Context
	if ctx != "" {
		ctx = " for " + ctx
	}
	return fmt.Sprintf("field %q is not queryable%s; acceptable fields: %s",
		e.Field, ctx, strings.Join(allowed, ", "))
}

// BadSubquery reports a `project` given a non-select child, or an
// `in-result` given a non-`project` child.
type BadSubquery struct {
	Reason string
}

func (e *BadSubquery) Error() string { return "bad subquery: " + e.Reason }

// NewBadSubquery builds a BadSubquery with the given reason.
func NewBadSubquery(reason string) *BadSubquery { return &BadSubquery{Reason: reason} }

// TypeError reports a value that does not parse as the type a predicate
// requires, e.g. a non-numeric value to a fact inequality.
type TypeError struct {
	Value string
	Want  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value %q must be a %s", e.Value, e.Want)
}

// UnknownJoinTag reports a join tag the finalizer's join table for the
// current dataset kind does not recognize. This is an internal-consistency
// failure — every tag a compiler attaches to a Fragment must be one the
// finalizer resolves — but it is surfaced the same way as the caller-facing
// errors above so a misconfigured dialect table fails loudly rather than
// emitting invalid SQL.
type UnknownJoinTag struct {
	Tag  string
	Kind string
}

func (e *UnknownJoinTag) Error() string {
	return fmt.Sprintf("unknown join tag %q for dataset kind %s", e.Tag, e.Kind)
}
