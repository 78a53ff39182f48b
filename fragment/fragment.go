// Package fragment implements the compiled-SQL-fragment algebra: partial
// `where` expressions that combine by boolean and subquery operators while
// carrying their required joins and positional parameters along without
// duplication or shadowing.
package fragment

import "strings"

// JoinTag names an extra table the finalizer must bring into the FROM
// clause for a fragment's `where` to be valid. The set of tags a given
// dataset kind recognizes is closed and enforced by the finalizers in
// package compiler.
type JoinTag string

// Fragment is a partial compiled SQL boolean expression plus the joins and
// positional parameters it depends on. Every `?` placeholder appearing in
// Where has exactly one corresponding entry in Params, in order. Fragment
// values are produced fresh by every compiler call; nothing in this
// package mutates a Fragment in place.
type Fragment struct {
	// Where is a SQL boolean expression usable directly after WHERE.
	// Parenthesization around it is the caller's responsibility.
	Where string
	// Joins is an ordered, deduplicated (first-appearance-wins) list of
	// join tags the final query must include for Where to resolve.
	Joins []JoinTag
	// Params is the ordered list of scalar values bound to the `?`
	// placeholders appearing in Where, in the same order.
	Params []any
}

// New builds a leaf Fragment: a where clause with no joins, and the given
// params bound in order.
func New(where string, params ...any) Fragment {
	ps := make([]any, len(params))
	copy(ps, params)
	return Fragment{Where: where, Params: ps}
}

// WithJoins returns a copy of f with the given join tags appended (and
// deduplicated against both f's existing joins and each other).
func (f Fragment) WithJoins(tags ...JoinTag) Fragment {
	return Fragment{
		Where:  f.Where,
		Joins:  unionJoins(f.Joins, tags),
		Params: append([]any(nil), f.Params...),
	}
}

// Parenthesized returns f.Where wrapped in parentheses, the form boolean
// combinators use when assembling a compound expression from children.
func (f Fragment) Parenthesized() string {
	return "(" + f.Where + ")"
}

// Combine joins child fragments' Where expressions (each parenthesized)
// with sep (e.g. " AND " or " OR "), concatenating their Params in
// argument order and unioning their Joins with first-appearance order
// preserved. It does not itself wrap the result in parentheses — callers
// that need the combined expression nested further do that themselves.
func Combine(sep string, children ...Fragment) Fragment {
	parts := make([]string, len(children))
	var params []any
	var joins []JoinTag
	for i, c := range children {
		parts[i] = c.Parenthesized()
		params = append(params, c.Params...)
		joins = unionJoins(joins, c.Joins)
	}
	return Fragment{
		Where:  strings.Join(parts, sep),
		Joins:  joins,
		Params: params,
	}
}

// unionJoins appends tags from extra onto base, skipping any tag already
// present in base or already appended from extra, preserving the order in
// which each tag first appears across both inputs.
func unionJoins(base []JoinTag, extra []JoinTag) []JoinTag {
	seen := make(map[JoinTag]bool, len(base)+len(extra))
	out := make([]JoinTag, 0, len(base)+len(extra))
	for _, t := range base {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range extra {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// Select is the finalized result of a `select-resources` or `select-facts`
// subquery: a fully-formed independent SELECT statement with its own
// parameter vector. It is deliberately a distinct type from Fragment —
// only `project` is allowed to consume it (§4.9, §9's "two return shapes
// from compile_term").
type Select struct {
	SQL    string
	Params []any
}
