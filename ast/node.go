// Package ast defines the query tree the compiler walks.
//
// A Node is immutable and polymorphic over four variants: string, number,
// boolean, and list. Lists are operator applications — the first element
// is always a non-empty operator string, the remaining elements are
// operand nodes. Constructors never mutate their arguments; every Node
// handed to the compiler is safe to share across concurrent compilations.
package ast

import (
	"fmt"
	"strings"
)

// Kind tags which variant a Node holds.
type Kind int

const (
	// KindString holds a plain string value (an operand or a field path segment).
	KindString Kind = iota
	// KindNumber holds a numeric literal.
	KindNumber
	// KindBool holds a boolean literal.
	KindBool
	// KindList holds an operator application: Operator() is the operator, Args() the operands.
	KindList
)

// Node is one element of a query tree.
type Node struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []Node
}

// String builds a leaf string node.
func String(s string) Node { return Node{kind: KindString, str: s} }

// Number builds a leaf numeric node.
func Number(n float64) Node { return Node{kind: KindNumber, num: n} }

// Bool builds a leaf boolean node.
func Bool(b bool) Node { return Node{kind: KindBool, b: b} }

// List builds an operator-application node. head is the operator string;
// tail is copied so later mutation of the caller's slice cannot affect
// the returned Node.
func List(head string, tail ...Node) Node {
	cp := make([]Node, len(tail))
	copy(cp, tail)
	return Node{kind: KindList, str: head, list: cp}
}

// Kind reports which variant n holds.
func (n Node) Kind() Kind { return n.kind }

// IsList reports whether n is an operator application.
func (n Node) IsList() bool { return n.kind == KindList }

// StringValue returns the string payload. Valid for KindString and, as the
// operator name, for KindList.
func (n Node) StringValue() string { return n.str }

// NumberValue returns the numeric payload. Valid for KindNumber.
func (n Node) NumberValue() float64 { return n.num }

// BoolValue returns the boolean payload. Valid for KindBool.
func (n Node) BoolValue() bool { return n.b }

// Operator returns the head of a list node (the operator name, unchanged case).
func (n Node) Operator() string { return n.str }

// Args returns the tail of a list node (the operand nodes). The caller
// must not mutate the returned slice.
func (n Node) Args() []Node { return n.list }

// Truthy reports whether n should be treated as "true" for predicates like
// `["node" "active"]` whose value may arrive as a bool or as any other
// scalar. Only an explicit false boolean is falsy; everything else,
// including zero and the empty string, is truthy — matching how the
// source query language has no separate "falsy" literal beyond `false`.
func (n Node) Truthy() bool {
	if n.kind == KindBool {
		return n.b
	}
	return true
}

// RawValue returns the leaf payload as an any, suitable for use as a bound
// SQL parameter. Calling it on a list node panics — lists are never valid
// operands for a parameter position.
func (n Node) RawValue() any {
	switch n.kind {
	case KindString:
		return n.str
	case KindNumber:
		return n.num
	case KindBool:
		return n.b
	default:
		panic(fmt.Sprintf("ast: RawValue called on list node %q", n.str))
	}
}

// Scalar renders the leaf payload as a string, the representation fact
// values are stored and compared as (§4.6: "fact values are stored as
// strings").
func (n Node) Scalar() string {
	switch n.kind {
	case KindString:
		return n.str
	case KindNumber:
		return formatNumber(n.num)
	case KindBool:
		if n.b {
			return "true"
		}
		return "false"
	default:
		panic(fmt.Sprintf("ast: Scalar called on list node %q", n.str))
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// String renders n in the nested-list notation queries are written in,
// used by error messages that must show "the full offending node" (§4.1).
func (n Node) String() string {
	switch n.kind {
	case KindString:
		return fmt.Sprintf("%q", n.str)
	case KindNumber:
		return formatNumber(n.num)
	case KindBool:
		if n.b {
			return "true"
		}
		return "false"
	case KindList:
		parts := make([]string, 0, len(n.list)+1)
		parts = append(parts, fmt.Sprintf("%q", n.str))
		for _, a := range n.list {
			parts = append(parts, a.String())
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return "<invalid>"
	}
}

// Path describes a field reference: either a bare column name (Namespace
// empty) or a two-element ["namespace" "member"] list.
type Path struct {
	Namespace string
	Member    string
}

// Bare reports whether p is a bare-string path (no namespace).
func (p Path) Bare() bool { return p.Namespace == "" }

// AsPath interprets a Node as a path operand: a bare string, or a
// two-element list of strings. Any other shape is reported as not-ok so
// callers can raise the appropriate UnqueryableField error with context.
func AsPath(n Node) (Path, bool) {
	switch n.kind {
	case KindString:
		return Path{Member: n.str}, true
	case KindList:
		if n.str == "" {
			return Path{}, false
		}
		args := n.list
		if len(args) != 1 || args[0].kind != KindString {
			return Path{}, false
		}
		return Path{Namespace: n.str, Member: args[0].str}, true
	default:
		return Path{}, false
	}
}
