// Package dialect defines dataset kinds and the operator-table data
// entities that encode, per query language version, which operators exist
// and what each compiles to.
package dialect

// Kind enumerates the two datasets the compiler can target.
type Kind string

const (
	// Resource is the catalog-applied-configuration-object dataset,
	// keyed by node certificate name.
	Resource Kind = "resource"
	// Fact is the key/value node-observation dataset.
	Fact Kind = "fact"
)

// String renders k for error messages.
func (k Kind) String() string { return string(k) }

// resourceColumns is the selectable-column whitelist for the resource
// dataset, kept in declaration order for stable SELECT column ordering and
// sorted on demand for error messages (queryerr sorts independently).
var resourceColumns = []string{
	"certname", "catalog", "resource", "type", "title",
	"tags", "exported", "sourcefile", "sourceline",
}

// factColumns is the selectable-column whitelist for the fact dataset.
var factColumns = []string{"certname", "name", "value"}

// SelectableColumns returns the selectable-column whitelist for k, in the
// stable order the finalizer uses to build a resource SELECT list (for
// Fact, order is not load-bearing beyond determinism).
func SelectableColumns(k Kind) []string {
	switch k {
	case Resource:
		return append([]string(nil), resourceColumns...)
	case Fact:
		return append([]string(nil), factColumns...)
	default:
		return nil
	}
}

// IsSelectable reports whether field is in k's selectable-column whitelist.
func IsSelectable(k Kind, field string) bool {
	for _, c := range SelectableColumns(k) {
		if c == field {
			return true
		}
	}
	return false
}
