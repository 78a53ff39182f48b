// Package testutil provides shared helpers for the compiler's test
// suites: fixture discovery and readable SQL diffs on assertion failure.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// FixtureFiles returns every file under root matching pattern (a
// doublestar glob, so "**/*.json" recurses), sorted for deterministic
// test iteration order.
func FixtureFiles(root, pattern string) ([]string, error) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("testutil: glob fixtures: %w", err)
	}
	sort.Strings(matches)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = filepath.Join(root, m)
	}
	return out, nil
}

// DiffSQL renders a unified diff between the expected and actual SQL
// strings, used in test failure messages so a mismatched WHERE clause is
// readable instead of one giant string comparison.
func DiffSQL(expected, actual string) string {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return fmt.Sprintf("(diff error: %v)", err)
	}
	return text
}
