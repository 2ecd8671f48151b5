package stock

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter matches item display names. The zero value matches everything.
//
// A pattern matches as a case-insensitive substring, whatever characters it
// holds. A pattern prefixed with "glob:" is a glob over the whole lower-cased
// name instead.
type Filter struct {
	pattern string
	glob    glob.Glob
}

var lower = cases.Lower(language.Und)

// GlobPrefix marks a pattern as a glob.
const GlobPrefix = "glob:"

// NewFilter compiles a filter from user input. Surrounding spaces are ignored.
func NewFilter(pattern string) (Filter, error) {
	p := lower.String(strings.TrimSpace(pattern))
	if p == "" {
		return Filter{}, nil
	}

	expr, ok := strings.CutPrefix(p, GlobPrefix)
	if !ok {
		return Filter{pattern: p}, nil
	}
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Filter{}, nil
	}
	g, err := glob.Compile(expr)
	if err != nil {
		return Filter{}, fmt.Errorf("stock: invalid glob %q: %w", expr, err)
	}
	return Filter{pattern: p, glob: g}, nil
}

// MustFilter is like NewFilter but panics on an invalid pattern.
func MustFilter(pattern string) Filter {
	f, err := NewFilter(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Empty reports whether the filter matches everything.
func (f Filter) Empty() bool { return f.pattern == "" }

// String returns the normalised pattern.
func (f Filter) String() string { return f.pattern }

// Match reports whether name passes the filter.
func (f Filter) Match(name string) bool {
	if f.pattern == "" {
		return true
	}
	n := lower.String(name)
	if f.glob != nil {
		return f.glob.Match(n)
	}
	return strings.Contains(n, f.pattern)
}
