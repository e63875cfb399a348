// Package filter provides expression-based filtering for listed records.
// Expressions use the expr language and are evaluated against a per-record
// environment built by the Env* functions.
package filter

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled filter expression.
type Filter struct {
	program    *vm.Program
	base       map[string]any
	expression string
}

// Compile compiles a filter expression. Variables not present in a record's
// environment evaluate to nil rather than failing compilation.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	base := helpers()
	program, err := expr.Compile(expression,
		expr.Env(base),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{program: program, base: base, expression: expression}, nil
}

// Match evaluates the filter against a record environment. Evaluation errors
// and non-boolean results count as no match. The helper map is built once at
// compile time; only the record fields are layered on per call.
func (f *Filter) Match(env map[string]any) bool {
	merged := maps.Clone(f.base)
	for k, v := range env {
		merged[k] = v
	}

	result, err := expr.Run(f.program, merged)
	if err != nil {
		return false
	}

	match, ok := result.(bool)
	return ok && match
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.expression
}

// Apply returns the items whose environment matches the filter, preserving
// input order. A nil filter matches everything.
func Apply[T any](f *Filter, items []T, envFor func(T) map[string]any) []T {
	if f == nil {
		return items
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if f.Match(envFor(item)) {
			matched = append(matched, item)
		}
	}
	return matched
}

// helpers returns the functions available in every filter expression.
func helpers() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"parseDate": parseDate,

		// Case-insensitive string helpers. contains/startsWith/endsWith are
		// infix operators in the expression language and cannot be used as
		// function names, so these get their own.
		"hasText": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		"now": time.Now,
	}
}

// parseDate parses the date formats the API returns. The zero time is
// returned for anything unparseable.
func parseDate(dateStr string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t
		}
	}
	return time.Time{}
}
