package filter

import "strings"

// Escape doubles single quotes so s can be placed inside a quoted literal.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Args collects values bound to placeholders while a statement is written.
// A nil *Args means literals are written inline.
type Args struct {
	start  int
	values []any
}

// NewArgs returns an Args whose first placeholder has the given index.
func NewArgs(startAtParameterIndex int) *Args {
	return &Args{start: startAtParameterIndex}
}

// Values returns the bound values in placeholder order.
func (a *Args) Values() []any {
	return a.values
}

func (a *Args) bind(d Dialect, v any) string {
	a.values = append(a.values, v)
	return d.placeholder(a.start + len(a.values) - 1)
}

func isScalar(v Value) bool {
	switch v.(type) {
	case String, Integer, Float, Boolean, Null, Date:
		return true
	default:
		return false
	}
}

// anyOperator reports whether op is one of ops.
func anyOperator(op Operator, ops ...Operator) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}
