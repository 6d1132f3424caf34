package filter

import "strings"

// Operator is the suffix after "__" in a predicate key.
type Operator string

const (
	Exact      Operator = "exact"
	StartsWith Operator = "startswith"
	EndsWith   Operator = "endswith"
	Contains   Operator = "contains"
	In         Operator = "in"
	Gte        Operator = "gte"
	Gt         Operator = "gt"
	Lte        Operator = "lte"
	Lt         Operator = "lt"
	IsNull     Operator = "isnull"
)

var comparisons = map[Operator]string{
	Gte:   ">=",
	Gt:    ">",
	Lte:   "<=",
	Lt:    "<",
	Exact: "=",
}

// known reports whether o belongs to the operator vocabulary of any kind.
func (o Operator) known() bool {
	switch o {
	case Exact, StartsWith, EndsWith, Contains, In, Gte, Gt, Lte, Lt, IsNull:
		return true
	}
	return false
}

// Key is a predicate key split into its field and operator.
type Key struct {
	Field    string
	Operator Operator
}

// ParseKey splits raw on the first "__". Without a suffix the operator is
// Exact.
func ParseKey(raw string) Key {
	field, op, _ := strings.Cut(raw, "__")
	if op == "" {
		return Key{Field: field, Operator: Exact}
	}
	return Key{Field: field, Operator: Operator(op)}
}

func (k Key) String() string {
	if k.Operator == Exact {
		return k.Field
	}
	return k.Field + "__" + string(k.Operator)
}
