package filter

// Kind is the semantic type of a predicate value.
type Kind int

const (
	KindUndefined Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindNull
	KindArray
	KindObject
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindDate:
		return "date"
	default:
		return "undefined"
	}
}

// Classify returns the kind of v. It never fails: values that have no better
// match are strings.
func Classify(v any) Kind {
	return ValueOf(v).Kind()
}
