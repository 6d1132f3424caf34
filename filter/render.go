package filter

import (
	"math"
	"strconv"
	"strings"
)

func (c *Converter) render(key Key, v Value, args *Args) (string, error) {
	column := c.Dialect().Quote(key.Field)

	switch v := v.(type) {
	case String:
		return c.stringCondition(key, column, string(v), args)
	case Integer, Float, Date:
		return c.comparison(key, column, v, args)
	case Boolean:
		return c.booleanCondition(key, column, bool(v))
	case Null:
		return c.nullCondition(key, column)
	case Array:
		return c.arrayCondition(key, column, v, args)
	case Object:
		return c.objectCondition(key, v, args)
	default:
		return "", UnsupportedKindError{Field: key.Field, Kind: v.Kind()}
	}
}

// operator resolves the operator of key against the operators a kind accepts.
// Operators that belong to another kind are rejected; unknown suffixes fall
// back to Exact unless the converter is strict.
func (c *Converter) operator(key Key, kind Kind, accepted ...Operator) (Operator, error) {
	if anyOperator(key.Operator, accepted...) {
		return key.Operator, nil
	}
	if c.strict || key.Operator.known() {
		return "", UnsupportedOperatorError{Field: key.Field, Operator: key.Operator, Kind: kind}
	}
	return Exact, nil
}

func (c *Converter) stringCondition(key Key, column, s string, args *Args) (string, error) {
	op, err := c.operator(key, KindString, Exact, StartsWith, EndsWith, Contains)
	if err != nil {
		return "", err
	}
	switch op {
	case StartsWith:
		return column + " LIKE " + c.text(s+"%", args), nil
	case EndsWith:
		return column + " LIKE " + c.text("%"+s, args), nil
	case Contains:
		return column + " LIKE " + c.text("%"+s+"%", args), nil
	default:
		return column + " = " + c.text(s, args), nil
	}
}

func (c *Converter) comparison(key Key, column string, v Value, args *Args) (string, error) {
	op, err := c.operator(key, v.Kind(), Exact, Gte, Gt, Lte, Lt)
	if err != nil {
		return "", err
	}
	literal, err := c.literal(key.Field, v, args)
	if err != nil {
		return "", err
	}
	return column + " " + comparisons[op] + " " + literal, nil
}

// booleanCondition treats isnull as a nullness test of the column, not of the
// boolean itself.
func (c *Converter) booleanCondition(key Key, column string, b bool) (string, error) {
	op, err := c.operator(key, KindBoolean, Exact, IsNull)
	if err != nil {
		return "", err
	}
	if op == IsNull {
		if b {
			return column + " IS NULL", nil
		}
		return column + " IS NOT NULL", nil
	}
	if b {
		return column + " IS TRUE", nil
	}
	return column + " IS FALSE", nil
}

func (c *Converter) nullCondition(key Key, column string) (string, error) {
	if _, err := c.operator(key, KindNull, Exact); err != nil {
		return "", err
	}
	return column + " IS NULL", nil
}

func (c *Converter) arrayCondition(key Key, column string, arr Array, args *Args) (string, error) {
	if key.Operator != In {
		return "", UnsupportedOperatorError{Field: key.Field, Operator: key.Operator, Kind: KindArray}
	}
	for _, e := range arr {
		if !isScalar(e) {
			return "", UnsupportedKindError{Field: key.Field, Kind: e.Kind()}
		}
	}

	d := c.Dialect()
	if args != nil && d.arrayAny {
		var value any = native(arr)
		if c.arrayDriver != nil {
			value = c.arrayDriver(value)
		}
		return column + " = ANY(" + args.bind(d, value) + ")", nil
	}
	if len(arr) == 0 && d.emptyList != "" {
		return d.emptyList, nil
	}

	items := make([]string, 0, len(arr))
	for _, e := range arr {
		item, err := c.literal(key.Field, e, args)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return column + " IN " + d.listOpen + strings.Join(items, ", ") + d.listClose, nil
}

// objectCondition ignores the operator: an object always references a row by
// its id through the <field>_id column.
func (c *Converter) objectCondition(key Key, o Object, args *Args) (string, error) {
	id, ok := o.ID.(Integer)
	if !ok || id <= 0 {
		return "", InvalidObjectReferenceError{Field: key.Field, ID: o.ID}
	}
	literal, err := c.literal(key.Field, id, args)
	if err != nil {
		return "", err
	}
	return c.Dialect().Quote(key.Field+"_id") + " = " + literal, nil
}

func (c *Converter) literal(field string, v Value, args *Args) (string, error) {
	d := c.Dialect()
	switch v := v.(type) {
	case Integer:
		if args != nil {
			return args.bind(d, int64(v)), nil
		}
		return strconv.FormatInt(int64(v), 10), nil
	case Float:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", InvalidNumberError{Name: field, Value: f}
		}
		if args != nil {
			return args.bind(d, f), nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case Boolean:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case Null:
		return "NULL", nil
	case String:
		return c.text(string(v), args), nil
	case Date:
		if args != nil {
			return args.bind(d, v.Time), nil
		}
		return d.quoteString(v.Format(c.layout())), nil
	default:
		return "", UnsupportedKindError{Field: field, Kind: v.Kind()}
	}
}

func (c *Converter) text(s string, args *Args) string {
	d := c.Dialect()
	if args != nil {
		return args.bind(d, s)
	}
	return d.quoteString(s)
}

func (c *Converter) layout() string {
	if c.dateLayout != "" {
		return c.dateLayout
	}
	return c.Dialect().dateLayout
}
