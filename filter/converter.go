package filter

import (
	"database/sql"
	"database/sql/driver"
	"log/slog"
	"slices"
	"strings"
)

// Converter compiles predicate maps into condition groups for one dialect.
// The zero value writes the Textual dialect.
type Converter struct {
	dialect           Dialect
	allowedColumns    []string
	disallowedColumns []string
	arrayDriver       func(a any) interface {
		driver.Valuer
		sql.Scanner
	}
	emptyCondition string
	dateLayout     string
	strict         bool
	logger         *slog.Logger
}

// NewConverter creates a new Converter. Without options it writes the Textual
// dialect.
func NewConverter(options ...Option) *Converter {
	converter := &Converter{}
	for _, option := range options {
		if option != nil {
			option(converter)
		}
	}
	return converter
}

// Q converts m with a default Converter.
func Q(m Map) (string, error) {
	return NewConverter().Convert(m)
}

// Dialect returns the dialect the converter writes.
func (c *Converter) Dialect() Dialect {
	if c.dialect.isZero() {
		return Textual
	}
	return c.dialect
}

// Convert converts a predicate map into a parenthesized condition group with
// all literals written inline, e.g. ( `age` >= 18 AND `name` = "john" ).
func (c *Converter) Convert(m Map) (string, error) {
	return c.Where(m, nil)
}

// ConvertParams converts a predicate map into a condition group whose literals
// are bound to placeholders, numbered from startAtParameterIndex for dialects
// with numbered placeholders.
func (c *Converter) ConvertParams(m Map, startAtParameterIndex int) (string, []any, error) {
	if startAtParameterIndex < 1 {
		return "", nil, ErrInvalidParameterIndex
	}
	args := NewArgs(startAtParameterIndex)
	conditions, err := c.Where(m, args)
	if err != nil {
		return "", nil, err
	}
	return conditions, args.Values(), nil
}

// Where converts m, binding literals to args when args is not nil. Nothing is
// added to args unless the whole map converts.
func (c *Converter) Where(m Map, args *Args) (string, error) {
	if len(m) == 0 {
		return c.empty(), nil
	}

	var staged *Args
	if args != nil {
		staged = NewArgs(args.start + len(args.values))
	}

	conditions := make([]string, 0, len(m))
	for _, pair := range m {
		condition, err := c.condition(pair, staged)
		if err != nil {
			return "", err
		}
		conditions = append(conditions, condition)
	}

	if args != nil {
		args.values = append(args.values, staged.values...)
	}
	return "( " + strings.Join(conditions, " AND ") + " )", nil
}

// Literal encodes a single value the way payload columns and IN list elements
// are written: numbers bare, booleans and null as keywords, everything else
// quoted. Arrays, objects and Undefined are rejected.
func (c *Converter) Literal(field string, v any, args *Args) (string, error) {
	return c.literal(field, ValueOf(v), args)
}

func (c *Converter) condition(pair Pair, args *Args) (string, error) {
	key := ParseKey(pair.Key)
	if key.Field == "" {
		return "", InvalidFieldError{Key: pair.Key}
	}
	if err := c.checkColumn(key.Field); err != nil {
		return "", err
	}

	value := ValueOf(pair.Value)
	condition, err := c.render(key, value, args)
	if err != nil {
		return "", err
	}

	if c.logger != nil {
		c.logger.Debug("condition compiled",
			"field", key.Field,
			"operator", string(key.Operator),
			"kind", value.Kind().String(),
			"condition", condition,
		)
	}
	return condition, nil
}

func (c *Converter) checkColumn(column string) error {
	if len(c.allowedColumns) > 0 && !slices.Contains(c.allowedColumns, column) {
		return ColumnNotAllowedError{Column: column}
	}
	if slices.Contains(c.disallowedColumns, column) {
		return ColumnNotAllowedError{Column: column}
	}
	return nil
}

func (c *Converter) empty() string {
	if c.emptyCondition != "" {
		return c.emptyCondition
	}
	if d := c.Dialect(); d.emptyCondition != "" {
		return d.emptyCondition
	}
	return "(  )"
}
