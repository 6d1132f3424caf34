package query

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/poki/predicate-to-sql/filter"
)

// Render writes the statement with every literal inline. Rendering does not
// change the Builder, so calling it twice gives the same text.
func (b *Builder) Render() (string, error) {
	return b.render(nil)
}

// Build writes the statement with literals bound to placeholders, numbered
// from startAtParameterIndex for dialects with numbered placeholders.
func (b *Builder) Build(startAtParameterIndex int) (string, []any, error) {
	if startAtParameterIndex < 1 {
		return "", nil, filter.ErrInvalidParameterIndex
	}
	args := filter.NewArgs(startAtParameterIndex)
	statement, err := b.render(args)
	if err != nil {
		return "", nil, err
	}
	return statement, args.Values(), nil
}

type writer struct {
	b    *Builder
	d    filter.Dialect
	args *filter.Args
	sb   strings.Builder
}

func (b *Builder) render(args *filter.Args) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.table == "" {
		return "", ErrNoTable
	}

	w := &writer{b: b, d: b.converter.Dialect(), args: args}
	var err error
	switch b.method {
	case MethodSelect:
		err = w.selectStatement()
	case MethodInsert:
		err = w.insertStatement()
	case MethodUpdate:
		err = w.updateStatement()
	case MethodDelete:
		err = w.deleteStatement()
	default:
		err = UnknownMethodError{Method: b.method}
	}
	if err != nil {
		return "", err
	}
	w.sb.WriteString(";")

	statement := w.sb.String()
	if b.logger != nil {
		b.logger.Debug("statement rendered",
			"method", string(b.method),
			"table", b.table,
			"dialect", w.d.Name(),
			"statement", statement,
		)
	}
	return statement, nil
}

func (w *writer) selectStatement() error {
	w.sb.WriteString("SELECT " + w.columns() + " FROM " + w.d.Quote(w.b.table))
	if !w.d.GroupedClauses() {
		w.joins()
	}
	if err := w.where(); err != nil {
		return err
	}
	if w.d.GroupedClauses() {
		w.joins()
	}
	if err := w.orderBy(); err != nil {
		return err
	}
	return w.limit()
}

func (w *writer) insertStatement() error {
	if len(w.b.payload) == 0 {
		return ErrEmptyPayload
	}
	columns := make([]string, 0, len(w.b.payload))
	values := make([]string, 0, len(w.b.payload))
	for _, pair := range w.b.payload {
		if pair.Key == "" {
			return filter.InvalidFieldError{Key: pair.Key}
		}
		value, err := w.b.converter.Literal(pair.Key, pair.Value, w.args)
		if err != nil {
			return err
		}
		columns = append(columns, w.d.Quote(pair.Key))
		values = append(values, value)
	}
	w.sb.WriteString("INSERT INTO " + w.d.Quote(w.b.table) + " " + w.group(strings.Join(columns, ", ")) +
		" VALUES " + w.group(strings.Join(values, ", ")))
	return nil
}

func (w *writer) updateStatement() error {
	if len(w.b.payload) == 0 {
		return ErrEmptyPayload
	}
	set := make([]string, 0, len(w.b.payload))
	for _, pair := range w.b.payload {
		if pair.Key == "" {
			return filter.InvalidFieldError{Key: pair.Key}
		}
		value, err := w.b.converter.Literal(pair.Key, pair.Value, w.args)
		if err != nil {
			return err
		}
		set = append(set, w.d.Quote(pair.Key)+" = "+value)
	}

	list := strings.Join(set, ", ")
	if w.d.GroupedClauses() {
		list = "( " + list + " )"
	}
	w.sb.WriteString("UPDATE " + w.d.Quote(w.b.table) + " SET " + list)
	if err := w.where(); err != nil {
		return err
	}
	return w.limit()
}

func (w *writer) deleteStatement() error {
	w.sb.WriteString("DELETE FROM " + w.d.Quote(w.b.table))
	if err := w.where(); err != nil {
		return err
	}
	return w.limit()
}

func (w *writer) columns() string {
	if len(w.b.columns) == 0 {
		return "*"
	}
	columns := make([]string, len(w.b.columns))
	for i, column := range w.b.columns {
		if column == "*" {
			columns[i] = column
			continue
		}
		columns[i] = w.d.Quote(column)
	}
	return strings.Join(columns, ", ")
}

func (w *writer) where() error {
	if !w.b.where {
		return nil
	}
	conditions, err := w.b.converter.Where(w.b.conditions, w.args)
	if err != nil {
		return err
	}
	w.sb.WriteString(" WHERE " + conditions)
	return nil
}

// joins writes the related tables. Grouped dialects list them in one LEFT
// JOIN group; the others join each table on its id through <table>_id.
func (w *writer) joins() {
	if len(w.b.related) == 0 {
		return
	}
	if w.d.GroupedClauses() {
		tables := make([]string, len(w.b.related))
		for i, table := range w.b.related {
			tables[i] = w.d.Quote(table)
		}
		w.sb.WriteString(" LEFT JOIN ( " + strings.Join(tables, ", ") + " )")
		return
	}
	base := w.d.Quote(w.b.table)
	for _, table := range w.b.related {
		related := w.d.Quote(table)
		w.sb.WriteString(" LEFT JOIN " + related + " ON " + related + "." + w.d.Quote("id") +
			" = " + base + "." + w.d.Quote(table+"_id"))
	}
}

func (w *writer) orderBy() error {
	if len(w.b.order) == 0 {
		return nil
	}
	orders := make([]string, len(w.b.order))
	for i, raw := range w.b.order {
		field, direction := raw, "ASC"
		if strings.HasPrefix(raw, "-") {
			field, direction = raw[1:], "DESC"
		}
		if field == "" {
			return filter.InvalidFieldError{Key: raw}
		}
		orders[i] = w.d.Quote(field) + " " + direction
	}
	list := strings.Join(orders, ", ")
	if w.d.GroupedClauses() {
		list = "( " + list + " )"
	}
	w.sb.WriteString(" ORDER BY " + list)
	return nil
}

func (w *writer) limit() error {
	if w.b.limit == nil {
		return nil
	}
	if w.b.method != MethodSelect && !w.d.GroupedClauses() {
		return LimitNotSupportedError{Dialect: w.d.Name(), Method: w.b.method}
	}

	limit, err := count("limit", w.b.limit)
	if err != nil {
		return err
	}
	w.sb.WriteString(" LIMIT " + strconv.Itoa(limit))
	if w.b.offset == nil {
		return nil
	}
	offset, err := count("offset", w.b.offset)
	if err != nil {
		return err
	}
	if w.d.GroupedClauses() {
		w.sb.WriteString(", " + strconv.Itoa(offset))
	} else {
		w.sb.WriteString(" OFFSET " + strconv.Itoa(offset))
	}
	return nil
}

// group wraps a list in parentheses, padded in grouped dialects.
func (w *writer) group(list string) string {
	if w.d.GroupedClauses() {
		return "( " + list + " )"
	}
	return "(" + list + ")"
}

// count coerces a limit or offset to a non-negative integer. Text is read as
// base 10, so "010" is 10 and prefixes like "0x" are rejected.
func count(name string, v any) (int, error) {
	var n int
	var err error
	switch v := v.(type) {
	case bool:
		return 0, filter.InvalidNumberError{Name: name, Value: v}
	case string:
		n, err = strconv.Atoi(strings.TrimSpace(v))
	default:
		n, err = cast.ToIntE(v)
	}
	if err != nil || n < 0 {
		return 0, filter.InvalidNumberError{Name: name, Value: v}
	}
	return n, nil
}
