package query

import (
	"log/slog"

	"github.com/poki/predicate-to-sql/filter"
)

// Method is the SQL statement a Builder renders.
type Method string

const (
	MethodSelect Method = "SELECT"
	MethodInsert Method = "INSERT"
	MethodUpdate Method = "UPDATE"
	MethodDelete Method = "DELETE"
)

// Builder holds the state of one statement.
type Builder struct {
	converter *filter.Converter
	logger    *slog.Logger

	method     Method
	mutated    bool
	table      string
	columns    []string
	where      bool
	conditions filter.Map
	payload    filter.Map
	order      []string
	related    []string
	limit      any
	offset     any

	// err is the first configuration error, returned by Render and Build.
	err error
}

// New returns a SELECT * Builder for table.
func New(table string, options ...Option) *Builder {
	b := &Builder{
		method: MethodSelect,
		table:  table,
	}
	for _, option := range options {
		if option != nil {
			option(b)
		}
	}
	if b.converter == nil {
		b.converter = filter.NewConverter()
	}
	return b
}

// Method returns the statement method.
func (b *Builder) Method() Method {
	return b.method
}

// Columns sets the projected columns. Without columns, or with "*", every
// column is selected.
func (b *Builder) Columns(columns ...string) *Builder {
	b.columns = columns
	return b
}

// All removes the conditions.
func (b *Builder) All() *Builder {
	b.where = false
	b.conditions = nil
	return b
}

// Get sets the conditions and limits the result to one row. A nil or empty
// map still writes WHERE with the dialect's empty condition.
func (b *Builder) Get(conditions filter.Map) *Builder {
	b.where = true
	b.conditions = conditions
	b.limit = 1
	return b
}

// Filter sets the conditions and removes the limit. Like Get, a nil map keeps
// the WHERE clause; use All to select without conditions.
func (b *Builder) Filter(conditions filter.Map) *Builder {
	b.where = true
	b.conditions = conditions
	b.limit = nil
	return b
}

// OrderBy sets the ordering. A field prefixed with "-" sorts descending.
func (b *Builder) OrderBy(fields ...string) *Builder {
	b.order = fields
	return b
}

// Limit sets the maximum number of rows. The value is coerced to an integer
// when the statement is rendered; nil removes the limit.
func (b *Builder) Limit(limit any) *Builder {
	b.limit = limit
	return b
}

// Offset sets the number of rows to skip. It is only written together with a
// limit.
func (b *Builder) Offset(offset any) *Builder {
	b.offset = offset
	return b
}

// SelectRelated joins the given tables to a SELECT.
func (b *Builder) SelectRelated(tables ...string) *Builder {
	b.related = tables
	return b
}

// Delete turns the statement into a DELETE.
func (b *Builder) Delete() *Builder {
	b.mutate(MethodDelete, nil)
	return b
}

// Update turns the statement into an UPDATE setting payload.
func (b *Builder) Update(payload filter.Map) *Builder {
	b.mutate(MethodUpdate, payload)
	return b
}

// Create turns the statement into an INSERT of payload.
func (b *Builder) Create(payload filter.Map) *Builder {
	b.mutate(MethodInsert, payload)
	return b
}

// mutate records a mutation call. Repeating the same call replaces the
// payload; a different mutation is a configuration error.
func (b *Builder) mutate(method Method, payload filter.Map) {
	if b.mutated && b.method != method {
		if b.err == nil {
			b.err = ConflictingMutationError{First: b.method, Second: method}
		}
		return
	}
	b.mutated = true
	b.method = method
	b.payload = payload
}
