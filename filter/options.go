package filter

import (
	"database/sql"
	"database/sql/driver"
	"log/slog"
)

// Option configures a Converter.
type Option func(*Converter)

// WithDialect is the option to choose how identifiers, literals and
// placeholders are written. The default is Textual.
func WithDialect(d Dialect) Option {
	return func(c *Converter) {
		c.dialect = d
	}
}

// WithAllowColumns is an option to allow only the specified columns in the query.
func WithAllowColumns(columns ...string) Option {
	return func(c *Converter) {
		c.allowedColumns = append(c.allowedColumns, columns...)
	}
}

// WithDisallowColumns is an option to disallow the specified columns in the query.
func WithDisallowColumns(columns ...string) Option {
	return func(c *Converter) {
		c.disallowedColumns = append(c.disallowedColumns, columns...)
	}
}

// WithArrayDriver is an option to specify a custom driver to convert array values
// to Postgres driver compatible types. It is only used for bound IN lists of
// the Postgres dialect.
// An example for github.com/lib/pq is:
//
//	c := filter.NewConverter(filter.WithDialect(filter.Postgres), filter.WithArrayDriver(pq.Array))
//
// For github.com/jackc/pgx this option is not needed.
func WithArrayDriver(f func(a any) interface {
	driver.Valuer
	sql.Scanner
}) Option {
	return func(c *Converter) {
		c.arrayDriver = f
	}
}

// WithEmptyCondition is an option to specify the condition to be used when the
// input filter is empty.
//
// The Textual dialect defaults to an empty group `(  )`, Postgres and SQLite
// default to `FALSE`.
func WithEmptyCondition(condition string) Option {
	return func(c *Converter) {
		c.emptyCondition = condition
	}
}

// WithStrictOperators is an option to reject operators outside the known
// vocabulary instead of falling back to equality.
func WithStrictOperators() Option {
	return func(c *Converter) {
		c.strict = true
	}
}

// WithDateLayout overrides the time layout used for inline date literals.
func WithDateLayout(layout string) Option {
	return func(c *Converter) {
		c.dateLayout = layout
	}
}

// WithLogger is an option to log every compiled condition at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}
