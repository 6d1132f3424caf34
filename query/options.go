package query

import (
	"log/slog"

	"github.com/poki/predicate-to-sql/filter"
)

// Option configures a Builder.
type Option func(*Builder)

// WithConverter sets the converter used for WHERE clauses and literals. Its
// dialect also decides the statement syntax.
func WithConverter(c *filter.Converter) Option {
	return func(b *Builder) {
		b.converter = c
	}
}

// WithLogger is an option to log every rendered statement at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}
