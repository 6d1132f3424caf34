package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect decides how identifiers, literals and placeholders are written.
type Dialect struct {
	name           string
	identQuote     string
	stringQuote    string
	dateLayout     string
	listOpen       string
	listClose      string
	emptyList      string
	emptyCondition string
	numbered       bool
	arrayAny       bool
	grouped        bool
}

var (
	// Textual writes backtick identifiers, double quoted strings and bracket
	// lists, with SET, ORDER BY and LEFT JOIN lists in parentheses and a comma
	// separated LIMIT offset. It is the default.
	Textual = Dialect{
		name:        "textual",
		identQuote:  "`",
		stringQuote: `"`,
		dateLayout:  "2006-01-02 15:04:05",
		listOpen:    "[",
		listClose:   "]",
		grouped:     true,
	}

	// Postgres writes statements PostgreSQL accepts. Bound IN lists become
	// = ANY($n) with the whole list as one argument.
	Postgres = Dialect{
		name:           "postgres",
		identQuote:     `"`,
		stringQuote:    `'`,
		dateLayout:     "2006-01-02T15:04:05.999999999Z07:00",
		listOpen:       "(",
		listClose:      ")",
		emptyList:      "FALSE",
		emptyCondition: "FALSE",
		numbered:       true,
		arrayAny:       true,
	}

	// SQLite writes statements SQLite accepts.
	SQLite = Dialect{
		name:           "sqlite",
		identQuote:     `"`,
		stringQuote:    `'`,
		dateLayout:     "2006-01-02 15:04:05",
		listOpen:       "(",
		listClose:      ")",
		emptyList:      "FALSE",
		emptyCondition: "FALSE",
	}
)

// LookupDialect returns the dialect with the given name.
func LookupDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "textual", "text":
		return Textual, nil
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unknown dialect: %s", name)
}

// Name returns the lowercase dialect name, e.g. "postgres".
func (d Dialect) Name() string {
	return d.name
}

// Quote escapes and quotes an identifier.
//
// Textual only doubles single quotes; a backtick inside the name is written
// as is.
func (d Dialect) Quote(name string) string {
	if d.identQuote == "`" {
		return "`" + Escape(name) + "`"
	}
	return d.identQuote + strings.ReplaceAll(name, d.identQuote, d.identQuote+d.identQuote) + d.identQuote
}

// GroupedClauses reports whether SET, ORDER BY and LEFT JOIN lists are
// wrapped in parentheses, LIMIT takes a comma separated offset and joins
// follow the WHERE clause.
func (d Dialect) GroupedClauses() bool {
	return d.grouped
}

func (d Dialect) quoteString(s string) string {
	return d.stringQuote + Escape(s) + d.stringQuote
}

func (d Dialect) placeholder(n int) string {
	if d.numbered {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func (d Dialect) isZero() bool {
	return d.name == ""
}
