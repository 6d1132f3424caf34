// Package query builds SELECT, INSERT, UPDATE and DELETE statements around
// conditions compiled by package filter.
//
// A Builder is configured with chained calls and rendered once:
//
//	sql, err := query.New("users").
//		Get(filter.Map{filter.P("email__startswith", "john")}).
//		Columns("email", "name").
//		OrderBy("email", "-name").
//		Render()
//
// Render writes literals inline, Build binds them to placeholders. The
// statement syntax follows the dialect of the Builder's filter.Converter.
//
// A Builder is not safe for concurrent use.
package query
