// This package converts predicate maps such as {"age__gte": 18} into SQL
// condition groups such as ( `age` >= 18 ).
//
// A key is a field name optionally followed by "__" and an operator
// (startswith, endswith, contains, in, gte, gt, lte, lt, isnull). The kind of
// the value decides which operators apply and how the literal is written.
//
// Conditions can be rendered with literals inlined (Convert) or bound to
// placeholders (ConvertParams). The Textual dialect reproduces the classic
// backtick output; Postgres and SQLite produce statements those engines accept.
package filter
