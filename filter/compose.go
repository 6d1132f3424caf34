package filter

import "strings"

// And joins condition groups with AND. More than one group is wrapped in
// parentheses so the result can be nested.
func And(groups ...string) string {
	return join(groups, " AND ")
}

// Or joins condition groups with OR. More than one group is wrapped in
// parentheses so the result can be nested.
func Or(groups ...string) string {
	return join(groups, " OR ")
}

// Not negates a condition group.
func Not(group string) string {
	return "NOT " + group
}

func join(groups []string, op string) string {
	result := strings.Join(groups, op)
	if len(groups) > 1 {
		result = "( " + result + " )"
	}
	return result
}
