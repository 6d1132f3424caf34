package query

import (
	"errors"
	"fmt"
)

var (
	ErrNoTable      = errors.New("table name is required")
	ErrEmptyPayload = errors.New("mutation payload is empty")
)

// UnknownMethodError is returned when a statement has a method outside
// SELECT, INSERT, UPDATE and DELETE.
type UnknownMethodError struct {
	Method Method
}

func (e UnknownMethodError) Error() string {
	return fmt.Sprintf("unsupported statement method: %s", e.Method)
}

// ConflictingMutationError is returned when a Builder received two different
// mutation calls, e.g. Update followed by Create.
type ConflictingMutationError struct {
	First  Method
	Second Method
}

func (e ConflictingMutationError) Error() string {
	return fmt.Sprintf("conflicting mutations: %s after %s", e.Second, e.First)
}

// LimitNotSupportedError is returned when a dialect has no LIMIT clause for
// the statement method.
type LimitNotSupportedError struct {
	Dialect string
	Method  Method
}

func (e LimitNotSupportedError) Error() string {
	return fmt.Sprintf("%s dialect does not support LIMIT on %s", e.Dialect, e.Method)
}
