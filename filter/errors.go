package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidParameterIndex is returned when placeholders would start below 1.
var ErrInvalidParameterIndex = errors.New("startAtParameterIndex must be greater than 0")

// ColumnNotAllowedError is returned when a column is rejected by the allow or
// disallow list.
type ColumnNotAllowedError struct {
	Column string
}

func (e ColumnNotAllowedError) Error() string {
	return fmt.Sprintf("column not allowed: %s", e.Column)
}

// InvalidFieldError is returned for a key or column without a field name.
type InvalidFieldError struct {
	Key string
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field name: %q", e.Key)
}

// UnsupportedOperatorError is returned when an operator does not apply to the
// kind of value it was given, e.g. "in" with a string.
type UnsupportedOperatorError struct {
	Field    string
	Operator Operator
	Kind     Kind
}

func (e UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q for %s value of field %s", e.Operator, e.Kind, e.Field)
}

// UnsupportedKindError is returned for values that cannot be written as SQL,
// such as Undefined or a nested array.
type UnsupportedKindError struct {
	Field string
	Kind  Kind
}

func (e UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported %s value for field %s", e.Kind, e.Field)
}

// InvalidObjectReferenceError is returned for an object value without a
// positive integer id.
type InvalidObjectReferenceError struct {
	Field string
	ID    Value
}

func (e InvalidObjectReferenceError) Error() string {
	if _, ok := e.ID.(Undefined); ok || e.ID == nil {
		return fmt.Sprintf("object value for field %s must have a numeric `id` field", e.Field)
	}
	return fmt.Sprintf("object value for field %s must have a positive numeric `id` field, got %v", e.Field, e.ID)
}

// InvalidNumberError is returned when a value cannot be used as a number.
type InvalidNumberError struct {
	Name  string
	Value any
}

func (e InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number for %s: %v", e.Name, e.Value)
}
