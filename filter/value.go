package filter

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// Value is a classified predicate value. Only the types in this package
// implement it, so a type switch over Value is exhaustive.
type Value interface {
	Kind() Kind
	value()
}

type (
	String  string
	Integer int64
	Float   float64
	Boolean bool
	Array   []Value

	// Null is an explicit empty value.
	Null struct{}

	// Undefined marks a value that was never provided. Pass Undefined{} in a
	// Map to represent it; it is rejected wherever a literal is needed.
	Undefined struct{}

	// Date is a calendar timestamp.
	Date struct{ time.Time }

	// Object is a record used as a foreign-key reference. ID holds the
	// classified id attribute, or Undefined when the record has none.
	Object struct{ ID Value }
)

func (String) Kind() Kind    { return KindString }
func (Integer) Kind() Kind   { return KindInteger }
func (Float) Kind() Kind     { return KindFloat }
func (Boolean) Kind() Kind   { return KindBoolean }
func (Array) Kind() Kind     { return KindArray }
func (Null) Kind() Kind      { return KindNull }
func (Undefined) Kind() Kind { return KindUndefined }
func (Date) Kind() Kind      { return KindDate }
func (Object) Kind() Kind    { return KindObject }

func (String) value()    {}
func (Integer) value()   {}
func (Float) value()     {}
func (Boolean) value()   {}
func (Array) value()     {}
func (Null) value()      {}
func (Undefined) value() {}
func (Date) value()      {}
func (Object) value()    {}

// ValueOf classifies v. Sequences become arrays, timestamps dates, nil null,
// numbers integers when they have no fractional part and floats otherwise,
// records objects, and everything else a string.
func ValueOf(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null{}
	case Value:
		return v
	case string:
		return String(v)
	case []byte:
		return String(v)
	case bool:
		return Boolean(v)
	case int:
		return Integer(v)
	case int8:
		return Integer(v)
	case int16:
		return Integer(v)
	case int32:
		return Integer(v)
	case int64:
		return Integer(v)
	case uint8:
		return Integer(v)
	case uint16:
		return Integer(v)
	case uint32:
		return Integer(v)
	case float32:
		return number(float64(v))
	case float64:
		return number(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Integer(i)
		}
		if f, err := v.Float64(); err == nil {
			return number(f)
		}
		return String(v)
	case time.Time:
		return Date{v}
	case *time.Time:
		if v == nil {
			return Null{}
		}
		return Date{*v}
	case Map:
		id, ok := v.Get("id")
		if !ok {
			return Object{ID: Undefined{}}
		}
		return Object{ID: ValueOf(id)}
	case map[string]any:
		id, ok := v["id"]
		if !ok {
			return Object{ID: Undefined{}}
		}
		return Object{ID: ValueOf(id)}
	}
	return reflectValue(reflect.ValueOf(v))
}

func reflectValue(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null{}
		}
		arr := make(Array, rv.Len())
		for i := range arr {
			arr[i] = ValueOf(rv.Index(i).Interface())
		}
		return arr
	case reflect.Bool:
		return Boolean(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Integer(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u))
		}
		return Integer(int64(u))
	case reflect.Float32, reflect.Float64:
		return number(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		id := rv.MapIndex(reflect.ValueOf("id").Convert(rv.Type().Key()))
		if !id.IsValid() {
			return Object{ID: Undefined{}}
		}
		return Object{ID: ValueOf(id.Interface())}
	case reflect.Struct:
		return Object{ID: structID(rv)}
	}
	return String(fmt.Sprint(rv.Interface()))
}

func structID(rv reflect.Value) Value {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == "id" || (tag == "" && (f.Name == "ID" || f.Name == "Id")) {
			return ValueOf(rv.Field(i).Interface())
		}
	}
	return Undefined{}
}

func number(f float64) Value {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return Integer(int64(f))
	}
	return Float(f)
}

// native returns the Go value handed to a database driver for v.
func native(v Value) any {
	switch v := v.(type) {
	case String:
		return string(v)
	case Integer:
		return int64(v)
	case Float:
		return float64(v)
	case Boolean:
		return bool(v)
	case Date:
		return v.Time
	case Array:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = native(e)
		}
		return out
	default:
		return nil
	}
}
