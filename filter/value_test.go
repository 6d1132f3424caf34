package filter_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/poki/predicate-to-sql/filter"
)

type account struct {
	Key  int64 `json:"id"`
	Name string
}

func TestClassify(t *testing.T) {
	var nilTime *time.Time
	var nilSlice []string
	now := time.Now()

	tests := []struct {
		name  string
		input any
		want  filter.Kind
	}{
		{"integer", 3, filter.KindInteger},
		{"float", 3.5, filter.KindFloat},
		{"whole float", 3.0, filter.KindInteger},
		{"infinity", math.Inf(1), filter.KindFloat},
		{"large unsigned", uint64(math.MaxUint64), filter.KindFloat},
		{"json integer", json.Number("7"), filter.KindInteger},
		{"json float", json.Number("7.5"), filter.KindFloat},
		{"string", "x", filter.KindString},
		{"bytes", []byte("ab"), filter.KindString},
		{"boolean", true, filter.KindBoolean},
		{"nil", nil, filter.KindNull},
		{"nil pointer", nilTime, filter.KindNull},
		{"nil slice", nilSlice, filter.KindNull},
		{"array", []int{1, 2}, filter.KindArray},
		{"fixed array", [2]string{"a", "b"}, filter.KindArray},
		{"date", now, filter.KindDate},
		{"date pointer", &now, filter.KindDate},
		{"map", map[string]any{"id": 1}, filter.KindObject},
		{"typed map", map[string]int{"id": 1}, filter.KindObject},
		{"struct", account{Key: 1}, filter.KindObject},
		{"predicate map", filter.Map{filter.P("id", 1)}, filter.KindObject},
		{"undefined", filter.Undefined{}, filter.KindUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%#v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValueOf_elements(t *testing.T) {
	arr, ok := filter.ValueOf([]any{1, "a", nil, 2.5}).(filter.Array)
	if !ok {
		t.Fatalf("ValueOf() did not return an Array")
	}
	want := []filter.Kind{filter.KindInteger, filter.KindString, filter.KindNull, filter.KindFloat}
	if len(arr) != len(want) {
		t.Fatalf("len(Array) = %d, want %d", len(arr), len(want))
	}
	for i, e := range arr {
		if e.Kind() != want[i] {
			t.Errorf("Array[%d].Kind() = %v, want %v", i, e.Kind(), want[i])
		}
	}
}

func TestValueOf_objectID(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  filter.Value
	}{
		{"map", map[string]any{"id": 4}, filter.Integer(4)},
		{"tagged struct", account{Key: 5, Name: "tony"}, filter.Integer(5)},
		{"untagged struct", struct{ ID string }{ID: "x"}, filter.String("x")},
		{"missing", map[string]any{"name": "tony"}, filter.Undefined{}},
		{"struct without id", struct{ Name string }{}, filter.Undefined{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, ok := filter.ValueOf(tt.input).(filter.Object)
			if !ok {
				t.Fatalf("ValueOf(%#v) is not an Object", tt.input)
			}
			if obj.ID != tt.want {
				t.Errorf("Object.ID = %#v, want %#v", obj.ID, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := map[filter.Kind]string{
		filter.KindString:    "string",
		filter.KindInteger:   "integer",
		filter.KindFloat:     "float",
		filter.KindBoolean:   "boolean",
		filter.KindNull:      "null",
		filter.KindArray:     "array",
		filter.KindObject:    "object",
		filter.KindDate:      "date",
		filter.KindUndefined: "undefined",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %v, want %v", int(kind), got, want)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		raw  string
		want filter.Key
	}{
		{"age", filter.Key{Field: "age", Operator: filter.Exact}},
		{"age__gte", filter.Key{Field: "age", Operator: filter.Gte}},
		{"age__", filter.Key{Field: "age", Operator: filter.Exact}},
		{"name__isnull", filter.Key{Field: "name", Operator: filter.IsNull}},
		{"a__b__c", filter.Key{Field: "a", Operator: "b__c"}},
		{"user_name__contains", filter.Key{Field: "user_name", Operator: filter.Contains}},
	}
	for _, tt := range tests {
		if got := filter.ParseKey(tt.raw); got != tt.want {
			t.Errorf("ParseKey(%q) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}
