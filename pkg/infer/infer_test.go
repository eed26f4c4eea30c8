package infer

import (
	"errors"
	"testing"

	"github.com/restlight-dev/restlight/pkg/jsonval"
	"github.com/restlight-dev/restlight/pkg/render"
)

type color uint8

const (
	red color = iota
	green
)

func (c color) EnumName() string {
	switch c {
	case red:
		return "RED"
	case green:
		return "GREEN"
	default:
		return "UNKNOWN"
	}
}

type user struct {
	ID   int
	Name string
}

func (u user) Fields() []Field {
	return []Field{
		{Name: "id", Value: u.ID},
		{Name: "name", Value: u.Name},
	}
}

func TestInferPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "null"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint", uint(9), "9"},
		{"float", 3.5, "3.5"},
		{"float integral form", 2.0, "2"},
		{"string", "hi", `"hi"`},
		{"enum", green, `"GREEN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.value)
			if err != nil {
				t.Fatalf("Infer() error = %v", err)
			}
			text, err := render.Compact(got)
			if err != nil {
				t.Fatalf("Compact() error = %v", err)
			}
			if text != tt.want {
				t.Errorf("Infer(%v) renders %s, want %s", tt.value, text, tt.want)
			}
		})
	}
}

func TestInferPassthroughIsIdempotent(t *testing.T) {
	v := jsonval.Object(
		jsonval.Member{Key: "a", Value: jsonval.Array(jsonval.Int(1))},
	)

	got, err := Infer(v)
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	if got != v {
		t.Error("Infer must return an existing jsonval value unchanged")
	}

	again, err := Infer(got)
	if err != nil {
		t.Fatalf("Infer(Infer(x)) error = %v", err)
	}
	if !jsonval.Equal(again, v) {
		t.Error("Infer(Infer(x)) != Infer(x)")
	}
}

func TestInferMap(t *testing.T) {
	got, err := Infer(map[string]any{"b": 2, "a": "x"})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	text, err := render.Compact(got)
	if err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
	// Keys are sorted for determinism.
	if text != `{"a":"x","b":2}` {
		t.Errorf("Infer(map) = %s, want sorted keys", text)
	}
}

func TestInferMapUnsupportedKey(t *testing.T) {
	_, err := Infer(map[int]string{1: "x"})
	var ute *UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnsupportedTypeError for int map key, got %v", err)
	}
}

func TestInferSequence(t *testing.T) {
	got, err := Infer([]any{1, "two", nil, true})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	text, err := render.Compact(got)
	if err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
	if text != `[1,"two",null,true]` {
		t.Errorf("Infer(slice) = %s", text)
	}
}

func TestInferRecord(t *testing.T) {
	got, err := Infer(user{ID: 42, Name: "User42"})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	text, err := render.Compact(got)
	if err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
	// Field order is the declared order, not sorted.
	if text != `{"id":42,"name":"User42"}` {
		t.Errorf("Infer(record) = %s", text)
	}
}

func TestInferNestedRecords(t *testing.T) {
	got, err := Infer([]user{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	if err != nil {
		t.Fatalf("Infer() error = %v", err)
	}
	text, err := render.Compact(got)
	if err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
	if text != `[{"id":1,"name":"a"},{"id":2,"name":"b"}]` {
		t.Errorf("Infer([]record) = %s", text)
	}
}

func TestInferUnsupportedType(t *testing.T) {
	_, err := Infer(make(chan int))
	var ute *UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if ute.Type != "chan int" {
		t.Errorf("error names type %q, want %q", ute.Type, "chan int")
	}
}

func TestInferErrorInsideContainerPropagates(t *testing.T) {
	if _, err := Infer([]any{1, make(chan int)}); err == nil {
		t.Error("expected error for unsupported element")
	}
	if _, err := Infer(map[string]any{"k": make(chan int)}); err == nil {
		t.Error("expected error for unsupported map value")
	}
}
