package jsonval

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindObject, "Object"},
		{KindArray, "Array"},
		{KindString, "String"},
		{KindNumber, "Number"},
		{KindBoolean, "Boolean"},
		{KindNull, "Null"},
		{Kind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestObjectDuplicateKeyOverwrites(t *testing.T) {
	v := Object(
		Member{Key: "a", Value: Int(1)},
		Member{Key: "b", Value: Int(2)},
		Member{Key: "a", Value: Int(3)},
	)

	if len(v.Members) != 2 {
		t.Fatalf("expected 2 members after overwrite, got %d", len(v.Members))
	}
	if v.Members[0].Key != "a" || v.Members[0].Value.Num != "3" {
		t.Errorf("expected a=3 at original position, got %s=%s", v.Members[0].Key, v.Members[0].Value.Num)
	}
	if v.Members[1].Key != "b" {
		t.Errorf("expected b to keep second position, got %s", v.Members[1].Key)
	}
}

func TestGet(t *testing.T) {
	v := Object(
		Member{Key: "id", Value: Int(7)},
		Member{Key: "name", Value: String("x")},
	)

	if got := v.Get("name"); got == nil || got.Str != "x" {
		t.Errorf("Get(name) = %v, want String(x)", got)
	}
	if got := v.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if got := Array().Get("k"); got != nil {
		t.Errorf("Get on non-object = %v, want nil", got)
	}
}

func TestEqualObjectsOrderIndependent(t *testing.T) {
	a := Object(
		Member{Key: "a", Value: Int(1)},
		Member{Key: "b", Value: Int(2)},
	)
	b := Object(
		Member{Key: "b", Value: Int(2)},
		Member{Key: "a", Value: Int(1)},
	)

	if !Equal(a, b) {
		t.Error("objects with same key set should be equal regardless of member order")
	}
}

func TestEqualArraysOrderDependent(t *testing.T) {
	a := Array(Int(1), Int(2))
	b := Array(Int(2), Int(1))

	if Equal(a, b) {
		t.Error("arrays with reordered elements must not be equal")
	}
	if !Equal(a, Array(Int(1), Int(2))) {
		t.Error("arrays with identical elements in order must be equal")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"null vs null", Null, Null, true},
		{"null vs bool", Null, False, false},
		{"true vs true", True, Bool(true), true},
		{"true vs false", True, False, false},
		{"same number text", Number("1.50"), Number("1.50"), true},
		{"different number text", Number("1.5"), Number("1.50"), false},
		{"same string", String("x"), String("x"), true},
		{"different string", String("x"), String("y"), false},
		{"missing key", Object(Member{Key: "a", Value: Int(1)}), Object(), false},
		{
			"nested equal",
			Object(Member{Key: "a", Value: Array(Int(1), Null)}),
			Object(Member{Key: "a", Value: Array(Int(1), Null)}),
			true,
		},
		{
			"nested unequal value",
			Object(Member{Key: "a", Value: Array(Int(1))}),
			Object(Member{Key: "a", Value: Array(Int(2))}),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumberHelpers(t *testing.T) {
	if got := Int(-42).Num; got != "-42" {
		t.Errorf("Int(-42) = %s, want -42", got)
	}
	if got := Float(3.5).Num; got != "3.5" {
		t.Errorf("Float(3.5) = %s, want 3.5", got)
	}
}
