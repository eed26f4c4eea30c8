package infer

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/restlight-dev/restlight/pkg/jsonval"
)

// Field is one named field of a structured record, in declared order.
type Field struct {
	Name  string
	Value any
}

// Fielder describes a structured record as an ordered list of named
// fields. Types implement this instead of being discovered through
// struct reflection, which keeps inference statically checkable.
type Fielder interface {
	Fields() []Field
}

// Enum is implemented by fixed-name enumerated cases; the case name
// becomes the string form of the value.
type Enum interface {
	EnumName() string
}

// UnsupportedTypeError reports a runtime value no inference rule can
// classify.
type UnsupportedTypeError struct {
	Type string
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("infer: unsupported type %s", e.Type)
}

// Infer converts an arbitrary runtime value into a jsonval tree.
// The precedence order is fixed; the first matching rule wins:
//
//  1. nil → Null
//  2. bool → Boolean
//  3. numeric → Number, preserving the kind's text form
//  4. string → String
//  5. Enum → String(case name)
//  6. *jsonval.Value → returned unchanged
//  7. mapping with stringifiable keys → Object, values recursively inferred
//  8. slice or array → Array, elements recursively inferred
//  9. Fielder → Object with fields in declared order
// 10. anything else → *UnsupportedTypeError
//
// Go map iteration order is not stable, so rule 7 sorts the
// stringified keys to keep inference deterministic. Cyclic structures
// are not detected; inference over a cycle does not terminate.
func Infer(value any) (*jsonval.Value, error) {
	if value == nil {
		return jsonval.Null, nil
	}

	switch v := value.(type) {
	case bool:
		return jsonval.Bool(v), nil
	case int:
		return jsonval.Int(int64(v)), nil
	case int8:
		return jsonval.Int(int64(v)), nil
	case int16:
		return jsonval.Int(int64(v)), nil
	case int32:
		return jsonval.Int(int64(v)), nil
	case int64:
		return jsonval.Int(v), nil
	case uint:
		return jsonval.Number(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return jsonval.Number(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return jsonval.Number(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return jsonval.Number(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return jsonval.Number(strconv.FormatUint(v, 10)), nil
	case float32:
		return jsonval.Number(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case float64:
		return jsonval.Float(v), nil
	case string:
		return jsonval.String(v), nil
	}

	if e, ok := value.(Enum); ok {
		return jsonval.String(e.EnumName()), nil
	}
	if v, ok := value.(*jsonval.Value); ok {
		return v, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		return inferMap(rv)
	case reflect.Slice, reflect.Array:
		return inferSequence(rv)
	}

	if f, ok := value.(Fielder); ok {
		return inferRecord(f)
	}

	return nil, &UnsupportedTypeError{Type: fmt.Sprintf("%T", value)}
}

// inferMap converts a mapping into an Object. Keys are stringified and
// sorted; values go back through Infer.
func inferMap(rv reflect.Value) (*jsonval.Value, error) {
	keys := rv.MapKeys()
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, len(keys))
	for _, k := range keys {
		s, err := stringifyKey(k)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{key: s, val: rv.MapIndex(k)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	members := make([]jsonval.Member, 0, len(entries))
	for _, e := range entries {
		child, err := Infer(e.val.Interface())
		if err != nil {
			return nil, err
		}
		members = append(members, jsonval.Member{Key: e.key, Value: child})
	}
	return jsonval.Object(members...), nil
}

// inferSequence converts a slice or array into an Array.
func inferSequence(rv reflect.Value) (*jsonval.Value, error) {
	elems := make([]*jsonval.Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		child, err := Infer(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		elems = append(elems, child)
	}
	return jsonval.Array(elems...), nil
}

// inferRecord converts a structured record into an Object keyed by the
// declared field names, in declared order.
func inferRecord(f Fielder) (*jsonval.Value, error) {
	fields := f.Fields()
	members := make([]jsonval.Member, 0, len(fields))
	for _, field := range fields {
		child, err := Infer(field.Value)
		if err != nil {
			return nil, err
		}
		members = append(members, jsonval.Member{Key: field.Name, Value: child})
	}
	return jsonval.Object(members...), nil
}

// stringifyKey converts a map key to its string form. String keys pass
// through; everything else must implement fmt.Stringer.
func stringifyKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if s, ok := k.Interface().(fmt.Stringer); ok {
		return s.String(), nil
	}
	return "", &UnsupportedTypeError{Type: fmt.Sprintf("map key %s", k.Type())}
}
