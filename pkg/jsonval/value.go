package jsonval

import "strconv"

// Kind is the value type discriminator.
type Kind uint8

const (
	KindObject  Kind = iota // {"k":v,...}
	KindArray               // [v,...]
	KindString              // "..."
	KindNumber              // 42, 3.14
	KindBoolean             // true/false
	KindNull                // null
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// Value is a node in a JSON value tree. The variant set is closed:
// exactly the six kinds above exist, and a built tree is never
// mutated in place.
//
// Members holds Object members in insertion order; Elems holds Array
// elements in index order. Num carries the numeric text form so that
// arbitrary-precision values survive without loss.
type Value struct {
	Kind    Kind
	Members []Member // KindObject
	Elems   []*Value // KindArray
	Str     string   // KindString
	Num     string   // KindNumber, textual form
	Bool    bool     // KindBoolean
}

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value *Value
}

// Null is the singleton null value.
var Null = &Value{Kind: KindNull}

// True and False are the two boolean values.
var (
	True  = &Value{Kind: KindBoolean, Bool: true}
	False = &Value{Kind: KindBoolean, Bool: false}
)

// Object builds an Object from an ordered sequence of members. A later
// member with a duplicate key silently overwrites the earlier one; the
// key keeps its original position. Trees constructed from raw Value
// literals bypass this rule and can carry duplicates, which the
// Validator reports as a structural defect.
func Object(members ...Member) *Value {
	out := make([]Member, 0, len(members))
	index := make(map[string]int, len(members))
	for _, m := range members {
		if i, ok := index[m.Key]; ok {
			out[i].Value = m.Value
			continue
		}
		index[m.Key] = len(out)
		out = append(out, m)
	}
	return &Value{Kind: KindObject, Members: out}
}

// Array builds an Array from an ordered sequence of elements.
func Array(elems ...*Value) *Value {
	return &Value{Kind: KindArray, Elems: elems}
}

// String builds a String value.
func String(s string) *Value {
	return &Value{Kind: KindString, Str: s}
}

// Number builds a Number from its textual form. The text is emitted
// verbatim when rendering, so callers control precision.
func Number(text string) *Value {
	return &Value{Kind: KindNumber, Num: text}
}

// Int builds a Number from an integer.
func Int(n int64) *Value {
	return Number(strconv.FormatInt(n, 10))
}

// Float builds a Number from a float using the shortest text form that
// round-trips.
func Float(f float64) *Value {
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Bool returns the boolean value for b.
func Bool(b bool) *Value {
	if b {
		return True
	}
	return False
}

// Get returns the value of the first member with the given key, or nil
// if the Object has no such member.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Kind != KindObject {
		return nil
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Equal reports structural equality. Objects are equal iff they have
// the same key set with pairwise-equal values, independent of member
// order; Arrays are equal iff they have the same length and
// pairwise-equal elements in order. For Objects carrying duplicate
// keys the first occurrence of each key is compared.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindObject:
		am := firstOccurrences(a.Members)
		bm := firstOccurrences(b.Members)
		if len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindArray:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	case KindString:
		return a.Str == b.Str
	case KindNumber:
		return a.Num == b.Num
	case KindBoolean:
		return a.Bool == b.Bool
	case KindNull:
		return true
	default:
		return false
	}
}

// firstOccurrences maps each key to the value at its first occurrence.
func firstOccurrences(members []Member) map[string]*Value {
	m := make(map[string]*Value, len(members))
	for _, member := range members {
		if _, ok := m[member.Key]; !ok {
			m[member.Key] = member.Value
		}
	}
	return m
}
