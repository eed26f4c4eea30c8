package jsonval

import "fmt"

// Visitor receives exactly one callback per value variant. Accept
// performs the double dispatch: the value selects the operation, so
// the caller never switches on Kind itself.
//
// A visitor that wants to see children calls Accept on them; Object
// members arrive in insertion order and Array elements in index order.
// A visitor that does not recurse truncates the traversal at that
// node.
type Visitor interface {
	VisitObject(v *Value) error
	VisitArray(v *Value) error
	VisitString(v *Value) error
	VisitNumber(v *Value) error
	VisitBoolean(v *Value) error
	VisitNull(v *Value) error
}

// Accept invokes the visitor operation matching the value's variant.
// It returns whatever the visitor operation returns; an unknown Kind
// (only possible through a corrupted literal) is an error.
func (v *Value) Accept(vis Visitor) error {
	switch v.Kind {
	case KindObject:
		return vis.VisitObject(v)
	case KindArray:
		return vis.VisitArray(v)
	case KindString:
		return vis.VisitString(v)
	case KindNumber:
		return vis.VisitNumber(v)
	case KindBoolean:
		return vis.VisitBoolean(v)
	case KindNull:
		return vis.VisitNull(v)
	default:
		return fmt.Errorf("jsonval: unknown value kind: %d", v.Kind)
	}
}
