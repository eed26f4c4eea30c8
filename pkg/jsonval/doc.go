// Package jsonval defines the JSON value tree used throughout
// restlight, together with its visitor protocol.
//
// The variant set is closed: Object, Array, String, Number, Boolean
// and Null are the only kinds. Values are immutable once built, and
// equality is structural: Object member order is irrelevant, Array
// element order is not.
//
// Traversal goes through Accept, which double-dispatches to the
// matching Visitor operation:
//
//	v := jsonval.Object(
//	    jsonval.Member{Key: "id", Value: jsonval.Int(42)},
//	    jsonval.Member{Key: "name", Value: jsonval.String("User42")},
//	)
//	val := jsonval.NewValidator()
//	_ = v.Accept(val)
//	if !val.Valid() { ... }
//
// Rendering a tree to JSON text lives in the render package; the
// inverse direction (parsing JSON text) is intentionally absent.
package jsonval
