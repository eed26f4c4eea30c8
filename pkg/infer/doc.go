// Package infer maps arbitrary runtime values onto the jsonval tree.
//
// Infer is total over primitives, enumerated cases, jsonval values,
// mappings, sequences and Fielder records; everything else fails with
// an UnsupportedTypeError naming the runtime type. Handlers return
// plain Go values and the dispatcher runs them through Infer before
// rendering.
//
// Record types opt in by implementing Fielder:
//
//	type User struct {
//	    ID   int
//	    Name string
//	}
//
//	func (u User) Fields() []infer.Field {
//	    return []infer.Field{
//	        {Name: "id", Value: u.ID},
//	        {Name: "name", Value: u.Name},
//	    }
//	}
package infer
