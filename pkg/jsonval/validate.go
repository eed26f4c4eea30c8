package jsonval

import "fmt"

// IssueKind classifies a structural defect found by the Validator.
type IssueKind uint8

const (
	// IssueEmptyKey marks an Object member with an empty-string key.
	IssueEmptyKey IssueKind = iota

	// IssueDuplicateKey marks a key repeated within the same Object's
	// immediate member list. Identical keys in two different Objects,
	// nested ones included, are not duplicates of each other.
	IssueDuplicateKey
)

// String returns the string representation of the IssueKind.
func (k IssueKind) String() string {
	switch k {
	case IssueEmptyKey:
		return "EmptyKey"
	case IssueDuplicateKey:
		return "DuplicateKey"
	default:
		return "Unknown"
	}
}

// Issue is a single structural defect.
type Issue struct {
	Kind IssueKind
	Key  string
}

// String returns a human-readable description of the issue.
func (i Issue) String() string {
	switch i.Kind {
	case IssueEmptyKey:
		return "empty object key"
	case IssueDuplicateKey:
		return fmt.Sprintf("duplicate object key %q", i.Key)
	default:
		return fmt.Sprintf("unknown issue for key %q", i.Key)
	}
}

// Validator walks a value tree and collects structural defects:
// empty Object keys and sibling-duplicate Object keys. The value of a
// duplicate key is not descended into; the first occurrence wins for
// traversal purposes. The validator always descends everywhere else.
type Validator struct {
	issues []Issue
}

// NewValidator creates a Validator with no recorded issues.
func NewValidator() *Validator {
	return &Validator{}
}

// Issues returns the defects collected so far, in visit order.
func (val *Validator) Issues() []Issue {
	return val.issues
}

// Valid reports whether no defects were collected.
func (val *Validator) Valid() bool {
	return len(val.issues) == 0
}

// VisitObject checks the immediate member list for empty and repeated
// keys, then recurses into each non-duplicate member's value.
func (val *Validator) VisitObject(v *Value) error {
	seen := make(map[string]bool, len(v.Members))
	for _, m := range v.Members {
		if m.Key == "" {
			val.issues = append(val.issues, Issue{Kind: IssueEmptyKey})
		}
		if seen[m.Key] {
			val.issues = append(val.issues, Issue{Kind: IssueDuplicateKey, Key: m.Key})
			continue
		}
		seen[m.Key] = true
		if err := m.Value.Accept(val); err != nil {
			return err
		}
	}
	return nil
}

// VisitArray recurses into each element in index order.
func (val *Validator) VisitArray(v *Value) error {
	for _, e := range v.Elems {
		if err := e.Accept(val); err != nil {
			return err
		}
	}
	return nil
}

// VisitString implements Visitor. Leaves are always valid.
func (val *Validator) VisitString(*Value) error { return nil }

// VisitNumber implements Visitor.
func (val *Validator) VisitNumber(*Value) error { return nil }

// VisitBoolean implements Visitor.
func (val *Validator) VisitBoolean(*Value) error { return nil }

// VisitNull implements Visitor.
func (val *Validator) VisitNull(*Value) error { return nil }
