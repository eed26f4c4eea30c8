package render

import (
	"io"
	"sort"
	"strings"

	"github.com/restlight-dev/restlight/pkg/jsonval"
)

// prettyVisitor emits the same grammar as the compact visitor with one
// member or element per line and an indent per nesting level. Object
// keys are sorted lexicographically before printing; the underlying
// tree keeps insertion order.
type prettyVisitor struct {
	w      io.Writer
	indent string
	depth  int
}

func (p *prettyVisitor) VisitObject(v *jsonval.Value) error {
	if len(v.Members) == 0 {
		return writeString(p.w, "{}")
	}

	members := make([]jsonval.Member, len(v.Members))
	copy(members, v.Members)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Key < members[j].Key
	})

	if err := writeString(p.w, "{\n"); err != nil {
		return err
	}
	p.depth++
	for i, m := range members {
		if err := writeString(p.w, p.pad()+quote(m.Key)+": "); err != nil {
			return err
		}
		if err := m.Value.Accept(p); err != nil {
			return err
		}
		if i < len(members)-1 {
			if err := writeString(p.w, ","); err != nil {
				return err
			}
		}
		if err := writeString(p.w, "\n"); err != nil {
			return err
		}
	}
	p.depth--
	return writeString(p.w, p.pad()+"}")
}

func (p *prettyVisitor) VisitArray(v *jsonval.Value) error {
	if len(v.Elems) == 0 {
		return writeString(p.w, "[]")
	}

	if err := writeString(p.w, "[\n"); err != nil {
		return err
	}
	p.depth++
	for i, e := range v.Elems {
		if err := writeString(p.w, p.pad()); err != nil {
			return err
		}
		if err := e.Accept(p); err != nil {
			return err
		}
		if i < len(v.Elems)-1 {
			if err := writeString(p.w, ","); err != nil {
				return err
			}
		}
		if err := writeString(p.w, "\n"); err != nil {
			return err
		}
	}
	p.depth--
	return writeString(p.w, p.pad()+"]")
}

func (p *prettyVisitor) VisitString(v *jsonval.Value) error {
	return writeString(p.w, quote(v.Str))
}

func (p *prettyVisitor) VisitNumber(v *jsonval.Value) error {
	return writeString(p.w, v.Num)
}

func (p *prettyVisitor) VisitBoolean(v *jsonval.Value) error {
	if v.Bool {
		return writeString(p.w, "true")
	}
	return writeString(p.w, "false")
}

func (p *prettyVisitor) VisitNull(*jsonval.Value) error {
	return writeString(p.w, "null")
}

func (p *prettyVisitor) pad() string {
	return strings.Repeat(p.indent, p.depth)
}
