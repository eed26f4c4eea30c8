package render

import (
	"bytes"
	"io"

	"github.com/restlight-dev/restlight/pkg/jsonval"
)

// RendererConfig configures the JSON renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed output: one member or element per
	// line, indented per nesting level, Object keys sorted
	// lexicographically. Sorting is presentation-only; compact output
	// and structural equality always see insertion order.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to four spaces if not specified.
	Indent string
}

// Renderer renders jsonval trees to JSON text.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "    "
	}
	return &Renderer{config: config}
}

// RenderToString renders a value tree to a JSON string.
func (r *Renderer) RenderToString(v *jsonval.Value) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a value tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, v *jsonval.Value) error {
	if r.config.Pretty {
		return v.Accept(&prettyVisitor{w: w, indent: r.config.Indent})
	}
	return v.Accept(&compactVisitor{w: w})
}

// Compact renders a value tree in compact form. Shorthand for a
// default-configured renderer.
func Compact(v *jsonval.Value) (string, error) {
	return NewRenderer(RendererConfig{}).RenderToString(v)
}

// compactVisitor emits the compact grammar: {"k":v,...} and [v,...]
// comma-joined, no whitespace, Object members in insertion order.
type compactVisitor struct {
	w io.Writer
}

func (c *compactVisitor) VisitObject(v *jsonval.Value) error {
	if err := writeString(c.w, "{"); err != nil {
		return err
	}
	for i, m := range v.Members {
		if i > 0 {
			if err := writeString(c.w, ","); err != nil {
				return err
			}
		}
		if err := writeString(c.w, quote(m.Key)+":"); err != nil {
			return err
		}
		if err := m.Value.Accept(c); err != nil {
			return err
		}
	}
	return writeString(c.w, "}")
}

func (c *compactVisitor) VisitArray(v *jsonval.Value) error {
	if err := writeString(c.w, "["); err != nil {
		return err
	}
	for i, e := range v.Elems {
		if i > 0 {
			if err := writeString(c.w, ","); err != nil {
				return err
			}
		}
		if err := e.Accept(c); err != nil {
			return err
		}
	}
	return writeString(c.w, "]")
}

func (c *compactVisitor) VisitString(v *jsonval.Value) error {
	return writeString(c.w, quote(v.Str))
}

func (c *compactVisitor) VisitNumber(v *jsonval.Value) error {
	return writeString(c.w, v.Num)
}

func (c *compactVisitor) VisitBoolean(v *jsonval.Value) error {
	if v.Bool {
		return writeString(c.w, "true")
	}
	return writeString(c.w, "false")
}

func (c *compactVisitor) VisitNull(*jsonval.Value) error {
	return writeString(c.w, "null")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
