package render

import "strings"

// quote wraps s in double quotes, escaping the quote character only.
// Backslashes and control characters pass through unescaped. This is
// narrower than RFC 8259 and a known wire-compat limitation; strings
// containing backslashes or control characters produce output a
// strict JSON parser may reject.
func quote(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + 2)

	buf.WriteByte('"')
	for _, r := range s {
		if r == '"' {
			buf.WriteString(`\"`)
			continue
		}
		buf.WriteRune(r)
	}
	buf.WriteByte('"')

	return buf.String()
}
