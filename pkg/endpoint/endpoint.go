package endpoint

import "strings"

// Endpoint is one registered route: an immutable path template, the
// handler it dispatches to, and the handler's argument declarations.
// Endpoints are built once during registration and never recomputed.
type Endpoint struct {
	template string
	segments []string
	handler  Handler
	bindings []Binding
}

// Template returns the normalized template string.
func (e *Endpoint) Template() string {
	return e.template
}

// Bindings returns the argument declarations in declaration order.
func (e *Endpoint) Bindings() []Binding {
	return e.bindings
}

// newEndpoint builds an endpoint from a base path and a handler's
// relative path. A relative path of exactly "/" maps to the template
// being just the base, with no trailing segment appended.
func newEndpoint(basePath string, handler Handler, relativePath string, bindings []Binding) *Endpoint {
	var template string
	if relativePath == "/" {
		template = normalize(basePath)
	} else {
		template = normalize(basePath + "/" + strings.TrimPrefix(relativePath, "/"))
	}
	return &Endpoint{
		template: template,
		segments: strings.Split(template, "/"),
		handler:  handler,
		bindings: bindings,
	}
}

// normalize collapses repeated slashes and strips a leading slash.
func normalize(path string) string {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return strings.TrimPrefix(path, "/")
}

// splitPath splits a request path into segments, stripping the leading
// slash first. Trailing empty segments are preserved so that "/a/"
// and "/a" stay distinct.
func splitPath(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

// isPlaceholder reports whether a template segment is syntactically a
// placeholder: a parenthesized name like "(id)".
func isPlaceholder(segment string) bool {
	return strings.HasPrefix(segment, "(") && strings.HasSuffix(segment, ")")
}

// match reports whether the request path segments satisfy this
// template: identical segment count, and each pair equal literally or
// covered by a placeholder. A placeholder matches any single
// non-empty segment regardless of its declared name.
func (e *Endpoint) match(pathSegments []string) bool {
	if len(pathSegments) != len(e.segments) {
		return false
	}
	for i, tmpl := range e.segments {
		seg := pathSegments[i]
		if tmpl == seg {
			continue
		}
		if isPlaceholder(tmpl) && seg != "" {
			continue
		}
		return false
	}
	return true
}

// placeholderIndex returns the segment index of the placeholder with
// the exact literal text "(name)", or -1 if the template has none.
func (e *Endpoint) placeholderIndex(name string) int {
	want := "(" + name + ")"
	for i, seg := range e.segments {
		if seg == want {
			return i
		}
	}
	return -1
}
