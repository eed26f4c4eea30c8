package endpoint

import "log/slog"

// Table is the route table. It is populated at startup and immutable
// afterward, so concurrent read-only lookups need no synchronization.
// Lookup is a linear scan in registration order; when two templates
// overlap, the first registered wins. No ambiguity detection is
// performed across overlapping templates.
type Table struct {
	endpoints []*Endpoint
	logger    *slog.Logger
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{
		logger: slog.Default().With("component", "endpoint"),
	}
}

// SetLogger replaces the table's logger.
func (t *Table) SetLogger(logger *slog.Logger) {
	t.logger = logger
}

// Register adds a route built from the base path, the handler, and
// the handler's declared relative path and argument bindings. It
// returns the built endpoint. Register is startup-only and not safe
// for use concurrently with Match.
func (t *Table) Register(basePath string, handler Handler, relativePath string, bindings ...Binding) *Endpoint {
	e := newEndpoint(basePath, handler, relativePath, bindings)
	t.endpoints = append(t.endpoints, e)
	t.logger.Debug("route registered",
		"template", e.template,
		"bindings", len(e.bindings))
	return e
}

// Match finds the first registered endpoint whose template matches the
// request path. The path must already be separated from its query
// string.
func (t *Table) Match(path string) (*Endpoint, bool) {
	segments := splitPath(path)
	for _, e := range t.endpoints {
		if e.match(segments) {
			return e, true
		}
	}
	return nil, false
}

// Endpoints returns the registered endpoints in registration order.
func (t *Table) Endpoints() []*Endpoint {
	return t.endpoints
}
