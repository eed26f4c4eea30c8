// Package endpoint implements the route table, path matching,
// parameter binding and request dispatch.
//
// Routes are registered once at startup from (base path, handler,
// relative path, bindings) and are immutable afterward. A template is
// a "/"-joined sequence of segments; a segment is a literal or a
// placeholder written as a parenthesized name:
//
//	table := endpoint.NewTable()
//	table.Register("test", getUser, "user/(id)",
//	    endpoint.PathParam("id", endpoint.TypeInt))
//
// Matching compares segment counts and then each pair literally, with
// a placeholder accepting any single non-empty segment. The first
// registered match wins. Binding resolves handler arguments in
// declaration order from placeholders and query keys, coercing each
// to its declared primitive type; the first failure aborts binding.
//
// Dispatch runs the whole pipeline per request and maps outcomes to
// statuses: 405 for a non-GET verb, 404 for no route, 400 for a
// binding failure, 500 for a handler or inference failure, 200 with
// the inferred body otherwise.
package endpoint
