// Package render converts jsonval trees into JSON text.
//
// Two modes exist, selected by RendererConfig:
//
//   - Compact (default): {"k":v,...} and [v,...] with no whitespace,
//     Object members in insertion order. This is the wire format.
//   - Pretty: one member or element per line, four-space indent per
//     nesting level, Object keys sorted lexicographically. Meant for
//     debug output; the sort never leaks into compact rendering or
//     structural equality.
//
// Both renderers are visitors over the jsonval tree, so output is a
// pure function of the tree: repeated calls produce identical text.
//
// String escaping is intentionally minimal: only the double quote is
// escaped. See the quote function for the trade-off.
package render
