// Package server adapts the endpoint dispatcher to net/http.
//
// The server is the transport collaborator of the core pipeline: it
// extracts method, path and query string from the incoming request,
// hands them to the dispatcher, and honors the returned status code,
// headers and JSON body. All routing, binding and inference decisions
// live in the endpoint package; this package only moves bytes.
package server
