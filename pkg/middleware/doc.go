// Package middleware provides observability wrappers for the HTTP
// transport: Prometheus metrics and OpenTelemetry tracing. Both wrap
// plain http.Handler values, so they compose with chi and the stdlib
// mux alike.
package middleware
