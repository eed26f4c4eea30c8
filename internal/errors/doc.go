// Package errors provides structured, coded errors for the
// configuration layer and the CLI. Dispatch-time errors (routing,
// binding, inference) live with their packages under pkg/; the coded
// form here exists for surfaces read by operators, not by clients.
package errors
