// Package restlight bundles the JSON value tree, the inference
// converter and the endpoint dispatcher into a small read-only JSON
// service toolkit.
//
// A minimal service:
//
//	app := restlight.New()
//	app.Register("test", getUser, "user/(id)",
//	    endpoint.PathParam("id", endpoint.TypeInt))
//	http.ListenAndServe(":3000", app.Handler())
package restlight

import (
	"log/slog"
	"net/http"

	"github.com/restlight-dev/restlight/pkg/endpoint"
	"github.com/restlight-dev/restlight/pkg/server"
)

// Option configures an App.
type Option func(*App)

// WithPretty enables pretty-printed response bodies.
func WithPretty(pretty bool) Option {
	return func(a *App) {
		a.pretty = pretty
	}
}

// WithLogger sets the logger used by the app and its components.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// App wires a route table, a dispatcher and the HTTP transport
// together. Register routes at startup, then mount Handler; the table
// is immutable once serving begins.
type App struct {
	table      *endpoint.Table
	dispatcher *endpoint.Dispatcher
	srv        *server.Server
	logger     *slog.Logger
	pretty     bool
}

// New creates an App.
func New(opts ...Option) *App {
	a := &App{
		table:  endpoint.NewTable(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.table.SetLogger(a.logger.With("component", "endpoint"))
	a.dispatcher = endpoint.NewDispatcher(a.table)
	a.dispatcher.SetLogger(a.logger.With("component", "dispatch"))
	a.srv = server.New(a.dispatcher, server.Config{Pretty: a.pretty})
	a.srv.SetLogger(a.logger.With("component", "server"))
	return a
}

// Register adds a route. See endpoint.Table.Register.
func (a *App) Register(basePath string, handler endpoint.Handler, relativePath string, bindings ...endpoint.Binding) *endpoint.Endpoint {
	return a.table.Register(basePath, handler, relativePath, bindings...)
}

// Table returns the route table.
func (a *App) Table() *endpoint.Table {
	return a.table
}

// Dispatcher returns the dispatcher, for callers that want to run the
// pipeline without an HTTP transport.
func (a *App) Dispatcher() *endpoint.Dispatcher {
	return a.dispatcher
}

// Handler returns the app as an http.Handler for mounting in chi or
// any other router.
func (a *App) Handler() http.Handler {
	return a.srv.Handler()
}

// ListenAndServe serves the app on the given address.
func (a *App) ListenAndServe(addr string) error {
	a.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, a.Handler())
}
