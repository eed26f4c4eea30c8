package server

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/restlight-dev/restlight/pkg/endpoint"
	"github.com/restlight-dev/restlight/pkg/render"
)

// Config configures the HTTP transport adapter.
type Config struct {
	// Pretty enables pretty-printed response bodies. Meant for
	// development; the wire default is compact.
	Pretty bool
}

// Server adapts the dispatcher to net/http. It owns no request state:
// each request runs its full pipeline to completion independently, so
// the transport may serve connections in parallel.
type Server struct {
	dispatcher *endpoint.Dispatcher
	renderer   *render.Renderer
	logger     *slog.Logger
}

// New creates a Server over the given dispatcher.
func New(dispatcher *endpoint.Dispatcher, config Config) *Server {
	return &Server{
		dispatcher: dispatcher,
		renderer:   render.NewRenderer(render.RendererConfig{Pretty: config.Pretty}),
		logger:     slog.Default().With("component", "server"),
	}
}

// Logger returns the server's logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// SetLogger replaces the server's logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns an http.Handler for mounting in external routers.
// This is the integration point for chi, stdlib mux and friends:
//
//	r := chi.NewRouter()
//	r.Handle("/*", srv.Handler())
//	http.ListenAndServe(":3000", r)
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.ServeHTTP)
}

// ServeHTTP implements http.Handler. It translates the request into
// the dispatcher's contract, runs the pipeline, and writes the status
// code, headers and rendered JSON body back.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	resp := s.dispatcher.Dispatch(endpoint.Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	})

	body, err := s.renderer.RenderToString(resp.Body)
	if err != nil {
		// Rendering a dispatcher-produced tree cannot normally fail;
		// if it does, the request still gets a well-formed response.
		s.logger.Error("render failed", "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"render failed"}`)
		return
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.Status)
	io.WriteString(w, body)

	s.logger.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", resp.Status,
		"duration", time.Since(start))
}
