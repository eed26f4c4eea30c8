package endpoint

import (
	"log/slog"
	"net/http"

	"github.com/restlight-dev/restlight/pkg/infer"
	"github.com/restlight-dev/restlight/pkg/jsonval"
)

// Request is what the transport collaborator hands the dispatcher:
// the verb, the path already separated from its query string, and the
// raw query string.
type Request struct {
	Method   string
	Path     string
	RawQuery string
}

// Response is what the dispatcher hands back: a status code, a JSON
// body, and response headers the transport must honor.
type Response struct {
	Status  int
	Body    *jsonval.Value
	Headers map[string]string
}

// Dispatcher runs the one-shot request pipeline:
// match → bind → invoke → infer. It is stateless across calls; the
// only shared state is the immutable route table.
type Dispatcher struct {
	table  *Table
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher over the given route table.
func NewDispatcher(table *Table) *Dispatcher {
	return &Dispatcher{
		table:  table,
		logger: slog.Default().With("component", "dispatch"),
	}
}

// SetLogger replaces the dispatcher's logger.
func (d *Dispatcher) SetLogger(logger *slog.Logger) {
	d.logger = logger
}

// Dispatch processes one request to completion. Binding and routing
// failures map to their own status codes rather than collapsing into
// a generic error, since those are client-correctable. A handler
// failure, panics included, is confined to this request.
func (d *Dispatcher) Dispatch(req Request) Response {
	if req.Method != http.MethodGet {
		return errorResponse(http.StatusMethodNotAllowed, ErrMethodNotSupported)
	}

	ep, ok := d.table.Match(req.Path)
	if !ok {
		return errorResponse(http.StatusNotFound, ErrRouteNotFound)
	}

	args, err := ep.bind(req.Path, ParseQuery(req.RawQuery))
	if err != nil {
		d.logger.Debug("binding failed", "template", ep.template, "error", err)
		return errorResponse(http.StatusBadRequest, err)
	}

	result, err := d.invoke(ep, args)
	if err != nil {
		d.logger.Error("handler failed", "template", ep.template, "error", err)
		return errorResponse(http.StatusInternalServerError, err)
	}

	body, err := infer.Infer(result)
	if err != nil {
		d.logger.Error("inference failed", "template", ep.template, "error", err)
		return errorResponse(http.StatusInternalServerError, err)
	}

	return Response{
		Status:  http.StatusOK,
		Body:    body,
		Headers: jsonHeaders(),
	}
}

// invoke calls the handler, converting a panic into an InvokeError so
// a misbehaving handler never takes the process down.
func (d *Dispatcher) invoke(ep *Endpoint, args []any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &InvokeError{Template: ep.template, Panic: r}
		}
	}()

	result, err = ep.handler(args...)
	if err != nil {
		return nil, &InvokeError{Template: ep.template, Err: err}
	}
	return result, nil
}

// errorResponse wraps an error into a JSON error body.
func errorResponse(status int, err error) Response {
	return Response{
		Status: status,
		Body: jsonval.Object(
			jsonval.Member{Key: "error", Value: jsonval.String(err.Error())},
		),
		Headers: jsonHeaders(),
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}
