// Package httpd answers HTTP/1.1 requests from a directory of static files.
//
// A Dispatcher implements server.Handler: it parses the request line,
// looks the method up in its handler table, and serializes whatever the
// handler returns. Only GET is registered by default; every other method,
// including an empty or malformed one, gets 501 Not Implemented.
package httpd

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shapestone/shape-httpd/pkg/http"
	"github.com/shapestone/shape-httpd/pkg/server"
)

// HandlerFunc produces the response for one parsed request.
type HandlerFunc func(req *http.Request) *http.Response

// FileSystem is the static content a GET handler reads from.
// Names are slash-separated and relative to the content root.
type FileSystem interface {
	Exists(name string) bool
	ReadFile(name string) ([]byte, error)
}

// TypeGuesser maps a file name to a content type, or "" when unknown.
type TypeGuesser func(name string) string

// RequestParser turns received bytes into a request. It must accept any input.
type RequestParser func(data []byte) *http.Request

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger for request events.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// WithTypeGuesser replaces the content type lookup used for files.
func WithTypeGuesser(g TypeGuesser) Option {
	return func(d *Dispatcher) {
		d.guessType = g
	}
}

// WithRequestParser replaces http.ParseRequest, for example with
// http.ParseRequestTree.
func WithRequestParser(p RequestParser) Option {
	return func(d *Dispatcher) {
		d.parse = p
	}
}

// Dispatcher selects a handler by exact, case-sensitive method match.
type Dispatcher struct {
	handlers  map[string]HandlerFunc
	fallback  HandlerFunc
	files     FileSystem
	guessType TypeGuesser
	parse     RequestParser
	log       zerolog.Logger
}

var _ server.Handler = (*Dispatcher)(nil)

// New returns a Dispatcher serving GET from files.
func New(files FileSystem, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		files:     files,
		guessType: func(string) string { return "" },
		parse:     http.ParseRequest,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.handlers = map[string]HandlerFunc{
		"GET": d.handleGet,
	}
	d.fallback = handleNotImplemented
	return d
}

// Handle registers fn for method, replacing any existing handler.
// It must not be called while the Dispatcher is serving.
//
// fn must return a non-nil response with a reason phrase, as NewResponse
// builds. Anything else is a programmer error and HandleRequest panics.
func (d *Dispatcher) Handle(method string, fn HandlerFunc) {
	d.handlers[method] = fn
}

// Lookup returns the handler for method and whether one is registered.
// When none is, the returned handler is the 501 fallback.
func (d *Dispatcher) Lookup(method string) (HandlerFunc, bool) {
	if fn, ok := d.handlers[method]; ok {
		return fn, true
	}
	return d.fallback, false
}

// Dispatch runs the handler for req and returns its response.
func (d *Dispatcher) Dispatch(req *http.Request) *http.Response {
	fn, _ := d.Lookup(req.Method)
	return fn(req)
}

// HandleRequest parses data, dispatches it and returns the serialized response.
func (d *Dispatcher) HandleRequest(data []byte) []byte {
	req := d.parse(data)
	resp := d.Dispatch(req)
	if resp == nil {
		panic(fmt.Sprintf("httpd: %q handler returned a nil response", req.Method))
	}

	d.log.Debug().
		Str("method", req.Method).
		Str("target", req.Target).
		Int("status", resp.StatusCode).
		Msg("request")

	out, err := http.Marshal(resp)
	if err != nil {
		panic(fmt.Sprintf("httpd: %q handler: %v", req.Method, err))
	}
	return out
}
