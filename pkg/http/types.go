// Package http provides the HTTP/1.1 wire types used by the server:
// request-line parsing and byte-exact response serialization.
//
// Parsing is permissive. Every input yields a Request; an empty or
// unknown method is left for the dispatcher to answer with 501.
//
// # Parsing APIs
//
// The package provides two parsing paths that agree on valid UTF-8 input:
//
//   - ParseRequest - Fast direct scan, used on the connection path
//   - Parse/ParseReader - AST-based parsing via shape-core
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// The status table and default header set are never mutated.
package http

import "strings"

// Version is the protocol version written on every status line.
const Version = "1.1"

// Request represents a parsed HTTP request line.
// A Request is not modified after parsing.
type Request struct {
	Method    string // "GET", "POST", or whatever the client sent
	Target    string // request-target "/index.html"
	HasTarget bool   // false when the client omitted the target
	Version   string // "1.1"; the HTTP/ prefix is dropped
}

// Response represents an HTTP/1.1 response message.
type Response struct {
	StatusCode int     // 200, 404, 501
	Reason     string  // "OK", "Not Found", "Not Implemented"
	Headers    Headers // ordered, unique keys
	Body       []byte  // raw body (nil if none)
}

// Header represents a single HTTP header key-value pair.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered list of HTTP headers.
// HTTP headers are case-insensitive by spec but we preserve original case.
type Headers []Header

// Get returns the first header value for the given key (case-insensitive).
// Returns empty string if not found.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Set replaces the first header with the given key (case-insensitive) or appends if not found.
// A replaced header keeps its position.
func (h *Headers) Set(key, value string) {
	for i, hdr := range *h {
		if strings.EqualFold(hdr.Key, key) {
			(*h)[i].Value = value
			// Remove any subsequent headers with same key
			j := i + 1
			for j < len(*h) {
				if strings.EqualFold((*h)[j].Key, key) {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Clone returns a deep copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// Marshaler is the interface implemented by types that can marshal themselves
// into valid HTTP wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}

// Standard status codes understood by the server.
const (
	StatusOK             = 200
	StatusNotFound       = 404
	StatusNotImplemented = 501
)

var statusText = map[int]string{
	StatusOK:             "OK",
	StatusNotFound:       "Not Found",
	StatusNotImplemented: "Not Implemented",
}

// StatusText returns the reason phrase for code and whether code is known.
func StatusText(code int) (string, bool) {
	reason, ok := statusText[code]
	return reason, ok
}

var defaultHeaders = Headers{
	{Key: "Server", Value: "CrudeServer"},
	{Key: "Content-Type", Value: "text/html"},
}

// DefaultHeaders returns a copy of the headers every response starts from.
func DefaultHeaders() Headers {
	return defaultHeaders.Clone()
}
