// Package fastparser implements the request-line scanner used on the
// connection path. It scans bytes directly, without AST construction,
// and never fails: any input yields a Request.
package fastparser

import "bytes"

// DefaultVersion is reported when the request line carries no usable
// protocol version.
const DefaultVersion = "1.1"

var crlf = []byte("\r\n")

// Request is the parsed request line.
type Request struct {
	Method    string
	Target    string
	HasTarget bool // false when the client sent no target at all
	Version   string
}

// Parser scans the request line out of a received chunk.
type Parser struct {
	data []byte
}

// NewParser creates a new fast parser for the given data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// initParser initializes a parser in-place (stack-friendly, avoids heap alloc).
func initParser(p *Parser, data []byte) {
	p.data = data
}

// ParseRequest parses data with a stack-allocated parser.
func ParseRequest(data []byte) *Request {
	var p Parser
	initParser(&p, data)
	return p.ParseRequest()
}

// ParseRequest splits the request line on single spaces into method,
// target and version. Fields past the third are ignored.
func (p *Parser) ParseRequest() *Request {
	req := &Request{Version: DefaultVersion}

	method, rest, found := bytes.Cut(p.RequestLine(), []byte{' '})
	req.Method = internMethod(method)
	if !found {
		return req
	}

	target, rest, found := bytes.Cut(rest, []byte{' '})
	req.Target = string(target)
	req.HasTarget = true
	if !found {
		return req
	}

	version, _, _ := bytes.Cut(rest, []byte{' '})
	req.Version = Version(version)
	return req
}

// RequestLine returns the bytes before the first CRLF, or all of the
// data when no CRLF is present. Bare CR or LF are not line endings.
func (p *Parser) RequestLine() []byte {
	if i := bytes.Index(p.data, crlf); i >= 0 {
		return p.data[:i]
	}
	return p.data
}

// Version normalizes a protocol token: "HTTP/1.0" becomes "1.0", a token
// without the HTTP/ prefix is kept as is, and an empty token becomes
// DefaultVersion.
func Version(b []byte) string {
	if len(b) == 0 {
		return DefaultVersion
	}
	if s, ok := versions[string(b)]; ok {
		return s
	}
	if v, ok := bytes.CutPrefix(b, []byte("HTTP/")); ok {
		if len(v) == 0 {
			return DefaultVersion
		}
		return string(v)
	}
	return string(b)
}
