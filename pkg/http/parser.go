package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpd/internal/fastparser"
	"github.com/shapestone/shape-httpd/internal/parser"
)

// ParseRequest parses the request line at the start of data.
//
// The line ends at the first CRLF and is split on single spaces into
// method, target and version. A missing target leaves HasTarget false,
// a missing version yields "1.1". Headers and body are ignored.
//
// ParseRequest never fails; malformed input produces a Request whose
// method the dispatcher will not recognize.
func ParseRequest(data []byte) *Request {
	return fromFast(fastparser.ParseRequest(data))
}

// ParseRequestTree is ParseRequest by way of the AST: it tokenizes the
// request line with shape-core and converts the resulting node. It never
// fails and returns the same Request as ParseRequest for valid UTF-8 input.
func ParseRequestTree(data []byte) *Request {
	node, err := parser.NewParser(data).Parse()
	if err == nil {
		if req, err := NodeToRequest(node); err == nil {
			return req
		}
	}
	return ParseRequest(data)
}

// Parse parses the request line of input into an AST.
//
// The result is an ast.ObjectNode:
//
//	{ "type": "request", "method": "GET", "target": "/index.html",
//	  "version": "1.1" }
//
// "target" is absent when the client omitted it.
func Parse(input string) (ast.SchemaNode, error) {
	p := parser.NewParser([]byte(input))
	return p.Parse()
}

// ParseReader reads all data from r and parses its request line into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := parser.NewParser(data)
	return p.Parse()
}

// NodeToRequest converts an AST ObjectNode produced by Parse to a Request.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	fpReq, err := parser.NodeToRequest(node)
	if err != nil {
		return nil, err
	}
	return fromFast(fpReq), nil
}

func fromFast(r *fastparser.Request) *Request {
	return &Request{
		Method:    r.Method,
		Target:    r.Target,
		HasTarget: r.HasTarget,
		Version:   r.Version,
	}
}
