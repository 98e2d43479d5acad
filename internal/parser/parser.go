// Package parser implements an AST parser for the HTTP request line.
// It produces shape-core AST nodes (ObjectNode, LiteralNode) from raw
// received bytes.
//
// The request line is mapped to an ObjectNode with the following structure:
//
//	{ "type": "request", "method": "GET", "target": "/index.html",
//	  "version": "1.1" }
//
// "target" is omitted when the client sent none.
package parser

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpd/internal/fastparser"
	"github.com/shapestone/shape-httpd/internal/tokenizer"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from received request bytes.
type Parser struct {
	data []byte
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse tokenizes the request line and returns an AST ObjectNode.
// Like the fast path it accepts any input.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	line := fastparser.NewParser(p.data).RequestLine()
	fields := tokenizer.Fields(string(line))

	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(fields[0], zeroPos),
		"version": ast.NewLiteralNode(fastparser.DefaultVersion, zeroPos),
	}
	if len(fields) > 1 {
		props["target"] = ast.NewLiteralNode(fields[1], zeroPos)
	}
	if len(fields) > 2 {
		props["version"] = ast.NewLiteralNode(fastparser.Version([]byte(fields[2])), zeroPos)
	}

	return ast.NewObjectNode(props, zeroPos), nil
}

// NodeToRequest converts an AST ObjectNode back to a fastparser.Request.
func NodeToRequest(node ast.SchemaNode) (*fastparser.Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if s, _ := literalString(props["type"]); s != "request" {
		return nil, fmt.Errorf("expected request node, got type %q", s)
	}

	req := &fastparser.Request{Version: fastparser.DefaultVersion}
	req.Method, _ = literalString(props["method"])
	req.Target, req.HasTarget = literalString(props["target"])
	if v, ok := literalString(props["version"]); ok {
		req.Version = v
	}

	return req, nil
}

func literalString(node ast.SchemaNode) (string, bool) {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return "", false
	}
	s, ok := lit.Value().(string)
	return s, ok
}
