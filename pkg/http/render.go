package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (from Parse) back to a request line,
// "METHOD TARGET HTTP/VERSION\r\n". An omitted target stays omitted. The
// node always carries a version, so a line sent without one is rendered
// with the HTTP/1.1 default: Render(Parse("GET /x\r\n")) is
// "GET /x HTTP/1.1\r\n".
func Render(node ast.SchemaNode) ([]byte, error) {
	req, err := NodeToRequest(node)
	if err != nil {
		return nil, fmt.Errorf("http: Render: %w", err)
	}

	buf := append([]byte(nil), req.Method...)
	if req.HasTarget {
		buf = append(buf, ' ')
		buf = append(buf, req.Target...)
		buf = append(buf, " HTTP/"...)
		buf = append(buf, req.Version...)
	}
	return appendCRLF(buf), nil
}
