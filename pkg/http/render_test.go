package http

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestRender_RequestLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"GET /api HTTP/1.1\r\nHost: example.com\r\n\r\n", "GET /api HTTP/1.1\r\n"},
		{"POST /form HTTP/1.0\r\n\r\n", "POST /form HTTP/1.0\r\n"},
		{"GET /index.html\r\n", "GET /index.html HTTP/1.1\r\n"},
		{"GET\r\n", "GET\r\n"},
	}

	for _, tt := range tests {
		node, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.input, err)
		}

		data, err := Render(node)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}

		if string(data) != tt.want {
			t.Errorf("Render(Parse(%q)) = %q, want %q", tt.input, string(data), tt.want)
		}
	}
}

func TestRender_OmittedVersionUsesDefault(t *testing.T) {
	node, err := Parse("GET /x\r\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	data, err := Render(node)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(data) != "GET /x HTTP/1.1\r\n" {
		t.Errorf("Render() = %q, want %q", data, "GET /x HTTP/1.1\r\n")
	}
}

func TestRender_WrongNode(t *testing.T) {
	if _, err := Render(ast.NewLiteralNode("GET", ast.Position{})); err == nil {
		t.Error("Render() of a literal should fail")
	}
}
