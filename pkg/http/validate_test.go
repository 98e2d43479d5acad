package http

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestValidateResponse_Valid(t *testing.T) {
	for _, code := range []int{StatusOK, StatusNotFound, StatusNotImplemented} {
		data, err := Marshal(NewResponse(code, nil, []byte("<h1>body</h1>\r\n\r\nmore")))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if err := ValidateResponse(data); err != nil {
			t.Errorf("ValidateResponse(%d) = %v, want nil", code, err)
		}
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no separator", "HTTP/1.1 200 OK\r\nServer: x\r\n"},
		{"wrong version", "HTTP/1.0 200 OK\r\n\r\n"},
		{"no reason", "HTTP/1.1 200\r\n\r\n"},
		{"bad code", "HTTP/1.1 abc OK\r\n\r\n"},
		{"unknown code", "HTTP/1.1 500 Internal Server Error\r\n\r\n"},
		{"reason mismatch", "HTTP/1.1 404 OK\r\n\r\n"},
		{"header without colon", "HTTP/1.1 200 OK\r\nServer\r\n\r\n"},
		{"bare lf in header", "HTTP/1.1 200 OK\r\nServer: a\nb\r\n\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResponse([]byte(tt.input))
			if err == nil {
				t.Fatal("ValidateResponse() = nil, want error")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error %T is not *ParseError", err)
			}
		})
	}
}

func TestValidateResponseReader(t *testing.T) {
	r := strings.NewReader("HTTP/1.1 404 Not Found\r\nServer: CrudeServer\r\nContent-Type: text/html\r\n\r\n<h1>404 Not Found</h1>")
	if err := ValidateResponseReader(r); err != nil {
		t.Errorf("ValidateResponseReader() = %v, want nil", err)
	}
}

func TestValidateResponseReader_IOError(t *testing.T) {
	r := &errReader{err: io.ErrUnexpectedEOF}
	if err := ValidateResponseReader(r); err == nil {
		t.Error("ValidateResponseReader() = nil, want error for reader failure")
	}
}

func TestParseError_Error(t *testing.T) {
	if got := newParseError("boom", 3).Error(); got != "http: parse error at line 3: boom" {
		t.Errorf("Error() = %q", got)
	}
	if got := newParseError("boom", 0).Error(); got != "http: boom" {
		t.Errorf("Error() = %q", got)
	}
}
