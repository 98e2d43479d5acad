package http

import (
	"bytes"
	"testing"
)

func TestMarshal_Response(t *testing.T) {
	resp := NewResponse(StatusOK, Headers{{Key: "Content-Type", Value: "text/css"}}, []byte("body{}"))

	data, err := Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "HTTP/1.1 200 OK\r\n" +
		"Server: CrudeServer\r\n" +
		"Content-Type: text/css\r\n" +
		"\r\n" +
		"body{}"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), want)
	}
}

func TestMarshal_NotImplemented(t *testing.T) {
	data, err := Marshal(NewResponse(StatusNotImplemented, nil, []byte("<h1>501 Not Implemented</h1>")))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "HTTP/1.1 501 Not Implemented\r\n" +
		"Server: CrudeServer\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<h1>501 Not Implemented</h1>"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), want)
	}
}

func TestMarshal_EmptyBody(t *testing.T) {
	data, err := Marshal(NewResponse(StatusOK, nil, nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.HasSuffix(data, []byte("text/html\r\n\r\n")) {
		t.Errorf("Marshal() = %q, want header block ending the message", data)
	}
}

func TestMarshal_SingleSeparator(t *testing.T) {
	resp := NewResponse(StatusOK, Headers{{Key: "Content-Type", Value: "a\r\n\r\nb"}}, []byte("no separator here"))
	data, err := Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if n := bytes.Count(data, []byte("\r\n\r\n")); n != 1 {
		t.Errorf("separator count = %d, want 1 in %q", n, data)
	}
}

func TestMarshal_Idempotent(t *testing.T) {
	resp := NewResponse(StatusNotFound, nil, []byte("<h1>404 Not Found</h1>"))
	first, err := Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Marshal(resp)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("Marshal() not stable:\n%q\n%q", first, again)
		}
	}
}

func TestMarshal_Errors(t *testing.T) {
	if _, err := Marshal(nil); err == nil {
		t.Error("Marshal(nil) should fail")
	}
	if _, err := Marshal("not a response"); err == nil {
		t.Error("Marshal(string) should fail")
	}
	if _, err := Marshal(&Response{StatusCode: 299}); err == nil {
		t.Error("Marshal of response without reason should fail")
	}
}

type staticMarshaler []byte

func (m staticMarshaler) MarshalHTTP() ([]byte, error) { return m, nil }

func TestMarshal_Marshaler(t *testing.T) {
	data, err := Marshal(staticMarshaler("raw"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "raw" {
		t.Errorf("Marshal() = %q, want raw", data)
	}
}

func TestMarshal_NilResponse(t *testing.T) {
	var resp *Response
	if _, err := Marshal(resp); err == nil {
		t.Error("Marshal((*Response)(nil)) should fail")
	}
}

func TestReleaseBuf_DropsLargeBuffers(t *testing.T) {
	small := make([]byte, 0, 2048)
	if !releaseBuf(&small) {
		t.Error("releaseBuf() dropped a 2 KiB buffer")
	}

	large := make([]byte, 0, maxPooledBuf+1)
	if releaseBuf(&large) {
		t.Errorf("releaseBuf() pooled a buffer of cap %d", cap(large))
	}
}

func TestMarshal_LargeBody(t *testing.T) {
	body := bytes.Repeat([]byte("x"), 2*maxPooledBuf)
	data, err := Marshal(NewResponse(StatusOK, nil, body))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.HasSuffix(data, body) {
		t.Error("Marshal() lost the large body")
	}
}
