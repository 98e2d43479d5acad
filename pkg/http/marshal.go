package http

import (
	"fmt"
	"sync"
)

// maxPooledBuf caps the capacity of buffers returned to bufPool so one
// large body does not stay pinned for the life of the process.
const maxPooledBuf = 64 << 10

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the HTTP/1.1 wire-format encoding of v:
//
//	status-line CRLF-terminated header lines CRLF body
//
// v must be a *Response or implement Marshaler. No header is added beyond
// the ones carried by the response, so the output for a given response is
// always byte-identical.
//
// Marshal uses a sync.Pool buffer internally and returns a fresh copy.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("http: Marshal(nil)")
	}

	// Check for Marshaler interface
	if m, ok := v.(Marshaler); ok {
		return m.MarshalHTTP()
	}

	resp, ok := v.(*Response)
	if !ok || resp == nil {
		return nil, fmt.Errorf("http: Marshal unsupported type %T (expected *Response)", v)
	}
	if resp.Reason == "" {
		return nil, fmt.Errorf("http: Marshal response %d without reason phrase", resp.StatusCode)
	}

	bp := bufPool.Get().(*[]byte)
	buf := appendResponse((*bp)[:0], resp)

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	releaseBuf(bp)
	return result, nil
}

// releaseBuf returns bp to bufPool unless it has grown past maxPooledBuf.
// It reports whether the buffer was pooled.
func releaseBuf(bp *[]byte) bool {
	if cap(*bp) > maxPooledBuf {
		return false
	}
	bufPool.Put(bp)
	return true
}

// appendResponse serializes a Response to HTTP/1.1 wire format.
// It appends "HTTP/1.1 STATUS REASON\r\n" followed by headers, a blank line and the body.
func appendResponse(buf []byte, resp *Response) []byte {
	buf = appendStatusLine(buf, Version, resp.StatusCode, resp.Reason)
	buf = appendHeaders(buf, resp.Headers)
	buf = appendCRLF(buf) // empty line before body
	return append(buf, resp.Body...)
}
