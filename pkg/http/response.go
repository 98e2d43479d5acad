package http

import "fmt"

// NewResponse builds a response for code with the default headers
// merged with extra and the given body.
//
// It panics if code has no entry in the status table; handlers only
// ever pass the codes this package defines.
func NewResponse(code int, extra Headers, body []byte) *Response {
	return &Response{
		StatusCode: code,
		Reason:     mustStatusText(code),
		Headers:    mergeHeaders(extra),
		Body:       body,
	}
}

// BuildStatusLine returns "HTTP/1.1 <code> <reason>\r\n".
// It panics on an unknown code.
func BuildStatusLine(code int) []byte {
	return appendStatusLine(nil, Version, code, mustStatusText(code))
}

// BuildHeaders returns the default header block merged with extra, one
// "Name: Value\r\n" line per header. A key in extra replaces the default
// value in place; new keys follow in the order given.
func BuildHeaders(extra Headers) []byte {
	return appendHeaders(nil, mergeHeaders(extra))
}

func mergeHeaders(extra Headers) Headers {
	headers := DefaultHeaders()
	for _, h := range extra {
		headers.Set(h.Key, h.Value)
	}
	return headers
}

func mustStatusText(code int) string {
	reason, ok := StatusText(code)
	if !ok {
		panic(fmt.Sprintf("http: no reason phrase for status code %d", code))
	}
	return reason
}
