package http

import (
	"bytes"
	"io"
	"strconv"
)

// ValidateResponse checks that data has the shape Marshal produces:
// a status line with a known code and matching reason, "Name: Value"
// header lines, and exactly one blank line before the body.
// It returns nil if valid, or a *ParseError naming the problem.
func ValidateResponse(data []byte) error {
	head, _, found := bytes.Cut(data, []byte("\r\n\r\n"))
	if !found {
		return newParseError("missing blank line after headers", 0)
	}

	lines := bytes.Split(head, []byte("\r\n"))
	if err := validateStatusLine(lines[0]); err != nil {
		return err
	}

	for i, line := range lines[1:] {
		name, _, ok := bytes.Cut(line, []byte(": "))
		if !ok || len(name) == 0 {
			return newParseError("malformed header line: "+strconv.Quote(string(line)), i+2)
		}
		if bytes.ContainsAny(line, "\r\n") {
			return newParseError("bare CR or LF in header line", i+2)
		}
	}
	return nil
}

// ValidateResponseReader reads all data from r and validates it as a response.
func ValidateResponseReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return ValidateResponse(data)
}

func validateStatusLine(line []byte) error {
	rest, ok := bytes.CutPrefix(line, []byte("HTTP/"+Version+" "))
	if !ok {
		return newParseError("status line must start with HTTP/"+Version, 1)
	}
	codeBytes, reason, ok := bytes.Cut(rest, []byte{' '})
	if !ok {
		return newParseError("status line has no reason phrase", 1)
	}
	code, err := strconv.Atoi(string(codeBytes))
	if err != nil {
		return newParseError("invalid status code: "+string(codeBytes), 1)
	}
	want, known := StatusText(code)
	if !known {
		return newParseError("unknown status code: "+string(codeBytes), 1)
	}
	if string(reason) != want {
		return newParseError("reason "+strconv.Quote(string(reason))+" does not match status "+string(codeBytes), 1)
	}
	return nil
}
