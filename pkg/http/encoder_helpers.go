package http

import "strconv"

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendStatusLine appends "HTTP/VERSION STATUS REASON\r\n" to buf.
func appendStatusLine(buf []byte, version string, statusCode int, reason string) []byte {
	buf = append(buf, "HTTP/"...)
	buf = append(buf, version...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(statusCode), 10)
	buf = append(buf, ' ')
	buf = append(buf, reason...)
	return appendCRLF(buf)
}

// appendHeaders appends all headers in "Key: Value\r\n" format.
// CR and LF inside a key or value are written as a space so the header
// block can never end early.
func appendHeaders(buf []byte, headers Headers) []byte {
	for _, h := range headers {
		buf = appendFieldText(buf, h.Key)
		buf = append(buf, ':', ' ')
		buf = appendFieldText(buf, h.Value)
		buf = appendCRLF(buf)
	}
	return buf
}

func appendFieldText(buf []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\r' || c == '\n' {
			c = ' '
		}
		buf = append(buf, c)
	}
	return buf
}
