package httpd

import (
	"strings"

	"github.com/shapestone/shape-httpd/pkg/http"
)

var (
	notFoundBody       = []byte("<h1>404 Not Found</h1>")
	notImplementedBody = []byte("<h1>501 Not Implemented</h1>")
)

// defaultContentType is sent when the file's type cannot be guessed.
const defaultContentType = "text/html"

// handleGet serves the file named by the target with its leading slashes
// removed. An absent target names the content root itself, which is not a
// file, so it is answered like any other missing path.
func (d *Dispatcher) handleGet(req *http.Request) *http.Response {
	name := strings.TrimLeft(req.Target, "/")

	if !d.files.Exists(name) {
		return http.NewResponse(http.StatusNotFound, nil, notFoundBody)
	}

	body, err := d.files.ReadFile(name)
	if err != nil {
		d.log.Warn().Err(err).Str("name", name).Msg("read static file")
		return http.NewResponse(http.StatusNotFound, nil, notFoundBody)
	}

	contentType := d.guessType(name)
	if contentType == "" {
		contentType = defaultContentType
	}
	return http.NewResponse(http.StatusOK, http.Headers{{Key: "Content-Type", Value: contentType}}, body)
}

func handleNotImplemented(*http.Request) *http.Response {
	return http.NewResponse(http.StatusNotImplemented, nil, notImplementedBody)
}
