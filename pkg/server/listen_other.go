//go:build !unix

package server

import (
	"context"
	"net"
	"strconv"
)

// listen falls back to the runtime's listener. The runtime sets
// SO_REUSEADDR where the platform supports it; the backlog is the
// system default.
func listen(host string, port, _ int) (net.Listener, error) {
	var lc net.ListenConfig
	return lc.Listen(context.Background(), "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
}
