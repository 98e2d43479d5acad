// Package server runs a blocking, one-connection-at-a-time TCP accept loop.
//
// For every accepted connection the Server performs exactly one read of
// at most Config.ReadSize bytes, hands those bytes to its Handler, writes
// the returned bytes back and closes the connection. The next connection
// is not accepted until the current one is closed.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrServerClosed is returned by Serve after its context is cancelled.
var ErrServerClosed = errors.New("server: closed")

// Handler turns the bytes received on a connection into the bytes sent back.
type Handler interface {
	HandleRequest(data []byte) []byte
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(data []byte) []byte

// HandleRequest calls f(data).
func (f HandlerFunc) HandleRequest(data []byte) []byte {
	return f(data)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for connection events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// Server owns the listening socket and the accept loop.
type Server struct {
	cfg     Config
	handler Handler
	log     zerolog.Logger
}

// New returns a Server that passes every request to h.
func New(cfg Config, h Handler, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg.withDefaults(),
		handler: h,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Listen binds the configured address with SO_REUSEADDR set and the
// configured backlog.
func (s *Server) Listen() (net.Listener, error) {
	l, err := listen(s.cfg.Host, s.cfg.Port, s.cfg.Backlog)
	if err != nil {
		return nil, fmt.Errorf("server: listen %s: %w", s.cfg.Addr(), err)
	}
	return l, nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l and handles each one to completion
// before accepting the next. It closes l on return.
//
// Serve returns ErrServerClosed once ctx is cancelled. Any accept, read
// or write failure other than an expired deadline ends the loop and is
// returned.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	defer l.Close()

	stop := context.AfterFunc(ctx, func() {
		l.Close()
	})
	defer stop()

	s.log.Info().Str("addr", l.Addr().String()).Msg("listening for requests")

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ErrServerClosed
			}
			return fmt.Errorf("server: accept: %w", err)
		}

		if err := s.serveConn(conn); err != nil {
			return err
		}
	}
}

func (s *Server) serveConn(conn net.Conn) error {
	defer conn.Close()

	log := s.log.With().
		Str("conn", uuid.NewString()).
		Str("remote", conn.RemoteAddr().String()).
		Logger()
	log.Info().Msg("connected")

	if s.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
			return fmt.Errorf("server: set read deadline: %w", err)
		}
	}

	buf := make([]byte, s.cfg.ReadSize)
	n, err := conn.Read(buf)
	switch {
	case err == nil, errors.Is(err, io.EOF):
	case errors.Is(err, os.ErrDeadlineExceeded):
		log.Warn().Err(err).Msg("read deadline exceeded, dropping connection")
		return nil
	default:
		return fmt.Errorf("server: read: %w", err)
	}

	resp := s.handler.HandleRequest(buf[:n])

	if s.cfg.WriteTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
			return fmt.Errorf("server: set write deadline: %w", err)
		}
	}

	if _, err := conn.Write(resp); err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			log.Warn().Err(err).Msg("write deadline exceeded, dropping connection")
			return nil
		}
		return fmt.Errorf("server: write: %w", err)
	}

	log.Debug().Int("read", n).Int("written", len(resp)).Msg("connection done")
	return nil
}
