// Command crudeserver serves a directory of static files over HTTP/1.1,
// one connection at a time.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/shapestone/shape-httpd/internal/static"
	"github.com/shapestone/shape-httpd/pkg/http"
	"github.com/shapestone/shape-httpd/pkg/httpd"
	"github.com/shapestone/shape-httpd/pkg/server"
)

var (
	host     = flag.String("host", server.DefaultHost, "address to listen on")
	port     = flag.Int("port", server.DefaultPort, "port to listen on")
	root     = flag.String("root", "static", "directory GET requests are served from")
	logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	parser   = flag.String("parser", "fast", "request-line parser (fast, ast)")
)

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		log = log.Level(lvl)
	} else {
		log.Warn().Str("level", *logLevel).Msg("unknown log level, using info")
		log = log.Level(zerolog.InfoLevel)
	}

	cfg := server.DefaultConfig()
	cfg.Host = *host
	cfg.Port = *port

	parse := http.ParseRequest
	switch *parser {
	case "fast":
	case "ast":
		parse = http.ParseRequestTree
	default:
		log.Fatal().Str("parser", *parser).Msg("unknown parser")
	}

	dir := static.NewDir(*root)
	log.Info().Str("root", dir.Root()).Str("parser", *parser).Msg("serving static files")

	d := httpd.New(dir,
		httpd.WithTypeGuesser(static.GuessType),
		httpd.WithRequestParser(parse),
		httpd.WithLogger(log),
	)
	s := server.New(cfg, d, server.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.ListenAndServe(ctx); err != nil && !errors.Is(err, server.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
