package server

import (
	"net"
	"strconv"
	"time"
)

// Defaults for Config.
const (
	DefaultHost     = "127.0.0.1"
	DefaultPort     = 8088
	DefaultBacklog  = 5
	DefaultReadSize = 1024
)

// Config describes where the server listens and how it treats a connection.
type Config struct {
	Host string
	Port int

	// Backlog is the number of pending connections the kernel queues
	// before refusing new ones.
	Backlog int

	// ReadSize caps the bytes read from a connection. The request is
	// whatever a single read returns; anything past it is never seen.
	ReadSize int

	// ReadTimeout and WriteTimeout bound the read and the write of one
	// connection. Zero means no deadline.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns the loopback configuration on port 8088.
func DefaultConfig() Config {
	return Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Backlog:  DefaultBacklog,
		ReadSize: DefaultReadSize,
	}
}

// Addr returns host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) withDefaults() Config {
	if c.Backlog <= 0 {
		c.Backlog = DefaultBacklog
	}
	if c.ReadSize <= 0 {
		c.ReadSize = DefaultReadSize
	}
	return c
}
