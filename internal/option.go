package internal

import "net"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	conn   net.Conn
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithConn injects an already-connected transport, bypassing socket-activation
// adoption. Tests use this with an in-memory pipe.
func WithConn(conn net.Conn) Option {
	return func(a *application) {
		a.conn = conn
	}
}
