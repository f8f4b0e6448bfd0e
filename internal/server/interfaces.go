package server

import "net"

// Server runs every configured transport until the process is signalled.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT, then shuts down.
	RunServer()
	Shutdown()
}

// transport is a single listener-backed server.
type transport interface {
	Name() string
	Addr() net.Addr
	// Serve blocks; a stop requested through Shutdown is not an error.
	Serve() error
	Shutdown()
	// Close releases the listener of a transport that never served.
	Close() error
}
