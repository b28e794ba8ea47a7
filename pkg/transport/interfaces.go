package transport

import "net"

// ServerConnection represents a server-side connection to a client.
// Implemented by ServerConn.
type ServerConnection interface {
	// RemoteAddr returns the remote network address of the client.
	RemoteAddr() net.Addr

	// SessionID returns the unique session identifier.
	SessionID() string

	// Send sends a message to the client.
	Send(data []byte) error

	// Close closes the connection.
	Close() error
}

var _ ServerConnection = (*ServerConn)(nil)
