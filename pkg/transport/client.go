package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

// Client defaults.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Connection errors.
var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrUnexpectedPong   = errors.New("unexpected pong sequence")
)

// ClientConfig configures a client.
type ClientConfig struct {
	// MaxMessageSize is the maximum message size (default: 64KB).
	MaxMessageSize uint32

	// ConnectTimeout is the connection timeout (default: 10s).
	ConnectTimeout time.Duration

	// RequestTimeout bounds a request when the context has no deadline
	// (default: 30s).
	RequestTimeout time.Duration

	// Logger for event logging (optional).
	Logger log.Logger
}

// Client connects to device servers.
type Client struct {
	config ClientConfig
}

// NewClient creates a new client.
func NewClient(config ClientConfig) *Client {
	if config.MaxMessageSize == 0 {
		config.MaxMessageSize = DefaultMaxMessageSize
	}
	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = DefaultConnectTimeout
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	return &Client{config: config}
}

// Connect establishes a connection to the specified address.
func (c *Client) Connect(ctx context.Context, address string) (*ClientConn, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.ConnectTimeout)
		defer cancel()
	}

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dial failed: %w", err)
	}

	framer := NewFramerWithMaxSize(conn, c.config.MaxMessageSize)
	if c.config.Logger != nil {
		framer.SetLogger(c.config.Logger, uuid.New().String())
	}

	return &ClientConn{
		conn:    conn,
		framer:  framer,
		client:  c,
		closeCh: make(chan struct{}),
	}, nil
}

// ClientConn represents a connection from client to server.
// Requests on one connection are serialized.
type ClientConn struct {
	conn    net.Conn
	framer  *Framer
	client  *Client
	closeCh chan struct{}

	closeOnce sync.Once
	readMu    sync.Mutex
	reqMu     sync.Mutex
	nextID    atomic.Uint32
	pingSeq   atomic.Uint32
}

// LocalAddr returns the local network address.
func (c *ClientConn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// RemoteAddr returns the remote network address.
func (c *ClientConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Send sends a message to the server.
func (c *ClientConn) Send(data []byte) error {
	select {
	case <-c.closeCh:
		return ErrConnectionClosed
	default:
	}
	return c.framer.WriteFrame(data)
}

// Receive receives a message from the server with timeout.
// A zero timeout waits indefinitely.
func (c *ClientConn) Receive(timeout time.Duration) ([]byte, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	select {
	case <-c.closeCh:
		return nil, ErrConnectionClosed
	default:
	}

	if timeout > 0 {
		c.conn.SetReadDeadline(time.Now().Add(timeout))
		defer c.conn.SetReadDeadline(time.Time{})
	}

	return c.framer.ReadFrame()
}

// Close closes the connection.
func (c *ClientConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closeCh)
		err = c.conn.Close()
	})
	return err
}

// SendClose sends a close control message.
func (c *ClientConn) SendClose() error {
	data, err := wire.EncodeControlMessage(&wire.ControlMessage{Type: wire.ControlClose})
	if err != nil {
		return err
	}
	return c.Send(data)
}

func (c *ClientConn) timeout(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		return time.Until(deadline)
	}
	return c.client.config.RequestTimeout
}

// Ping sends a ping and waits for the matching pong. It returns the
// round-trip time.
func (c *ClientConn) Ping(ctx context.Context) (time.Duration, error) {
	c.reqMu.Lock()
	defer c.reqMu.Unlock()

	seq := c.pingSeq.Add(1)
	data, err := wire.EncodeControlMessage(&wire.ControlMessage{Type: wire.ControlPing, Sequence: seq})
	if err != nil {
		return 0, err
	}

	start := time.Now()
	if err := c.Send(data); err != nil {
		return 0, err
	}

	for {
		frame, err := c.Receive(c.timeout(ctx))
		if err != nil {
			return 0, err
		}
		msg, err := wire.DecodeControlMessage(frame)
		if err != nil || msg.Type != wire.ControlPong {
			continue
		}
		if msg.Sequence != seq {
			return 0, fmt.Errorf("%w: got %d, want %d", ErrUnexpectedPong, msg.Sequence, seq)
		}
		return time.Since(start), nil
	}
}

// Request sends a request and waits for the response with the same
// message ID. Responses for other IDs and pongs are skipped.
func (c *ClientConn) Request(ctx context.Context, op wire.Operation, name string, value any) (*wire.Response, error) {
	c.reqMu.Lock()
	defer c.reqMu.Unlock()

	req := &wire.Request{
		MessageID: c.nextID.Add(1),
		Operation: op,
		Name:      name,
		Value:     value,
	}
	data, err := wire.EncodeRequest(req)
	if err != nil {
		return nil, err
	}
	if err := c.Send(data); err != nil {
		return nil, err
	}

	for {
		frame, err := c.Receive(c.timeout(ctx))
		if err != nil {
			return nil, err
		}

		msgType, err := wire.PeekMessageType(frame)
		if err != nil {
			return nil, err
		}
		switch msgType {
		case wire.MessageTypeControl:
			msg, err := wire.DecodeControlMessage(frame)
			if err == nil && msg.Type == wire.ControlClose {
				c.Close()
				return nil, ErrConnectionClosed
			}
			continue
		case wire.MessageTypeResponse:
		default:
			continue
		}

		resp, err := wire.DecodeResponse(frame)
		if err != nil {
			return nil, err
		}
		if resp.MessageID != req.MessageID {
			continue
		}
		return resp, nil
	}
}

// Read reads an attribute.
func (c *ClientConn) Read(ctx context.Context, name string) (any, error) {
	resp, err := c.Request(ctx, wire.OpRead, name, nil)
	if err != nil {
		return nil, err
	}
	return resp.Value, resp.Err()
}

// Write writes an attribute.
func (c *ClientConn) Write(ctx context.Context, name string, value any) error {
	resp, err := c.Request(ctx, wire.OpWrite, name, value)
	if err != nil {
		return err
	}
	return resp.Err()
}

// Invoke executes a command.
func (c *ClientConn) Invoke(ctx context.Context, name string, arg any) (any, error) {
	resp, err := c.Request(ctx, wire.OpInvoke, name, arg)
	if err != nil {
		return nil, err
	}
	return resp.Value, resp.Err()
}
