package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

// DefaultPort is the default device server port.
const DefaultPort = 9100

// ErrServerRunning is returned by Start on a running server.
var ErrServerRunning = errors.New("server already running")

// ServerConfig configures a device server.
type ServerConfig struct {
	// Address to listen on (e.g., ":9100" or "127.0.0.1:9100").
	Address string

	// MaxMessageSize is the maximum message size (default: 64KB).
	MaxMessageSize uint32

	// Logger for event logging (optional).
	Logger log.Logger

	// OnConnect is called when a new connection is established.
	OnConnect func(conn *ServerConn)

	// OnDisconnect is called when a connection is closed.
	OnDisconnect func(conn *ServerConn)

	// OnMessage is called for every non-control message. Calls for one
	// connection are sequential.
	OnMessage func(conn *ServerConn, msg []byte)

	// OnError is called when an error occurs.
	OnError func(conn *ServerConn, err error)
}

// Server is a TCP server that accepts client connections.
type Server struct {
	config   ServerConfig
	listener net.Listener

	conns   map[*ServerConn]struct{}
	connsMu sync.RWMutex

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewServer creates a new server.
func NewServer(config ServerConfig) *Server {
	if config.Address == "" {
		config.Address = fmt.Sprintf(":%d", DefaultPort)
	}
	if config.MaxMessageSize == 0 {
		config.MaxMessageSize = DefaultMaxMessageSize
	}
	return &Server{
		config: config,
		conns:  make(map[*ServerConn]struct{}),
	}
}

// Start starts the server and begins accepting connections.
func (s *Server) Start(ctx context.Context) error {
	if s.running.Load() {
		return ErrServerRunning
	}

	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.running.Store(true)

	s.wg.Add(1)
	go s.acceptLoop()

	return nil
}

// Stop stops the server and closes all connections.
func (s *Server) Stop() error {
	if !s.running.Swap(false) {
		return nil
	}

	s.cancel()
	if s.listener != nil {
		s.listener.Close()
	}

	s.connsMu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.connsMu.Unlock()

	s.wg.Wait()
	return nil
}

// Addr returns the server's listen address.
func (s *Server) Addr() net.Addr {
	if s.listener != nil {
		return s.listener.Addr()
	}
	return nil
}

// ConnectionCount returns the number of active connections.
func (s *Server) ConnectionCount() int {
	s.connsMu.RLock()
	defer s.connsMu.RUnlock()
	return len(s.conns)
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for s.running.Load() {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.running.Load() && s.config.OnError != nil {
				s.config.OnError(nil, fmt.Errorf("accept error: %w", err))
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()

	sessionID := uuid.New().String()

	framer := NewFramerWithMaxSize(conn, s.config.MaxMessageSize)
	if s.config.Logger != nil {
		framer.SetLogger(s.config.Logger, sessionID)
	}

	sconn := &ServerConn{
		conn:       conn,
		framer:     framer,
		server:     s,
		closeCh:    make(chan struct{}),
		remoteAddr: conn.RemoteAddr(),
		sessionID:  sessionID,
	}

	s.connsMu.Lock()
	if !s.running.Load() {
		s.connsMu.Unlock()
		conn.Close()
		return
	}
	s.conns[sconn] = struct{}{}
	s.connsMu.Unlock()

	sconn.logState("", "CONNECTED")
	if s.config.OnConnect != nil {
		s.config.OnConnect(sconn)
	}

	sconn.readLoop()
	sconn.Close()

	s.connsMu.Lock()
	delete(s.conns, sconn)
	s.connsMu.Unlock()

	sconn.logState("CONNECTED", "DISCONNECTED")
	if s.config.OnDisconnect != nil {
		s.config.OnDisconnect(sconn)
	}
}

// ServerConn represents a client connection to the server.
type ServerConn struct {
	conn       net.Conn
	framer     *Framer
	server     *Server
	closeCh    chan struct{}
	closeOnce  sync.Once
	remoteAddr net.Addr
	sessionID  string
}

// RemoteAddr returns the remote address of the client.
func (c *ServerConn) RemoteAddr() net.Addr {
	return c.remoteAddr
}

// SessionID returns the unique session identifier.
func (c *ServerConn) SessionID() string {
	return c.sessionID
}

// Send sends a message to the client.
func (c *ServerConn) Send(data []byte) error {
	select {
	case <-c.closeCh:
		return ErrConnectionClosed
	default:
	}
	return c.framer.WriteFrame(data)
}

// Close closes the connection.
func (c *ServerConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closeCh)
		err = c.conn.Close()
	})
	return err
}

func (c *ServerConn) readLoop() {
	for {
		select {
		case <-c.closeCh:
			return
		case <-c.server.ctx.Done():
			return
		default:
		}

		data, err := c.framer.ReadFrame()
		if err != nil {
			if c.server.config.OnError != nil && c.server.running.Load() && !errors.Is(err, io.EOF) {
				select {
				case <-c.closeCh:
				default:
					c.server.config.OnError(c, err)
				}
			}
			return
		}

		msgType, peekErr := wire.PeekMessageType(data)
		if peekErr == nil && msgType == wire.MessageTypeControl {
			if ctrlMsg, err := wire.DecodeControlMessage(data); err == nil {
				c.handleControlMessage(ctrlMsg)
				continue
			}
		}

		if c.server.config.OnMessage != nil {
			c.server.config.OnMessage(c, data)
		}
	}
}

func (c *ServerConn) handleControlMessage(msg *wire.ControlMessage) {
	c.logControlMessage(msg, log.DirectionIn)

	switch msg.Type {
	case wire.ControlPing:
		pong := &wire.ControlMessage{Type: wire.ControlPong, Sequence: msg.Sequence}
		if data, err := wire.EncodeControlMessage(pong); err == nil {
			_ = c.Send(data)
			c.logControlMessage(pong, log.DirectionOut)
		}

	case wire.ControlPong:
		// Clients do not ping from the server side.

	case wire.ControlClose:
		ack := &wire.ControlMessage{Type: wire.ControlClose}
		if data, err := wire.EncodeControlMessage(ack); err == nil {
			_ = c.Send(data)
			c.logControlMessage(ack, log.DirectionOut)
		}
		c.Close()
	}
}

func (c *ServerConn) logControlMessage(msg *wire.ControlMessage, direction log.Direction) {
	if c.server.config.Logger == nil {
		return
	}
	c.server.config.Logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  c.sessionID,
		Direction:  direction,
		Layer:      log.LayerTransport,
		Category:   log.CategoryControl,
		RemoteAddr: c.remoteAddr.String(),
		ControlMsg: &log.ControlMsgEvent{
			Type:     log.ControlMsgTypeFromWire(msg.Type),
			Sequence: msg.Sequence,
		},
	})
}

func (c *ServerConn) logState(old, state string) {
	if c.server.config.Logger == nil {
		return
	}
	c.server.config.Logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  c.sessionID,
		Layer:      log.LayerTransport,
		Category:   log.CategoryState,
		RemoteAddr: c.remoteAddr.String(),
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityConnection,
			OldState: old,
			NewState: state,
		},
	})
}
