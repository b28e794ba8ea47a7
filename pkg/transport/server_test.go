package transport_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/transport"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *eventRecorder) Log(e log.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *eventRecorder) snapshot() []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]log.Event(nil), r.events...)
}

// startEchoServer answers every request with a success response carrying
// the request name as value.
func startEchoServer(t *testing.T, logger log.Logger) *transport.Server {
	t.Helper()

	server := transport.NewServer(transport.ServerConfig{
		Address: "127.0.0.1:0",
		Logger:  logger,
		OnMessage: func(conn *transport.ServerConn, msg []byte) {
			req, err := wire.DecodeRequest(msg)
			if err != nil {
				return
			}
			data, err := wire.EncodeResponse(&wire.Response{
				MessageID: req.MessageID,
				Status:    wire.StatusSuccess,
				Value:     req.Name,
			})
			if err != nil {
				return
			}
			_ = conn.Send(data)
		},
	})

	if err := server.Start(context.Background()); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	t.Cleanup(func() { server.Stop() })
	return server
}

func dial(t *testing.T, server *transport.Server) *transport.ClientConn {
	t.Helper()

	client := transport.NewClient(transport.ClientConfig{RequestTimeout: 5 * time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := client.Connect(ctx, server.Addr().String())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestServerRequestResponse(t *testing.T) {
	server := startEchoServer(t, nil)
	conn := dial(t, server)

	ctx := context.Background()
	for _, name := range []string{"temperature", "fan_speed", "global_gain"} {
		resp, err := conn.Request(ctx, wire.OpRead, name, nil)
		if err != nil {
			t.Fatalf("Request(%s) failed: %v", name, err)
		}
		if !resp.IsSuccess() {
			t.Errorf("Request(%s) status = %s", name, resp.Status)
		}
		if resp.Value != name {
			t.Errorf("Request(%s) value = %v", name, resp.Value)
		}
	}
}

func TestServerStartTwice(t *testing.T) {
	server := startEchoServer(t, nil)
	if err := server.Start(context.Background()); !errors.Is(err, transport.ErrServerRunning) {
		t.Errorf("expected ErrServerRunning, got %v", err)
	}
}

func TestServerPingPong(t *testing.T) {
	server := startEchoServer(t, nil)
	conn := dial(t, server)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		rtt, err := conn.Ping(ctx)
		if err != nil {
			t.Fatalf("Ping %d failed: %v", i, err)
		}
		if rtt <= 0 {
			t.Errorf("Ping %d returned non-positive latency %v", i, rtt)
		}
	}
}

func TestServerCloseHandshake(t *testing.T) {
	server := startEchoServer(t, nil)
	conn := dial(t, server)

	waitFor(t, func() bool { return server.ConnectionCount() == 1 })

	if err := conn.SendClose(); err != nil {
		t.Fatalf("SendClose failed: %v", err)
	}

	data, err := conn.Receive(2 * time.Second)
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	msg, err := wire.DecodeControlMessage(data)
	if err != nil {
		t.Fatalf("DecodeControlMessage failed: %v", err)
	}
	if msg.Type != wire.ControlClose {
		t.Errorf("expected close ack, got %s", msg.Type)
	}

	waitFor(t, func() bool { return server.ConnectionCount() == 0 })
}

func TestServerStopClosesConnections(t *testing.T) {
	server := startEchoServer(t, nil)
	conn := dial(t, server)

	waitFor(t, func() bool { return server.ConnectionCount() == 1 })

	if err := server.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if server.ConnectionCount() != 0 {
		t.Errorf("expected no connections after Stop, got %d", server.ConnectionCount())
	}

	if _, err := conn.Request(context.Background(), wire.OpRead, "temperature", nil); err == nil {
		t.Error("expected request on stopped server to fail")
	}
}

func TestServerCallbacks(t *testing.T) {
	var (
		mu          sync.Mutex
		connected   []string
		disconnects int
	)

	server := transport.NewServer(transport.ServerConfig{
		Address: "127.0.0.1:0",
		OnConnect: func(conn *transport.ServerConn) {
			mu.Lock()
			connected = append(connected, conn.SessionID())
			mu.Unlock()
		},
		OnDisconnect: func(*transport.ServerConn) {
			mu.Lock()
			disconnects++
			mu.Unlock()
		},
	})
	if err := server.Start(context.Background()); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	defer server.Stop()

	first := dial(t, server)
	second := dial(t, server)
	waitFor(t, func() bool { return server.ConnectionCount() == 2 })

	first.Close()
	second.Close()
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return disconnects == 2
	})

	mu.Lock()
	defer mu.Unlock()
	if len(connected) != 2 || connected[0] == connected[1] || connected[0] == "" {
		t.Errorf("expected two distinct session IDs, got %v", connected)
	}
}

func TestServerLogsConnectionLifecycle(t *testing.T) {
	rec := &eventRecorder{}
	server := startEchoServer(t, rec)
	conn := dial(t, server)

	if _, err := conn.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	conn.Close()

	waitFor(t, func() bool {
		for _, e := range rec.snapshot() {
			if e.StateChange != nil && e.StateChange.NewState == "DISCONNECTED" {
				return true
			}
		}
		return false
	})

	var sawConnected, sawPing, sawPong, sawFrame bool
	sessions := map[string]bool{}
	for _, e := range rec.snapshot() {
		sessions[e.SessionID] = true
		switch {
		case e.StateChange != nil && e.StateChange.NewState == "CONNECTED":
			sawConnected = true
		case e.ControlMsg != nil && e.ControlMsg.Type == log.ControlMsgPing:
			sawPing = e.Direction == log.DirectionIn
		case e.ControlMsg != nil && e.ControlMsg.Type == log.ControlMsgPong:
			sawPong = e.Direction == log.DirectionOut
		case e.Frame != nil:
			sawFrame = true
		}
	}

	if !sawConnected || !sawPing || !sawPong || !sawFrame {
		t.Errorf("missing events: connected=%v ping=%v pong=%v frame=%v", sawConnected, sawPing, sawPong, sawFrame)
	}
	if len(sessions) != 1 {
		t.Errorf("expected one session ID across events, got %d", len(sessions))
	}
}
