package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/backoff"
	"github.com/dhyana-lima/dhyana-go/pkg/device"
	"github.com/dhyana-lima/dhyana-go/pkg/discovery"
	"github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/transport"
	"github.com/dhyana-lima/dhyana-go/pkg/version"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

// ErrAlreadyStarted is returned by Start on a running server.
var ErrAlreadyStarted = errors.New("device server already started")

// Config configures a DeviceServer.
type Config struct {
	// Address to listen on. Default: ":9100".
	Address string

	// MaxMessageSize is the maximum frame payload size.
	MaxMessageSize uint32

	// Logger is the operational logger. Default: slog.Default().
	Logger *slog.Logger

	// EventLogger receives transport and wire events (optional).
	EventLogger log.Logger

	// Advertiser announces the server over mDNS (optional).
	Advertiser discovery.Advertiser

	// InstanceName overrides the advertised instance name.
	InstanceName string

	// AdvertiseBackoff paces advertisement retries after a failed first
	// attempt. Zero fields take the backoff package defaults.
	AdvertiseBackoff backoff.Config
}

// DeviceServer serves one device over the framed TCP transport.
type DeviceServer struct {
	device  *device.Device
	handler *Handler
	config  Config
	logger  *slog.Logger
	events  log.Logger

	mu      sync.Mutex
	server  *transport.Server
	running bool

	// Set while advertisement is being retried.
	retryCancel context.CancelFunc
	retryDone   chan struct{}
}

// NewDeviceServer creates a server for dev. The device should be
// initialized before the server is started.
func NewDeviceServer(dev *device.Device, config Config) *DeviceServer {
	if config.Address == "" {
		config.Address = fmt.Sprintf(":%d", transport.DefaultPort)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DeviceServer{
		device:  dev,
		handler: NewHandler(dev),
		config:  config,
		logger:  logger.With(slog.String("device", dev.Name())),
		events:  log.OrNoop(config.EventLogger),
	}
}

// Start starts listening and, if configured, advertising.
func (s *DeviceServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyStarted
	}

	server := transport.NewServer(transport.ServerConfig{
		Address:        s.config.Address,
		MaxMessageSize: s.config.MaxMessageSize,
		Logger:         s.config.EventLogger,
		OnConnect: func(conn *transport.ServerConn) {
			s.logger.Info("client connected",
				slog.String("session", conn.SessionID()),
				slog.String("remote", conn.RemoteAddr().String()))
		},
		OnDisconnect: func(conn *transport.ServerConn) {
			s.logger.Info("client disconnected", slog.String("session", conn.SessionID()))
		},
		OnMessage: func(conn *transport.ServerConn, msg []byte) {
			s.handleMessage(ctx, conn, msg)
		},
		OnError: func(conn *transport.ServerConn, err error) {
			attrs := []any{slog.Any("error", err)}
			if conn != nil {
				attrs = append(attrs, slog.String("session", conn.SessionID()))
			}
			s.logger.Warn("transport error", attrs...)
		},
	})
	if err := server.Start(ctx); err != nil {
		return err
	}
	s.server = server
	s.running = true

	s.logger.Info("device server listening", slog.String("addr", server.Addr().String()))

	if s.config.Advertiser != nil {
		info := s.discoveryInfo()
		if err := s.config.Advertiser.Advertise(ctx, info); err != nil {
			// The server stays usable by address meanwhile.
			s.logger.Warn("mDNS advertisement failed, retrying", slog.Any("error", err))
			retryCtx, cancel := context.WithCancel(ctx)
			s.retryCancel = cancel
			s.retryDone = make(chan struct{})
			go s.retryAdvertise(retryCtx, info, s.retryDone)
		} else {
			s.logAdvertising(info)
		}
	}

	return nil
}

// retryAdvertise repeats Advertise with exponential backoff until it
// succeeds or ctx is done.
func (s *DeviceServer) retryAdvertise(ctx context.Context, info *discovery.DeviceInfo, done chan struct{}) {
	defer close(done)

	b := backoff.New(s.config.AdvertiseBackoff)
	timer := time.NewTimer(b.Next())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		err := s.config.Advertiser.Advertise(ctx, info)
		if err == nil {
			s.logAdvertising(info)
			return
		}
		delay := b.Next()
		s.logger.Debug("mDNS advertisement retry failed",
			slog.Int("attempt", b.Attempts()),
			slog.Duration("next", delay),
			slog.Any("error", err))
		timer.Reset(delay)
	}
}

func (s *DeviceServer) logAdvertising(info *discovery.DeviceInfo) {
	s.logger.Info("advertising", slog.String("service", discovery.ServiceType),
		slog.String("instance", discovery.InstanceName(info)))
}

// Stop stops advertising, closes all connections and stops listening.
func (s *DeviceServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	if s.retryCancel != nil {
		s.retryCancel()
		<-s.retryDone
		s.retryCancel, s.retryDone = nil, nil
	}

	var errs []error
	if s.config.Advertiser != nil {
		if err := s.config.Advertiser.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop advertising: %w", err))
		}
	}
	if err := s.server.Stop(); err != nil {
		errs = append(errs, err)
	}

	s.logger.Info("device server stopped")
	return errors.Join(errs...)
}

// Addr returns the listen address, or nil when not running.
func (s *DeviceServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}
	return s.server.Addr()
}

// ConnectionCount returns the number of connected clients.
func (s *DeviceServer) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return 0
	}
	return s.server.ConnectionCount()
}

func (s *DeviceServer) discoveryInfo() *discovery.DeviceInfo {
	info := &discovery.DeviceInfo{
		InstanceName: s.config.InstanceName,
		Class:        s.device.Class().Name(),
		DeviceName:   s.device.Name(),
		Profile:      s.device.Profile().String(),
		Version:      version.Current,
	}
	if tcp, ok := s.server.Addr().(*net.TCPAddr); ok {
		info.Port = uint16(tcp.Port)
	}
	if ctl := s.device.Control(); ctl != nil {
		if det, err := ctl.DetectorInfo(); err == nil {
			info.Model = det.Model
		}
	}
	return info
}

func (s *DeviceServer) handleMessage(ctx context.Context, conn *transport.ServerConn, msg []byte) {
	received := time.Now()

	req, err := wire.DecodeRequest(msg)
	if err != nil {
		var id uint32
		if req != nil {
			id = req.MessageID
		}
		s.logger.Debug("invalid request", slog.String("session", conn.SessionID()), slog.Any("error", err))
		s.logError(conn, err)
		s.send(conn, errorResponse(id, wire.StatusInvalidRequest, err.Error()), received)
		return
	}

	s.logRequest(conn, req)
	resp := s.handler.HandleRequest(ctx, req)
	if !resp.IsSuccess() {
		s.logger.Debug("request failed",
			slog.String("session", conn.SessionID()),
			slog.String("op", req.Operation.String()),
			slog.String("name", req.Name),
			slog.String("status", resp.Status.String()),
			slog.String("message", resp.Message))
	}
	s.send(conn, resp, received)
}

func (s *DeviceServer) send(conn *transport.ServerConn, resp *wire.Response, received time.Time) {
	data, err := wire.EncodeResponse(resp)
	if err != nil {
		s.logger.Error("encode response", slog.Any("error", err))
		data, err = wire.EncodeResponse(errorResponse(resp.MessageID, wire.StatusInternalError, err.Error()))
		if err != nil {
			return
		}
	}
	s.logResponse(conn, resp, time.Since(received))
	if err := conn.Send(data); err != nil {
		s.logger.Debug("send response", slog.String("session", conn.SessionID()), slog.Any("error", err))
	}
}

func (s *DeviceServer) logRequest(conn *transport.ServerConn, req *wire.Request) {
	op := req.Operation
	s.events.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  conn.SessionID(),
		Direction:  log.DirectionIn,
		Layer:      log.LayerWire,
		Category:   log.CategoryMessage,
		RemoteAddr: conn.RemoteAddr().String(),
		DeviceName: s.device.Name(),
		Message: &log.MessageEvent{
			Type:      log.MessageTypeRequest,
			MessageID: req.MessageID,
			Operation: &op,
			Name:      req.Name,
			Value:     req.Value,
		},
	})
}

func (s *DeviceServer) logResponse(conn *transport.ServerConn, resp *wire.Response, elapsed time.Duration) {
	status := resp.Status
	s.events.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  conn.SessionID(),
		Direction:  log.DirectionOut,
		Layer:      log.LayerWire,
		Category:   log.CategoryMessage,
		RemoteAddr: conn.RemoteAddr().String(),
		DeviceName: s.device.Name(),
		Message: &log.MessageEvent{
			Type:           log.MessageTypeResponse,
			MessageID:      resp.MessageID,
			Status:         &status,
			Value:          resp.Value,
			ProcessingTime: &elapsed,
		},
	})
}

func (s *DeviceServer) logError(conn *transport.ServerConn, err error) {
	code := int(wire.StatusInvalidRequest)
	s.events.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  conn.SessionID(),
		Direction:  log.DirectionIn,
		Layer:      log.LayerWire,
		Category:   log.CategoryError,
		RemoteAddr: conn.RemoteAddr().String(),
		DeviceName: s.device.Name(),
		Error: &log.ErrorEventData{
			Layer:   log.LayerWire,
			Message: err.Error(),
			Code:    &code,
			Context: "decode request",
		},
	})
}
