package dhyana_test

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/config"
	"github.com/dhyana-lima/dhyana-go/pkg/control"
	"github.com/dhyana-lima/dhyana-go/pkg/device"
	"github.com/dhyana-lima/dhyana-go/pkg/discovery"
	"github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/service"
	"github.com/dhyana-lima/dhyana-go/pkg/transport"
	"github.com/dhyana-lima/dhyana-go/pkg/version"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

// stack is a device server assembled from a YAML configuration the way
// dhyana-device assembles it.
type stack struct {
	cfg      *config.Config
	dev      *device.Device
	srv      *service.DeviceServer
	events   *log.FileLogger
	eventLog string
}

func startStack(t *testing.T, yaml string, adv discovery.Advertiser) *stack {
	t.Helper()

	cfg, err := config.Parse([]byte(yaml))
	require.NoError(t, err)

	eventLog := filepath.Join(t.TempDir(), "device.dlog")
	events, err := log.NewFileLogger(eventLog)
	require.NoError(t, err)

	profile := cfg.Profile()
	_, newDevice, err := device.ClassAndDevice(profile)
	require.NoError(t, err)

	cc := control.NewContext(camera.SimulatorFactory,
		control.WithDefaults(control.Options{InternalTriggerTimer: device.DefaultTimer(profile)}))
	dev, err := newDevice(cfg.Device.Name, cc,
		device.WithPropertySource(cfg),
		device.WithEventLogger(events))
	require.NoError(t, err)
	require.NoError(t, dev.Init(context.Background()))

	srv := service.NewDeviceServer(dev, service.Config{
		Address:      "127.0.0.1:0",
		EventLogger:  events,
		Advertiser:   adv,
		InstanceName: cfg.Discovery.Instance,
	})
	require.NoError(t, srv.Start(context.Background()))

	s := &stack{cfg: cfg, dev: dev, srv: srv, events: events, eventLog: eventLog}
	t.Cleanup(s.stop)
	return s
}

func (s *stack) stop() {
	_ = s.srv.Stop()
	_ = s.events.Close()
}

func (s *stack) connect(t *testing.T) *transport.ClientConn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := transport.NewClient(transport.ClientConfig{RequestTimeout: 5 * time.Second}).
		Connect(ctx, s.srv.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

const legacyConfig = `
discovery:
  enabled: false
device:
  name: lima/dhyana/legacy
  profile: legacy
  properties:
    internal_trigger_timer: "123"
    temperature_target: "-5"
`

const standardConfig = `
discovery:
  enabled: false
device:
  name: lima/dhyana/1
  profile: standard
  properties:
    trigger_mode: global
    trigger_edge: FALLING
`

// TestE2E_ReadWrite configures a legacy device from YAML and drives it over
// TCP.
func TestE2E_ReadWrite(t *testing.T) {
	s := startStack(t, legacyConfig, nil)
	conn := s.connect(t)
	ctx := context.Background()

	assert.Equal(t, 123, s.dev.Control().Options().InternalTriggerTimer)

	target, err := conn.Read(ctx, "temperature_target")
	require.NoError(t, err)
	assert.Equal(t, -5.0, target)

	gain, err := conn.Read(ctx, "global_gain")
	require.NoError(t, err)
	assert.EqualValues(t, camera.GainHDR, gain)

	require.NoError(t, conn.Write(ctx, "fan_speed", 2))
	speed, err := conn.Read(ctx, "FAN_SPEED")
	require.NoError(t, err)
	assert.EqualValues(t, 2, speed)

	t.Run("out of range", func(t *testing.T) {
		err := conn.Write(ctx, "fan_speed", 9)
		var se *wire.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, wire.StatusInvalidValue, se.Status)
	})

	t.Run("legacy has no trigger attributes", func(t *testing.T) {
		_, err := conn.Read(ctx, "trigger_mode")
		var se *wire.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, wire.StatusAttributeNotFound, se.Status)
	})

	t.Run("read only", func(t *testing.T) {
		err := conn.Write(ctx, "temperature", 20.0)
		var se *wire.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, wire.StatusNotWritable, se.Status)
	})
}

// TestE2E_Commands exercises the command surface of a standard device.
func TestE2E_Commands(t *testing.T) {
	s := startStack(t, standardConfig, nil)
	conn := s.connect(t)
	ctx := context.Background()

	mode, err := conn.Read(ctx, "trigger_mode")
	require.NoError(t, err)
	assert.Equal(t, "GLOBAL", mode)

	edge, err := conn.Read(ctx, "trigger_edge")
	require.NoError(t, err)
	assert.Equal(t, "FALLING", edge)

	values, err := conn.Invoke(ctx, device.CmdGetAttrStringValueList, "trigger_mode")
	require.NoError(t, err)
	assert.Equal(t, []any{"STANDARD", "GLOBAL", "SYNCHRONOUS"}, values)

	state, err := conn.Invoke(ctx, device.CmdState, nil)
	require.NoError(t, err)
	assert.Equal(t, "ON", state)

	status, err := conn.Invoke(ctx, device.CmdStatus, nil)
	require.NoError(t, err)
	assert.Contains(t, status, "The device is in ON state.")

	_, err = conn.Invoke(ctx, "Reset", nil)
	var se *wire.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, wire.StatusCommandNotFound, se.Status)
}

// TestE2E_Reconnection checks that camera state and handles outlive client
// sessions.
func TestE2E_Reconnection(t *testing.T) {
	s := startStack(t, standardConfig, nil)
	ctx := context.Background()
	ctl := s.dev.Control()

	first := s.connect(t)
	require.NoError(t, first.Write(ctx, "temperature_target", -15.5))
	require.NoError(t, first.SendClose())
	require.NoError(t, first.Close())

	require.Eventually(t, func() bool { return s.srv.ConnectionCount() == 0 },
		2*time.Second, 10*time.Millisecond)

	second := s.connect(t)
	target, err := second.Read(ctx, "temperature_target")
	require.NoError(t, err)
	assert.Equal(t, -15.5, target)

	rtt, err := second.Ping(ctx)
	require.NoError(t, err)
	assert.Positive(t, rtt)

	assert.Same(t, ctl, s.dev.Control(), "sessions must share one control facade")
}

// TestE2E_EventLog checks that device and wire events land in the CBOR
// event log.
func TestE2E_EventLog(t *testing.T) {
	s := startStack(t, legacyConfig, nil)
	conn := s.connect(t)

	_, err := conn.Read(context.Background(), "temperature")
	require.NoError(t, err)
	require.NoError(t, conn.SendClose())
	s.stop()

	reader, err := log.NewReader(s.eventLog)
	require.NoError(t, err)
	defer reader.Close()

	var pushes, reads, requests, responses int
	require.NoError(t, reader.ForEach(func(e log.Event) error {
		switch {
		case e.Access != nil && e.Access.Kind == log.AccessPush:
			assert.Equal(t, device.PropTemperatureTarget, e.Access.Name)
			pushes++
		case e.Access != nil && e.Access.Kind == log.AccessRead:
			reads++
		case e.Message != nil && e.Message.Type == log.MessageTypeRequest:
			requests++
		case e.Message != nil && e.Message.Type == log.MessageTypeResponse:
			assert.Equal(t, wire.StatusSuccess, *e.Message.Status)
			responses++
		}
		return nil
	}))

	assert.Equal(t, 1, pushes, "legacy pushes only the temperature target")
	assert.Equal(t, 1, reads)
	assert.Equal(t, 1, requests)
	assert.Equal(t, 1, responses)
}

// TestE2E_Discovery advertises a device over mDNS and finds it by name.
func TestE2E_Discovery(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	adv := discovery.NewMDNSAdvertiser(discovery.DefaultAdvertiserConfig())
	s := startStack(t, standardConfig, adv)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	browser := discovery.NewMDNSBrowser(discovery.DefaultBrowserConfig())
	svc, err := browser.FindDevice(ctx, s.dev.Name())
	if err != nil {
		t.Skipf("mDNS unavailable in this environment: %v", err)
	}

	assert.Equal(t, device.ClassName, svc.Class)
	assert.Equal(t, "standard", svc.Profile)
	assert.Equal(t, camera.SimDetectorModel, svc.Model)
	assert.NoError(t, version.Check(svc.Version))
	assert.Equal(t, uint16(s.srv.Addr().(*net.TCPAddr).Port), svc.Port)
}
