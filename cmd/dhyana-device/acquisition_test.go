package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/control"
	"github.com/dhyana-lima/dhyana-go/pkg/device"
)

func newTestDevice(t *testing.T, props map[string]any) (*device.Device, *camera.Simulator) {
	t.Helper()
	var sim *camera.Simulator
	cc := control.NewContext(func(cfg camera.Config) (camera.Camera, error) {
		sim = camera.NewSimulator(cfg)
		return sim, nil
	})
	dev, err := device.New("lima/dhyana/1", device.ProfileStandard, cc,
		device.WithPropertySource(device.StaticProperties(props)))
	require.NoError(t, err)
	return dev, sim
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAcquisitionBeforeInit(t *testing.T) {
	dev, _ := newTestDevice(t, nil)
	acq := newAcquisition(dev, discardLogger())

	require.ErrorIs(t, acq.Start(), device.ErrNotInitialized)
	assert.False(t, acq.Running())
	acq.Stop()
}

func TestAcquisitionRecordsFrames(t *testing.T) {
	dev, _ := newTestDevice(t, map[string]any{device.PropInternalTriggerTimer: 2})
	require.NoError(t, dev.Init(context.Background()))
	sim := dev.Control().Camera().(*camera.Simulator)

	acq := newAcquisition(dev, discardLogger())
	require.NoError(t, acq.Start())
	require.NoError(t, acq.Start(), "starting twice is a no-op")
	assert.True(t, acq.Running())

	require.Eventually(t, func() bool {
		total, _ := sim.StatisticsTotalBufferCount()
		return total >= 55
	}, 5*time.Second, 5*time.Millisecond)

	acq.Stop()
	assert.False(t, acq.Running())

	failed, _ := sim.StatisticsFailedBufferCount()
	assert.GreaterOrEqual(t, failed, uint64(1))

	status, _ := sim.Status()
	assert.Equal(t, camera.StatusReady, status)
}
