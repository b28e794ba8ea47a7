package main

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/device"
)

// failEvery marks every n-th simulated frame as failed.
const failEvery = 50

// fallbackPeriod is used when the internal trigger timer is 0.
const fallbackPeriod = 100 * time.Millisecond

var errNotSimulated = errors.New("acquisition needs the camera simulator")

// acquisition drives frames through the camera simulator at the internal
// trigger timer period, updating the buffer statistics and status.
type acquisition struct {
	dev    *device.Device
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func newAcquisition(dev *device.Device, logger *slog.Logger) *acquisition {
	return &acquisition{dev: dev, logger: logger}
}

// Start starts acquiring. Starting a running acquisition is a no-op.
func (a *acquisition) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		return nil
	}

	ctl := a.dev.Control()
	if ctl == nil {
		return device.ErrNotInitialized
	}
	sim, ok := ctl.Camera().(*camera.Simulator)
	if !ok {
		return errNotSimulated
	}

	period := time.Duration(ctl.Options().InternalTriggerTimer) * time.Millisecond
	if period <= 0 {
		period = fallbackPeriod
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})
	go a.run(ctx, sim, period, a.done)

	a.logger.Info("acquisition started", slog.Duration("period", period))
	return nil
}

// Stop stops acquiring and waits for the loop to exit.
func (a *acquisition) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	a.logger.Info("acquisition stopped")
}

// Running reports whether the acquisition loop is active.
func (a *acquisition) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

func (a *acquisition) run(ctx context.Context, sim *camera.Simulator, period time.Duration, done chan struct{}) {
	defer close(done)
	defer sim.SetStatus(camera.StatusReady)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame++
			sim.SetStatus(camera.StatusExposure)
			ok := frame%failEvery != 0
			sim.RecordFrame(ok)
			sim.SetStatus(camera.StatusReadout)
			if !ok {
				a.logger.Debug("simulated frame failed", slog.Uint64("frame", frame))
			}
		}
	}
}
