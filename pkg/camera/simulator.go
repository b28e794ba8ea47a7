package camera

import (
	"fmt"
	"sync"
)

// Simulator limits, mirroring the ranges reported by the Dhyana SDK.
const (
	// SimTemperatureRawMin and SimTemperatureRawMax bound the raw sensor
	// temperature property. Set points are a delta from the middle.
	SimTemperatureRawMin = 0
	SimTemperatureRawMax = 100

	// SimFanGearMax is the highest fan gear.
	SimFanGearMax = 3

	// SimAmbientTemperature is the sensor temperature before cooling.
	SimAmbientTemperature = 20.0
)

// Simulator versions reported by TucamVersion and FirmwareVersion.
const (
	SimTucamVersion    = "1.0.0.0-sim"
	SimFirmwareVersion = "0x1A04"
	SimDetectorModel   = "Dhyana 95 (simulated)"
)

// Simulator is an in-process Camera that keeps its settings in memory.
// It is safe for concurrent use.
type Simulator struct {
	mu sync.RWMutex

	cfg Config

	temperature       float64
	temperatureTarget float64
	gain              Gain
	fanSpeed          uint16
	triggerMode       TriggerMode
	triggerEdge       TriggerEdge
	testImage         TestImage
	status            Status

	totalBuffers  uint64
	failedBuffers uint64
}

// NewSimulator creates a simulated camera.
func NewSimulator(cfg Config) *Simulator {
	return &Simulator{
		cfg:         cfg,
		temperature: SimAmbientTemperature,
		gain:        GainHDR,
		fanSpeed:    SimFanGearMax,
		triggerMode: TriggerStandard,
		triggerEdge: EdgeRising,
		testImage:   TestImageOff,
		status:      StatusReady,
	}
}

// SimulatorFactory is a Factory producing Simulators.
func SimulatorFactory(cfg Config) (Camera, error) {
	if cfg.TimerPeriodMS < 0 {
		return nil, fmt.Errorf("%w: internal trigger timer %d ms", ErrOutOfRange, cfg.TimerPeriodMS)
	}
	return NewSimulator(cfg), nil
}

// Config returns the options the simulator was created with.
func (s *Simulator) Config() Config {
	return s.cfg
}

// Temperature returns the simulated sensor temperature.
func (s *Simulator) Temperature() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.temperature, nil
}

// TemperatureTarget returns the last accepted set point.
func (s *Simulator) TemperatureTarget() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.temperatureTarget, nil
}

// SetTemperatureTarget accepts set points within half the raw range around
// its middle, like the camera does. The simulated sensor reaches the set
// point immediately.
func (s *Simulator) SetTemperatureTarget(celsius float64) error {
	middle := SimTemperatureRawMax / 2
	raw := int(celsius) + middle
	if raw < SimTemperatureRawMin || raw > SimTemperatureRawMax {
		return fmt.Errorf("%w: temperature target %v not in [%d,%d]",
			ErrOutOfRange, celsius, SimTemperatureRawMin-middle, SimTemperatureRawMax-middle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.temperatureTarget = celsius
	s.temperature = celsius
	return nil
}

// TucamVersion returns the simulated SDK version.
func (s *Simulator) TucamVersion() (string, error) {
	return SimTucamVersion, nil
}

// FirmwareVersion returns the simulated firmware version.
func (s *Simulator) FirmwareVersion() (string, error) {
	return SimFirmwareVersion, nil
}

// GlobalGain returns the gain mode.
func (s *Simulator) GlobalGain() (Gain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gain, nil
}

// SetGlobalGain sets the gain mode.
func (s *Simulator) SetGlobalGain(gain Gain) error {
	if !gain.Valid() {
		return fmt.Errorf("%w: gain %d", ErrOutOfRange, gain)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gain = gain
	return nil
}

// FanSpeed returns the fan gear.
func (s *Simulator) FanSpeed() (uint16, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fanSpeed, nil
}

// SetFanSpeed sets the fan gear (0..SimFanGearMax).
func (s *Simulator) SetFanSpeed(speed uint16) error {
	if speed > SimFanGearMax {
		return fmt.Errorf("%w: fan gear %d not in [0,%d]", ErrOutOfRange, speed, SimFanGearMax)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fanSpeed = speed
	return nil
}

// TriggerMode returns the trigger mode.
func (s *Simulator) TriggerMode() (TriggerMode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.triggerMode, nil
}

// SetTriggerMode sets the trigger mode.
func (s *Simulator) SetTriggerMode(mode TriggerMode) error {
	if mode > TriggerGlobal {
		return fmt.Errorf("%w: trigger mode %d", ErrOutOfRange, mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggerMode = mode
	return nil
}

// TriggerEdge returns the trigger edge.
func (s *Simulator) TriggerEdge() (TriggerEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.triggerEdge, nil
}

// SetTriggerEdge sets the trigger edge.
func (s *Simulator) SetTriggerEdge(edge TriggerEdge) error {
	if edge > EdgeFalling {
		return fmt.Errorf("%w: trigger edge %d", ErrOutOfRange, edge)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggerEdge = edge
	return nil
}

// TestImageSelector returns the selected test pattern.
func (s *Simulator) TestImageSelector() (TestImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.testImage, nil
}

// SetTestImageSelector selects a test pattern.
func (s *Simulator) SetTestImageSelector(image TestImage) error {
	if int(image) >= len(TestImageValues) {
		return fmt.Errorf("%w: test image %d", ErrOutOfRange, image)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.testImage = image
	return nil
}

// StatisticsTotalBufferCount returns the number of recorded frames.
func (s *Simulator) StatisticsTotalBufferCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalBuffers, nil
}

// StatisticsFailedBufferCount returns the number of recorded failed frames.
func (s *Simulator) StatisticsFailedBufferCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failedBuffers, nil
}

// RecordFrame accounts one delivered frame buffer. Failed buffers count
// towards both statistics.
func (s *Simulator) RecordFrame(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalBuffers++
	if !ok {
		s.failedBuffers++
	}
}

// DetectorModel returns the simulated model name.
func (s *Simulator) DetectorModel() (string, error) {
	return SimDetectorModel, nil
}

// Status returns the simulated acquisition status.
func (s *Simulator) Status() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, nil
}

// SetStatus forces the simulated acquisition status.
func (s *Simulator) SetStatus(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Compile-time interface satisfaction check.
var _ Camera = (*Simulator)(nil)
