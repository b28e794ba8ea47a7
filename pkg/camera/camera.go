// Package camera defines the control surface of a Dhyana camera as seen by
// the device adapter.
//
// The Camera interface is the opaque Camera Handle: acquisition, buffer
// management and trigger sequencing live behind it in the camera SDK. This
// package only declares the typed getters and setters the device adapter
// forwards attribute access to, the Interface handle that wraps a Camera for
// the acquisition-control facade, and a Simulator used when no hardware is
// attached.
package camera

import "errors"

// Camera errors.
var (
	// ErrOutOfRange indicates a set point outside the range the camera accepts.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotSupported indicates an operation the camera model does not support.
	ErrNotSupported = errors.New("operation not supported")
)

// Status is the hardware acquisition status.
type Status uint8

const (
	StatusReady Status = iota
	StatusExposure
	StatusReadout
	StatusLatency
	StatusFault
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusExposure:
		return "Exposure"
	case StatusReadout:
		return "Readout"
	case StatusLatency:
		return "Latency"
	case StatusFault:
		return "Fault"
	default:
		return "Unknown"
	}
}

// Camera is the control surface of a Dhyana camera.
// Implementations must be safe for concurrent use.
type Camera interface {
	// Temperature returns the current sensor temperature in Celsius.
	Temperature() (float64, error)

	// TemperatureTarget returns the last accepted temperature set point.
	TemperatureTarget() (float64, error)

	// SetTemperatureTarget sets the cooling set point in Celsius.
	SetTemperatureTarget(celsius float64) error

	// TucamVersion returns the camera SDK API version.
	TucamVersion() (string, error)

	// FirmwareVersion returns the camera firmware version.
	FirmwareVersion() (string, error)

	// GlobalGain returns the sensor gain mode.
	GlobalGain() (Gain, error)

	// SetGlobalGain sets the sensor gain mode.
	SetGlobalGain(gain Gain) error

	// FanSpeed returns the fan gear.
	FanSpeed() (uint16, error)

	// SetFanSpeed sets the fan gear.
	SetFanSpeed(speed uint16) error

	// TriggerMode returns the hardware trigger mode.
	TriggerMode() (TriggerMode, error)

	// SetTriggerMode sets the hardware trigger mode.
	SetTriggerMode(mode TriggerMode) error

	// TriggerEdge returns the active edge of the trigger input.
	TriggerEdge() (TriggerEdge, error)

	// SetTriggerEdge sets the active edge of the trigger input.
	SetTriggerEdge(edge TriggerEdge) error

	// TestImageSelector returns the selected test pattern.
	TestImageSelector() (TestImage, error)

	// SetTestImageSelector selects a test pattern, or TestImageOff.
	SetTestImageSelector(image TestImage) error

	// StatisticsTotalBufferCount returns the number of frame buffers delivered.
	StatisticsTotalBufferCount() (uint64, error)

	// StatisticsFailedBufferCount returns the number of frame buffers lost.
	StatisticsFailedBufferCount() (uint64, error)

	// DetectorModel returns the camera model name.
	DetectorModel() (string, error)

	// Status returns the hardware acquisition status.
	Status() (Status, error)
}

// Config holds the typed options a Camera is constructed with.
type Config struct {
	// TimerPeriodMS is the period of the internal software trigger timer in
	// milliseconds.
	TimerPeriodMS int
}

// Factory constructs a Camera. It is called at most once per control
// context unless it fails.
type Factory func(cfg Config) (Camera, error)
