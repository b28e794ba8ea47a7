package model

// DevState is the device-level operating state.
type DevState uint8

const (
	// StateOff is the state before initialization.
	StateOff DevState = iota

	// StateOn is entered unconditionally by device initialization.
	StateOn
)

// String returns the state name.
func (s DevState) String() string {
	switch s {
	case StateOff:
		return "OFF"
	case StateOn:
		return "ON"
	default:
		return "UNKNOWN"
	}
}
