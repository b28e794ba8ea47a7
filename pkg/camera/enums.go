package camera

import (
	"fmt"
	"strings"
)

// TriggerMode is the hardware trigger mode of the sensor.
type TriggerMode uint8

const (
	TriggerStandard TriggerMode = iota
	TriggerSynchronous
	TriggerGlobal
)

// TriggerModeValues lists the published trigger mode names in order.
var TriggerModeValues = []string{"STANDARD", "GLOBAL", "SYNCHRONOUS"}

// String returns the trigger mode name.
func (m TriggerMode) String() string {
	switch m {
	case TriggerStandard:
		return "STANDARD"
	case TriggerSynchronous:
		return "SYNCHRONOUS"
	case TriggerGlobal:
		return "GLOBAL"
	default:
		return "UNKNOWN"
	}
}

// ParseTriggerMode parses a trigger mode name case-insensitively.
func ParseTriggerMode(s string) (TriggerMode, error) {
	switch strings.ToUpper(s) {
	case "STANDARD":
		return TriggerStandard, nil
	case "SYNCHRONOUS":
		return TriggerSynchronous, nil
	case "GLOBAL":
		return TriggerGlobal, nil
	}
	return 0, fmt.Errorf("unknown trigger mode %q", s)
}

// TriggerEdge is the active edge of the trigger input.
type TriggerEdge uint8

const (
	EdgeRising TriggerEdge = iota
	EdgeFalling
)

// TriggerEdgeValues lists the published trigger edge names in order.
var TriggerEdgeValues = []string{"RISING", "FALLING"}

// String returns the edge name.
func (e TriggerEdge) String() string {
	switch e {
	case EdgeRising:
		return "RISING"
	case EdgeFalling:
		return "FALLING"
	default:
		return "UNKNOWN"
	}
}

// ParseTriggerEdge parses a trigger edge name case-insensitively.
func ParseTriggerEdge(s string) (TriggerEdge, error) {
	switch strings.ToUpper(s) {
	case "RISING":
		return EdgeRising, nil
	case "FALLING":
		return EdgeFalling, nil
	}
	return 0, fmt.Errorf("unknown trigger edge %q", s)
}

// Gain is the sensor gain mode. The numeric values are the ones the camera
// SDK uses for its global gain property.
type Gain uint16

const (
	GainHDR Gain = iota
	GainHigh
	GainLow
)

// GainValues lists the published gain names in order.
var GainValues = []string{"HDR", "HIGH", "LOW"}

// String returns the gain name.
func (g Gain) String() string {
	switch g {
	case GainHDR:
		return "HDR"
	case GainHigh:
		return "HIGH"
	case GainLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether g is a known gain mode.
func (g Gain) Valid() bool {
	return g <= GainLow
}

// ParseGain parses a gain name case-insensitively.
func ParseGain(s string) (Gain, error) {
	switch strings.ToUpper(s) {
	case "HDR":
		return GainHDR, nil
	case "HIGH":
		return GainHigh, nil
	case "LOW":
		return GainLow, nil
	}
	return 0, fmt.Errorf("unknown gain %q", s)
}

// TestImage selects a sensor test pattern.
type TestImage uint8

const (
	TestImageOff TestImage = iota
	TestImage1
	TestImage2
	TestImage3
	TestImage4
	TestImage5
)

// TestImageValues lists the published test image names in order.
var TestImageValues = []string{
	"TESTIMAGE_OFF", "TESTIMAGE_1", "TESTIMAGE_2", "TESTIMAGE_3", "TESTIMAGE_4", "TESTIMAGE_5",
}

// String returns the test image name.
func (t TestImage) String() string {
	if int(t) < len(TestImageValues) {
		return TestImageValues[t]
	}
	return "UNKNOWN"
}

// ParseTestImage parses a test image name case-insensitively.
func ParseTestImage(s string) (TestImage, error) {
	for i, name := range TestImageValues {
		if strings.EqualFold(name, s) {
			return TestImage(i), nil
		}
	}
	return 0, fmt.Errorf("unknown test image %q", s)
}
