package camera

import "errors"

// Detector geometry of the Dhyana sensor.
const (
	DetectorType = "Dhyana"

	PixelCountWidth  = 2048
	PixelCountHeight = 2048

	// Pixel pitch in micrometres.
	PixelSizeWidthMicron  = 11
	PixelSizeHeightMicron = 11
)

// ErrNilCamera is returned when an Interface is built without a Camera.
var ErrNilCamera = errors.New("camera is nil")

// Size is an image size in pixels.
type Size struct {
	Width  int
	Height int
}

// DetectorInfo summarizes the detector for the acquisition-control facade.
type DetectorInfo struct {
	Type        string
	Model       string
	ImageSize   Size
	PixelWidth  float64 // metres
	PixelHeight float64 // metres
}

// Interface is the hardware interface handle wrapping a Camera.
type Interface struct {
	cam Camera
}

// NewInterface wraps cam.
func NewInterface(cam Camera) (*Interface, error) {
	if cam == nil {
		return nil, ErrNilCamera
	}
	return &Interface{cam: cam}, nil
}

// Camera returns the wrapped camera handle.
func (i *Interface) Camera() Camera {
	return i.cam
}

// DetectorInfo returns the detector description.
func (i *Interface) DetectorInfo() (DetectorInfo, error) {
	model, err := i.cam.DetectorModel()
	if err != nil {
		return DetectorInfo{}, err
	}
	return DetectorInfo{
		Type:        DetectorType,
		Model:       model,
		ImageSize:   Size{Width: PixelCountWidth, Height: PixelCountHeight},
		PixelWidth:  PixelSizeWidthMicron * 1e-6,
		PixelHeight: PixelSizeHeightMicron * 1e-6,
	}, nil
}

// Status returns the hardware acquisition status.
func (i *Interface) Status() (Status, error) {
	return i.cam.Status()
}
