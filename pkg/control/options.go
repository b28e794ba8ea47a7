package control

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
)

// Option keys understood by GetControl.
const (
	OptionInternalTriggerTimer = "internal_trigger_timer"
)

// DefaultInternalTriggerTimer is used when the option is absent.
const DefaultInternalTriggerTimer = 0

// ErrInvalidOption is returned when a string option cannot be parsed.
var ErrInvalidOption = errors.New("invalid control option")

// Options are the typed control options.
type Options struct {
	// InternalTriggerTimer is the software trigger period in milliseconds.
	InternalTriggerTimer int
}

// CameraConfig returns the camera construction options.
func (o Options) CameraConfig() camera.Config {
	return camera.Config{TimerPeriodMS: o.InternalTriggerTimer}
}

// ParseOptions converts string-typed configuration values into Options.
// Hosts pass every property as a string, so integers arrive as "123" and
// are read as base 10.
// Keys not used for camera construction are ignored.
func ParseOptions(props map[string]string, defaults Options) (Options, error) {
	opts := defaults

	for key, raw := range props {
		switch strings.ToLower(key) {
		case OptionInternalTriggerTimer:
			s := strings.TrimSpace(raw)
			if s == "" {
				return Options{}, fmt.Errorf("%w: %s is empty", ErrInvalidOption, key)
			}
			n, err := model.ParseDecimal(s)
			if err != nil {
				return Options{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidOption, key, raw, err)
			}
			if n > math.MaxInt32 {
				return Options{}, fmt.Errorf("%w: %s=%d is too large", ErrInvalidOption, key, n)
			}
			if n < 0 {
				return Options{}, fmt.Errorf("%w: %s=%d must not be negative", ErrInvalidOption, key, n)
			}
			opts.InternalTriggerTimer = int(n)
		}
	}

	return opts, nil
}
