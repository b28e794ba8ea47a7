package device

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
)

// ErrBindingMismatch is returned when the dispatch table and the attribute
// schema disagree.
var ErrBindingMismatch = errors.New("attribute binding does not match schema")

// getter reads an attribute from the camera. The returned value has the
// Go type declared by the attribute (string for enumerations).
type getter func(cam camera.Camera) (any, error)

// setter writes an attribute value already normalized to its declared type.
type setter func(cam camera.Camera, v any) error

type binding struct {
	get getter
	set setter
}

// dispatchTable maps lowercase attribute names to camera accessors.
type dispatchTable map[string]binding

func (t dispatchTable) lookup(name string) (binding, bool) {
	b, ok := t[strings.ToLower(name)]
	return b, ok
}

// check verifies that every readable attribute has a getter, every writable
// attribute a setter, and that no binding exists without a schema entry.
func (t dispatchTable) check(class *model.Class) error {
	var errs []error
	seen := make(map[string]bool, len(t))

	for _, attr := range class.Attributes() {
		key := strings.ToLower(attr.Name)
		seen[key] = true

		b, ok := t[key]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s has no binding", ErrBindingMismatch, attr.Name))
			continue
		}
		if attr.Access.CanRead() && b.get == nil {
			errs = append(errs, fmt.Errorf("%w: %s is readable but has no getter", ErrBindingMismatch, attr.Name))
		}
		if attr.Access.CanWrite() && b.set == nil {
			errs = append(errs, fmt.Errorf("%w: %s is writable but has no setter", ErrBindingMismatch, attr.Name))
		}
		if !attr.Access.CanWrite() && b.set != nil {
			errs = append(errs, fmt.Errorf("%w: %s is read-only but has a setter", ErrBindingMismatch, attr.Name))
		}
	}

	for key := range t {
		if !seen[key] {
			errs = append(errs, fmt.Errorf("%w: binding %s has no attribute", ErrBindingMismatch, key))
		}
	}

	return errors.Join(errs...)
}

func commonBindings() dispatchTable {
	return dispatchTable{
		AttrTemperature: {
			get: func(cam camera.Camera) (any, error) { return cam.Temperature() },
		},
		AttrTucamVersion: {
			get: func(cam camera.Camera) (any, error) { return cam.TucamVersion() },
		},
		AttrFirmwareVersion: {
			get: func(cam camera.Camera) (any, error) { return cam.FirmwareVersion() },
		},
		AttrTemperatureTarget: {
			get: func(cam camera.Camera) (any, error) { return cam.TemperatureTarget() },
			set: func(cam camera.Camera, v any) error { return cam.SetTemperatureTarget(v.(float64)) },
		},
		AttrFanSpeed: {
			get: func(cam camera.Camera) (any, error) { return cam.FanSpeed() },
			set: func(cam camera.Camera, v any) error { return cam.SetFanSpeed(v.(uint16)) },
		},
	}
}

func legacyBindings() dispatchTable {
	t := commonBindings()
	t[AttrGlobalGain] = binding{
		get: func(cam camera.Camera) (any, error) {
			g, err := cam.GlobalGain()
			if err != nil {
				return nil, err
			}
			return uint16(g), nil
		},
		set: func(cam camera.Camera, v any) error {
			g := camera.Gain(v.(uint16))
			if !g.Valid() {
				return fmt.Errorf("%w: global_gain=%d", camera.ErrOutOfRange, v)
			}
			return cam.SetGlobalGain(g)
		},
	}
	return t
}

func standardBindings() dispatchTable {
	t := commonBindings()
	t[AttrGlobalGain] = binding{
		get: func(cam camera.Camera) (any, error) {
			g, err := cam.GlobalGain()
			if err != nil {
				return nil, err
			}
			return g.String(), nil
		},
		set: func(cam camera.Camera, v any) error {
			g, err := camera.ParseGain(v.(string))
			if err != nil {
				return err
			}
			return cam.SetGlobalGain(g)
		},
	}
	t[AttrTriggerMode] = binding{
		get: func(cam camera.Camera) (any, error) {
			m, err := cam.TriggerMode()
			if err != nil {
				return nil, err
			}
			return m.String(), nil
		},
		set: func(cam camera.Camera, v any) error {
			m, err := camera.ParseTriggerMode(v.(string))
			if err != nil {
				return err
			}
			return cam.SetTriggerMode(m)
		},
	}
	t[AttrTriggerEdge] = binding{
		get: func(cam camera.Camera) (any, error) {
			e, err := cam.TriggerEdge()
			if err != nil {
				return nil, err
			}
			return e.String(), nil
		},
		set: func(cam camera.Camera, v any) error {
			e, err := camera.ParseTriggerEdge(v.(string))
			if err != nil {
				return err
			}
			return cam.SetTriggerEdge(e)
		},
	}
	t[AttrTestImageSelector] = binding{
		get: func(cam camera.Camera) (any, error) {
			img, err := cam.TestImageSelector()
			if err != nil {
				return nil, err
			}
			return img.String(), nil
		},
		set: func(cam camera.Camera, v any) error {
			img, err := camera.ParseTestImage(v.(string))
			if err != nil {
				return err
			}
			return cam.SetTestImageSelector(img)
		},
	}
	t[AttrStatisticsTotalBufferCount] = binding{
		get: func(cam camera.Camera) (any, error) { return cam.StatisticsTotalBufferCount() },
	}
	t[AttrStatisticsFailedBufferCount] = binding{
		get: func(cam camera.Camera) (any, error) { return cam.StatisticsFailedBufferCount() },
	}
	return t
}

func bindingsFor(p Profile) dispatchTable {
	if p == ProfileLegacy {
		return legacyBindings()
	}
	return standardBindings()
}
