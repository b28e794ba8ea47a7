package device

import (
	"github.com/dhyana-lima/dhyana-go/pkg/control"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
)

// Constructor creates a device of a fixed profile.
type Constructor func(name string, cc *control.Context, opts ...Option) (*Device, error)

// ClassAndDevice returns the class schema and device constructor a host
// registers for a profile.
func ClassAndDevice(p Profile) (*model.Class, Constructor, error) {
	class, err := NewClass(p)
	if err != nil {
		return nil, nil, err
	}
	ctor := func(name string, cc *control.Context, opts ...Option) (*Device, error) {
		return New(name, p, cc, opts...)
	}
	return class, ctor, nil
}

// DefaultTimer returns the internal trigger timer default of a profile,
// for use as control.Options when constructing the control context.
func DefaultTimer(p Profile) int {
	if p == ProfileLegacy {
		return LegacyDefaultInternalTriggerTimer
	}
	return control.DefaultInternalTriggerTimer
}
