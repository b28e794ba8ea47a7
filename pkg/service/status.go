package service

import (
	"errors"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/control"
	"github.com/dhyana-lima/dhyana-go/pkg/device"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

// StatusFromError maps a device error to a wire status.
// Errors the device passes through from the camera unchanged map to
// StatusHardwareError.
func StatusFromError(err error) wire.Status {
	switch {
	case err == nil:
		return wire.StatusSuccess
	case errors.Is(err, model.ErrAttributeNotFound):
		return wire.StatusAttributeNotFound
	case errors.Is(err, model.ErrCommandNotFound):
		return wire.StatusCommandNotFound
	case errors.Is(err, model.ErrAttributeNotReadable):
		return wire.StatusNotReadable
	case errors.Is(err, model.ErrAttributeNotWritable):
		return wire.StatusNotWritable
	case errors.Is(err, model.ErrAttributeValueType),
		errors.Is(err, model.ErrInvalidEnumValue),
		errors.Is(err, model.ErrInvalidParameters),
		errors.Is(err, camera.ErrOutOfRange):
		return wire.StatusInvalidValue
	case errors.Is(err, model.ErrPropertyNotFound),
		errors.Is(err, control.ErrInvalidOption),
		errors.Is(err, control.ErrNoFactory):
		return wire.StatusConfigurationError
	case errors.Is(err, device.ErrNotInitialized):
		return wire.StatusInternalError
	default:
		return wire.StatusHardwareError
	}
}
