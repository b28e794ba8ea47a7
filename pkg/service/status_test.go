package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/control"
	"github.com/dhyana-lima/dhyana-go/pkg/device"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want wire.Status
	}{
		{nil, wire.StatusSuccess},
		{fmt.Errorf("%w: bogus", model.ErrAttributeNotFound), wire.StatusAttributeNotFound},
		{fmt.Errorf("%w: Reset", model.ErrCommandNotFound), wire.StatusCommandNotFound},
		{model.ErrAttributeNotReadable, wire.StatusNotReadable},
		{model.ErrAttributeNotWritable, wire.StatusNotWritable},
		{model.ErrAttributeValueType, wire.StatusInvalidValue},
		{model.ErrInvalidEnumValue, wire.StatusInvalidValue},
		{model.ErrInvalidParameters, wire.StatusInvalidValue},
		{fmt.Errorf("write fan_speed: %w", camera.ErrOutOfRange), wire.StatusInvalidValue},
		{model.ErrPropertyNotFound, wire.StatusConfigurationError},
		{control.ErrInvalidOption, wire.StatusConfigurationError},
		{device.ErrNotInitialized, wire.StatusInternalError},
		{errors.New("TUCAM_Prop_SetValue failed"), wire.StatusHardwareError},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}
