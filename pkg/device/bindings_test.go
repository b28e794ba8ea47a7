package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhyana-lima/dhyana-go/pkg/model"
)

func TestBindingsMatchSchema(t *testing.T) {
	for _, p := range Profiles {
		t.Run(p.String(), func(t *testing.T) {
			class, err := NewClass(p)
			require.NoError(t, err)
			assert.NoError(t, bindingsFor(p).check(class))
		})
	}
}

func TestBindingCheckRejectsDrift(t *testing.T) {
	standard, err := NewClass(ProfileStandard)
	require.NoError(t, err)
	legacy, err := NewClass(ProfileLegacy)
	require.NoError(t, err)

	t.Run("missing binding", func(t *testing.T) {
		err := legacyBindings().check(standard)
		require.ErrorIs(t, err, ErrBindingMismatch)
		assert.Contains(t, err.Error(), "trigger_mode has no binding")
	})

	t.Run("binding without attribute", func(t *testing.T) {
		err := standardBindings().check(legacy)
		require.ErrorIs(t, err, ErrBindingMismatch)
		assert.Contains(t, err.Error(), "binding test_image_selector has no attribute")
	})

	t.Run("missing setter", func(t *testing.T) {
		table := standardBindings()
		b := table[AttrFanSpeed]
		b.set = nil
		table[AttrFanSpeed] = b
		err := table.check(standard)
		require.ErrorIs(t, err, ErrBindingMismatch)
		assert.Contains(t, err.Error(), "fan_speed is writable but has no setter")
	})

	t.Run("setter on read-only attribute", func(t *testing.T) {
		table := standardBindings()
		b := table[AttrTemperature]
		b.set = table[AttrTemperatureTarget].set
		table[AttrTemperature] = b
		require.ErrorIs(t, table.check(standard), ErrBindingMismatch)
	})

	t.Run("missing getter", func(t *testing.T) {
		class, err := model.NewClass(model.ClassDefinition{
			Name: "Drift",
			Attributes: []*model.AttributeMetadata{
				{Name: AttrTemperature, Type: model.DataTypeFloat64, Access: model.AccessReadOnly},
			},
		})
		require.NoError(t, err)
		table := dispatchTable{AttrTemperature: {}}
		require.ErrorIs(t, table.check(class), ErrBindingMismatch)
	})
}

func TestClassAndDevice(t *testing.T) {
	class, ctor, err := ClassAndDevice(ProfileLegacy)
	require.NoError(t, err)
	assert.Equal(t, ClassName, class.Name())
	assert.Len(t, class.Attributes(), 6)
	assert.Len(t, class.Properties(), 2)

	dev, err := ctor("dhyana/legacy/1", controlFor(nil))
	require.NoError(t, err)
	assert.Equal(t, ProfileLegacy, dev.Profile())
	assert.Equal(t, "dhyana/legacy/1", dev.Name())

	class, _, err = ClassAndDevice(ProfileStandard)
	require.NoError(t, err)
	assert.Len(t, class.Attributes(), 11)
	assert.Len(t, class.Properties(), 4)
	assert.Len(t, class.Commands(), 3)

	_, _, err = ClassAndDevice(Profile("other"))
	require.ErrorIs(t, err, ErrUnknownProfile)
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in      string
		want    Profile
		wantErr bool
	}{
		{"", ProfileStandard, false},
		{"standard", ProfileStandard, false},
		{" Legacy ", ProfileLegacy, false},
		{"v2", "", true},
	}

	for _, tt := range tests {
		got, err := ParseProfile(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownProfile, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPropertiesStrings(t *testing.T) {
	class, err := NewClass(ProfileStandard)
	require.NoError(t, err)

	props, err := LoadProperties(class, map[string]any{
		"Temperature_Target": -7.5,
		"trigger_edge":       "FALLING",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		PropInternalTriggerTimer: "0",
		PropTemperatureTarget:    "-7.5",
		PropTriggerMode:          "STANDARD",
		PropTriggerEdge:          "FALLING",
	}, props.Strings())
	assert.Equal(t, []string{"internal_trigger_timer", "temperature_target", "trigger_edge", "trigger_mode"}, props.Names())

	v, ok := props.Get("TRIGGER_EDGE")
	assert.True(t, ok)
	assert.Equal(t, "FALLING", v)
}
