package device

import (
	"fmt"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
)

// ClassName is the published device class name.
const ClassName = "Dhyana"

// Property names.
const (
	PropInternalTriggerTimer = "internal_trigger_timer"
	PropTemperatureTarget    = "temperature_target"
	PropTriggerMode          = "trigger_mode"
	PropTriggerEdge          = "trigger_edge"
)

// Attribute names.
const (
	AttrTemperature                 = "temperature"
	AttrTucamVersion                = "tucam_version"
	AttrFirmwareVersion             = "firmware_version"
	AttrTemperatureTarget           = "temperature_target"
	AttrGlobalGain                  = "global_gain"
	AttrFanSpeed                    = "fan_speed"
	AttrTriggerMode                 = "trigger_mode"
	AttrTriggerEdge                 = "trigger_edge"
	AttrTestImageSelector           = "test_image_selector"
	AttrStatisticsTotalBufferCount  = "statistics_total_buffer_count"
	AttrStatisticsFailedBufferCount = "statistics_failed_buffer_count"
)

// Command names.
const (
	CmdGetAttrStringValueList = "getAttrStringValueList"
	CmdState                  = "State"
	CmdStatus                 = "Status"
)

// Default property values.
const (
	DefaultTemperatureTarget          = -10.0
	DefaultTriggerMode                = "STANDARD"
	DefaultTriggerEdge                = "RISING"
	LegacyDefaultInternalTriggerTimer = 999
)

func properties(p Profile) []*model.PropertyMetadata {
	timer := &model.PropertyMetadata{
		Name:        PropInternalTriggerTimer,
		Type:        model.DataTypeInt32,
		Description: "Internal trigger timer period in milliseconds",
		Default:     int32(0),
	}
	target := &model.PropertyMetadata{
		Name:        PropTemperatureTarget,
		Type:        model.DataTypeFloat64,
		Description: "Sensor temperature target in Celsius, applied at init. 0 leaves the camera setting unchanged",
		Default:     DefaultTemperatureTarget,
	}

	if p == ProfileLegacy {
		timer.Default = int32(LegacyDefaultInternalTriggerTimer)
		return []*model.PropertyMetadata{timer, target}
	}

	return []*model.PropertyMetadata{
		timer,
		target,
		{
			Name:        PropTriggerMode,
			Type:        model.DataTypeString,
			Description: "Trigger mode applied at init (STANDARD, GLOBAL, SYNCHRONOUS)",
			Default:     DefaultTriggerMode,
		},
		{
			Name:        PropTriggerEdge,
			Type:        model.DataTypeString,
			Description: "Trigger edge applied at init (RISING, FALLING)",
			Default:     DefaultTriggerEdge,
		},
	}
}

func attributes(p Profile) []*model.AttributeMetadata {
	attrs := []*model.AttributeMetadata{
		{
			Name:          AttrTemperature,
			Type:          model.DataTypeFloat64,
			Access:        model.AccessReadOnly,
			Unit:          "C",
			DisplayFormat: "%.1f",
			Description:   "Sensor temperature",
		},
		{
			Name:        AttrTucamVersion,
			Type:        model.DataTypeString,
			Access:      model.AccessReadOnly,
			Description: "TUCAM SDK version",
		},
		{
			Name:        AttrFirmwareVersion,
			Type:        model.DataTypeString,
			Access:      model.AccessReadOnly,
			Description: "Camera firmware version",
		},
		{
			Name:          AttrTemperatureTarget,
			Type:          model.DataTypeFloat64,
			Access:        model.AccessReadWrite,
			Unit:          "C",
			DisplayFormat: "%.1f",
			Description:   "Sensor temperature target",
		},
	}

	if p == ProfileLegacy {
		attrs = append(attrs, &model.AttributeMetadata{
			Name:        AttrGlobalGain,
			Type:        model.DataTypeUint16,
			Access:      model.AccessReadWrite,
			Description: "Global gain (0=HDR, 1=HIGH, 2=LOW)",
		})
	} else {
		attrs = append(attrs, &model.AttributeMetadata{
			Name:        AttrGlobalGain,
			Type:        model.DataTypeEnum,
			Access:      model.AccessReadWrite,
			Description: "Global gain",
			Values:      camera.GainValues,
		})
	}

	attrs = append(attrs, &model.AttributeMetadata{
		Name:        AttrFanSpeed,
		Type:        model.DataTypeUint16,
		Access:      model.AccessReadWrite,
		Unit:        "level",
		Description: "Fan speed gear",
	})

	if p == ProfileLegacy {
		return attrs
	}

	return append(attrs,
		&model.AttributeMetadata{
			Name:        AttrTriggerMode,
			Type:        model.DataTypeEnum,
			Access:      model.AccessReadWrite,
			Description: "Trigger mode",
			Values:      camera.TriggerModeValues,
		},
		&model.AttributeMetadata{
			Name:        AttrTriggerEdge,
			Type:        model.DataTypeEnum,
			Access:      model.AccessReadWrite,
			Description: "Trigger edge",
			Values:      camera.TriggerEdgeValues,
		},
		&model.AttributeMetadata{
			Name:        AttrTestImageSelector,
			Type:        model.DataTypeEnum,
			Access:      model.AccessReadWrite,
			Description: "Test image pattern",
			Values:      camera.TestImageValues,
		},
		&model.AttributeMetadata{
			Name:        AttrStatisticsTotalBufferCount,
			Type:        model.DataTypeUint64,
			Access:      model.AccessReadOnly,
			Description: "Number of buffers received",
		},
		&model.AttributeMetadata{
			Name:        AttrStatisticsFailedBufferCount,
			Type:        model.DataTypeUint64,
			Access:      model.AccessReadOnly,
			Description: "Number of buffers that failed",
		},
	)
}

func commands() []*model.CommandMetadata {
	return []*model.CommandMetadata{
		{
			Name:           CmdGetAttrStringValueList,
			InType:         model.DataTypeString,
			InDescription:  "Attribute name",
			OutType:        model.DataTypeStringArray,
			OutDescription: "Permitted string values of the attribute",
		},
		{
			Name:           CmdState,
			InType:         model.DataTypeVoid,
			OutType:        model.DataTypeState,
			OutDescription: "Device state",
		},
		{
			Name:           CmdStatus,
			InType:         model.DataTypeVoid,
			OutType:        model.DataTypeString,
			OutDescription: "Device status",
		},
	}
}

// NewClass builds the class schema of a profile.
func NewClass(p Profile) (*model.Class, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, p)
	}
	return model.NewClass(model.ClassDefinition{
		Name:       ClassName,
		Properties: properties(p),
		Attributes: attributes(p),
		Commands:   commands(),
	})
}
