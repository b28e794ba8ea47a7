package model

import (
	"errors"
	"fmt"
)

// ErrPropertyNotFound is returned when a configured property is not part of
// the device class.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyMetadata describes a device property.
type PropertyMetadata struct {
	// Name is the property key in the configuration.
	Name string

	// Type is the declared property type.
	Type DataType

	// Description is a human-readable description.
	Description string

	// Default is used when the configuration does not set the property.
	Default any
}

// CheckDefault verifies that the Go type of Default matches Type.
func (p *PropertyMetadata) CheckDefault() error {
	ok := false
	switch p.Type {
	case DataTypeBool:
		_, ok = p.Default.(bool)
	case DataTypeInt32:
		_, ok = p.Default.(int32)
	case DataTypeUint16:
		_, ok = p.Default.(uint16)
	case DataTypeUint64:
		_, ok = p.Default.(uint64)
	case DataTypeFloat64:
		_, ok = p.Default.(float64)
	case DataTypeString:
		_, ok = p.Default.(string)
	case DataTypeStringArray:
		_, ok = p.Default.([]string)
	}
	if !ok {
		return fmt.Errorf("property %s: default %T(%v) does not match declared type %s",
			p.Name, p.Default, p.Default, p.Type)
	}
	return nil
}

// Normalize converts a configured value to the declared property type.
func (p *PropertyMetadata) Normalize(value any) (any, error) {
	v, err := NormalizeValue(p.Type, value)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", p.Name, err)
	}
	return v, nil
}
