package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Access flags for attributes.
type Access uint8

const (
	// AccessRead allows reading the attribute.
	AccessRead Access = 1 << iota

	// AccessWrite allows writing the attribute.
	AccessWrite

	// Common access combinations.

	// AccessReadOnly is read only.
	AccessReadOnly = AccessRead

	// AccessReadWrite is read and write.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access mode as named by device-server hosts.
func (a Access) String() string {
	switch {
	case a.CanRead() && a.CanWrite():
		return "READ_WRITE"
	case a.CanRead():
		return "READ"
	case a.CanWrite():
		return "WRITE"
	default:
		return "-"
	}
}

// DataType represents the type of a property, attribute or command argument.
type DataType uint8

const (
	DataTypeUnknown DataType = iota
	DataTypeVoid
	DataTypeBool
	DataTypeInt32
	DataTypeUint16
	DataTypeUint64
	DataTypeFloat64
	DataTypeString
	DataTypeStringArray
	DataTypeEnum
	DataTypeState
)

// String returns the data type name.
func (d DataType) String() string {
	names := []string{
		"unknown", "DevVoid", "DevBoolean", "DevLong", "DevUShort", "DevULong64",
		"DevDouble", "DevString", "DevVarStringArray", "DevEnum", "DevState",
	}
	if int(d) < len(names) {
		return names[d]
	}
	return "unknown"
}

// Format is the cardinality of an attribute value.
type Format uint8

const (
	FormatScalar Format = iota
	FormatSpectrum
	FormatImage
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatScalar:
		return "SCALAR"
	case FormatSpectrum:
		return "SPECTRUM"
	case FormatImage:
		return "IMAGE"
	default:
		return "UNKNOWN"
	}
}

// AttributeMetadata describes an attribute's properties.
type AttributeMetadata struct {
	// Name is the attribute name as published to clients.
	Name string

	// Type is the data type of the attribute value.
	Type DataType

	// Format is the value cardinality.
	Format Format

	// Access defines the allowed operations.
	Access Access

	// Unit is the unit of measurement (e.g., "C", "level").
	Unit string

	// DisplayFormat is a printf-style display hint. Empty means default.
	DisplayFormat string

	// Description is a human-readable description.
	Description string

	// Values lists the permitted strings of an enumerated attribute, in
	// publication order.
	Values []string
}

// Attribute errors.
var (
	ErrAttributeNotFound    = errors.New("attribute not found")
	ErrAttributeNotReadable = errors.New("attribute is not readable")
	ErrAttributeNotWritable = errors.New("attribute is not writable")
	ErrAttributeValueType   = errors.New("invalid value type for attribute")
	ErrInvalidEnumValue     = errors.New("value not permitted for attribute")
)

// IsEnum reports whether the attribute has a fixed set of string values.
func (m *AttributeMetadata) IsEnum() bool {
	return m.Type == DataTypeEnum
}

// EnumValue returns the canonical spelling of s among the permitted values.
// Matching is case-insensitive.
func (m *AttributeMetadata) EnumValue(s string) (string, error) {
	for _, v := range m.Values {
		if strings.EqualFold(v, s) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s=%q (allowed: %s)",
		ErrInvalidEnumValue, m.Name, s, strings.Join(m.Values, ", "))
}

// Normalize checks value against the attribute type and returns it converted
// to the declared Go type (int32, uint16, uint64, float64, string, bool).
// Values decoded from YAML or CBOR often arrive as a wider numeric type.
func (m *AttributeMetadata) Normalize(value any) (any, error) {
	v, err := NormalizeValue(m.Type, value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Name, err)
	}
	if m.IsEnum() {
		return m.EnumValue(v.(string))
	}
	return v, nil
}

// NormalizeValue converts value to the Go type declared by t.
func NormalizeValue(t DataType, value any) (any, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil", ErrAttributeValueType)
	}

	switch t {
	case DataTypeBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("%w: expected bool, got %T", ErrAttributeValueType, value)

	case DataTypeInt32:
		n, ok := ToInt64(value)
		if !ok || n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%w: expected int32, got %T(%v)", ErrAttributeValueType, value, value)
		}
		return int32(n), nil

	case DataTypeUint16:
		n, ok := ToInt64(value)
		if !ok || n < 0 || n > math.MaxUint16 {
			return nil, fmt.Errorf("%w: expected uint16, got %T(%v)", ErrAttributeValueType, value, value)
		}
		return uint16(n), nil

	case DataTypeUint64:
		n, ok := ToUint64(value)
		if !ok {
			return nil, fmt.Errorf("%w: expected uint64, got %T(%v)", ErrAttributeValueType, value, value)
		}
		return n, nil

	case DataTypeFloat64:
		f, ok := ToFloat64(value)
		if !ok {
			return nil, fmt.Errorf("%w: expected float, got %T", ErrAttributeValueType, value)
		}
		return f, nil

	case DataTypeString, DataTypeEnum:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("%w: expected string, got %T", ErrAttributeValueType, value)

	case DataTypeStringArray:
		switch s := value.(type) {
		case []string:
			return s, nil
		case []any:
			out := make([]string, 0, len(s))
			for _, e := range s {
				str, ok := e.(string)
				if !ok {
					return nil, fmt.Errorf("%w: expected string element, got %T", ErrAttributeValueType, e)
				}
				out = append(out, str)
			}
			return out, nil
		}
		return nil, fmt.Errorf("%w: expected string array, got %T", ErrAttributeValueType, value)
	}

	return nil, fmt.Errorf("%w: unsupported type %s", ErrAttributeValueType, t)
}

// Helper functions for numeric conversion.

// ToInt64 converts any integer value, or a float with no fractional part,
// to int64.
func ToInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// ToUint64 converts a non-negative numeric value to uint64.
func ToUint64(v any) (uint64, bool) {
	if n, ok := v.(uint64); ok {
		return n, true
	}
	if n, ok := v.(uint); ok {
		return uint64(n), true
	}
	i, ok := ToInt64(v)
	if !ok || i < 0 {
		return 0, false
	}
	return uint64(i), true
}

// ToFloat64 converts any numeric value to float64.
func ToFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
