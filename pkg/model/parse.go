package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ParseValue converts user input to the Go type declared by t.
func ParseValue(t DataType, s string) (any, error) {
	s = strings.TrimSpace(s)

	var (
		v   any
		err error
	)
	switch t {
	case DataTypeBool:
		v, err = cast.ToBoolE(s)
	case DataTypeInt32, DataTypeUint16, DataTypeUint64:
		v, err = ParseDecimal(s)
	case DataTypeFloat64:
		if s == "" {
			return nil, fmt.Errorf("%w: empty number", ErrAttributeValueType)
		}
		v, err = cast.ToFloat64E(s)
	case DataTypeStringArray:
		v = strings.Split(s, ",")
	default:
		v = s
	}
	if errors.Is(err, ErrAttributeValueType) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAttributeValueType, err)
	}
	return NormalizeValue(t, v)
}

// ParseDecimal parses a base-10 integer with an optional sign. Leading
// zeros are insignificant, so "0123" is 123; prefixes such as "0x" and
// digit separators are rejected.
func ParseDecimal(s string) (int64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q is not a decimal integer", ErrAttributeValueType, s)
	}

	sign := s[:len(s)-len(digits)]
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}

	n, err := cast.ToInt64E(sign + digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrAttributeValueType, s)
	}
	return n, nil
}

// InferValue converts user input of unknown type: integers and floats
// become numbers, anything else stays a string.
func InferValue(s string) any {
	s = strings.TrimSpace(s)
	if n, err := ParseDecimal(s); err == nil {
		return n
	}
	if f, err := cast.ToFloat64E(s); err == nil && s != "" {
		return f
	}
	return s
}
