package wire

import "fmt"

// Status represents a response status code.
type Status uint8

const (
	// StatusSuccess indicates the operation completed successfully.
	StatusSuccess Status = 0

	// StatusAttributeNotFound indicates the attribute name is not published.
	StatusAttributeNotFound Status = 1

	// StatusCommandNotFound indicates the command name is not published.
	StatusCommandNotFound Status = 2

	// StatusNotReadable indicates a read of a write-only attribute.
	StatusNotReadable Status = 3

	// StatusNotWritable indicates a write to a read-only attribute.
	StatusNotWritable Status = 4

	// StatusInvalidValue indicates a value of the wrong type or out of range.
	StatusInvalidValue Status = 5

	// StatusConfigurationError indicates the device configuration could
	// not be loaded or parsed.
	StatusConfigurationError Status = 6

	// StatusHardwareError indicates the camera reported an error.
	StatusHardwareError Status = 7

	// StatusInvalidRequest indicates a malformed request.
	StatusInvalidRequest Status = 8

	// StatusInternalError indicates an unexpected server failure.
	StatusInternalError Status = 9
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusAttributeNotFound:
		return "ATTRIBUTE_NOT_FOUND"
	case StatusCommandNotFound:
		return "COMMAND_NOT_FOUND"
	case StatusNotReadable:
		return "NOT_READABLE"
	case StatusNotWritable:
		return "NOT_WRITABLE"
	case StatusInvalidValue:
		return "INVALID_VALUE"
	case StatusConfigurationError:
		return "CONFIGURATION_ERROR"
	case StatusHardwareError:
		return "HARDWARE_ERROR"
	case StatusInvalidRequest:
		return "INVALID_REQUEST"
	case StatusInternalError:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// IsError returns true if the status indicates an error.
func (s Status) IsError() bool {
	return s != StatusSuccess
}

// StatusError is the client-side error for a non-success response.
type StatusError struct {
	Status  Status
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return e.Status.String()
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}
