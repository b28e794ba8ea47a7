package wire

// Operation represents a protocol operation.
type Operation uint8

const (
	// OpRead gets the current value of an attribute.
	OpRead Operation = 1

	// OpWrite sets the value of an attribute.
	OpWrite Operation = 2

	// OpInvoke executes a command with an optional argument.
	OpInvoke Operation = 3
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	case OpInvoke:
		return "INVOKE"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the operation is a known operation.
func (o Operation) IsValid() bool {
	return o >= OpRead && o <= OpInvoke
}
