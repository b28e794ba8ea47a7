package wire

import (
	"errors"
	"fmt"
)

// CBOR map keys for message encoding.
const (
	KeyMessageID  = 1
	KeyOpOrStatus = 2 // Operation (request) or Status (response)
	KeyName       = 3 // Request only
	KeyArgument   = 4 // Request only
	KeyValue      = 5 // Response only
	KeyMessage    = 6 // Response only
	KeyControl    = 7 // Control messages only
)

// Request validation errors.
var (
	ErrZeroMessageID    = errors.New("messageId 0 is reserved")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrMissingName      = errors.New("missing attribute or command name")
)

// Request represents a request message from client to device.
//
// CBOR encoding:
//
//	{
//	  1: messageId,    // uint32, non-zero
//	  2: operation,    // uint8: 1=Read, 2=Write, 3=Invoke
//	  3: name,         // attribute or command name
//	  4: value         // write value or command argument
//	}
type Request struct {
	MessageID uint32    `cbor:"1,keyasint"`
	Operation Operation `cbor:"2,keyasint"`
	Name      string    `cbor:"3,keyasint"`
	Value     any       `cbor:"4,keyasint,omitempty"`
}

// Validate checks if the request is valid.
func (r *Request) Validate() error {
	if r.MessageID == 0 {
		return ErrZeroMessageID
	}
	if !r.Operation.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidOperation, r.Operation)
	}
	if r.Name == "" {
		return ErrMissingName
	}
	return nil
}

// Response represents a response message from device to client.
//
// CBOR encoding:
//
//	{
//	  1: messageId,    // uint32: matches request
//	  2: status,       // uint8: 0=success, or error code
//	  5: value,        // read value or command result (if success)
//	  6: message       // error description (if failure)
//	}
type Response struct {
	MessageID uint32 `cbor:"1,keyasint"`
	Status    Status `cbor:"2,keyasint"`
	Value     any    `cbor:"5,keyasint,omitempty"`
	Message   string `cbor:"6,keyasint,omitempty"`
}

// IsSuccess returns true if the response indicates success.
func (r *Response) IsSuccess() bool {
	return r.Status.IsSuccess()
}

// Err returns a *StatusError for a failed response and nil otherwise.
func (r *Response) Err() error {
	if r.Status.IsSuccess() {
		return nil
	}
	return &StatusError{Status: r.Status, Message: r.Message}
}

// ControlMessage represents a transport-level control message.
// These are separate from the request/response model.
type ControlMessage struct {
	Type     ControlMessageType `cbor:"7,keyasint"`
	Sequence uint32             `cbor:"8,keyasint,omitempty"`
}

// ControlMessageType represents the type of control message.
type ControlMessageType uint8

const (
	// ControlPing is sent to check connection liveness.
	ControlPing ControlMessageType = 1

	// ControlPong is the response to a ping.
	ControlPong ControlMessageType = 2

	// ControlClose initiates graceful connection close.
	ControlClose ControlMessageType = 3
)

// String returns the control message type name.
func (t ControlMessageType) String() string {
	switch t {
	case ControlPing:
		return "ping"
	case ControlPong:
		return "pong"
	case ControlClose:
		return "close"
	default:
		return "unknown"
	}
}
