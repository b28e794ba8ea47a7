package log

import (
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

// Event represents a device log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the client connection (UUID). Empty for
	// events not tied to a connection, such as Init.
	SessionID string `cbor:"2,keyasint,omitempty"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// RemoteAddr is the peer address (IP:port).
	RemoteAddr string `cbor:"6,keyasint,omitempty"`

	// DeviceName is the name of the device the event belongs to.
	DeviceName string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"` // Transport layer
	Message     *MessageEvent     `cbor:"11,keyasint,omitempty"` // Wire layer (decoded)
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"` // Connection/device state
	ControlMsg  *ControlMsgEvent  `cbor:"13,keyasint,omitempty"` // Ping/pong/close
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"` // Errors at any layer
	Access      *AccessEvent      `cbor:"15,keyasint,omitempty"` // Device layer
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerTransport is the framing layer (raw bytes).
	LayerTransport Layer = 0
	// LayerWire is the message encoding layer (decoded CBOR).
	LayerWire Layer = 1
	// LayerDevice is the device adapter.
	LayerDevice Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	case LayerDevice:
		return "DEVICE"
	default:
		return "UNKNOWN"
	}
}

// ParseLayer parses a layer name as printed by String.
func ParseLayer(s string) (Layer, bool) {
	for _, l := range []Layer{LayerTransport, LayerWire, LayerDevice} {
		if l.String() == s {
			return l, true
		}
	}
	return 0, false
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a protocol message (request/response).
	CategoryMessage Category = 0
	// CategoryControl indicates a control message (ping/pong/close).
	CategoryControl Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
	// CategoryAccess indicates an attribute or command access.
	CategoryAccess Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryControl:
		return "CONTROL"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	case CategoryAccess:
		return "ACCESS"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name as printed by String.
func ParseCategory(s string) (Category, bool) {
	for _, c := range []Category{CategoryMessage, CategoryControl, CategoryState, CategoryError, CategoryAccess} {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// FrameEvent captures raw frame data at the transport layer.
type FrameEvent struct {
	// Size is the frame size in bytes (including length prefix).
	Size int `cbor:"1,keyasint"`

	// Data is the raw frame bytes (may be truncated for large frames).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// MaxFrameDataSize is the number of frame bytes kept in a FrameEvent.
const MaxFrameDataSize = 256

// NewFrameEvent builds a FrameEvent for a frame payload of the given bytes.
// size is the on-wire size including the length prefix.
func NewFrameEvent(size int, data []byte) *FrameEvent {
	fe := &FrameEvent{Size: size}
	if len(data) > MaxFrameDataSize {
		fe.Data = append([]byte(nil), data[:MaxFrameDataSize]...)
		fe.Truncated = true
	} else {
		fe.Data = append([]byte(nil), data...)
	}
	return fe
}

// MessageEvent captures a decoded protocol message at the wire layer.
type MessageEvent struct {
	// Type distinguishes request and response.
	Type MessageType `cbor:"1,keyasint"`

	// MessageID correlates request/response pairs.
	MessageID uint32 `cbor:"2,keyasint"`

	// For requests: the operation being performed.
	Operation *wire.Operation `cbor:"3,keyasint,omitempty"`

	// For requests: the attribute or command name.
	Name string `cbor:"4,keyasint,omitempty"`

	// For responses: the status code.
	Status *wire.Status `cbor:"5,keyasint,omitempty"`

	// Value carried by the message (write value, argument or result).
	Value any `cbor:"6,keyasint,omitempty"`

	// ProcessingTime is the duration from request receipt to response send
	// (response only). Stored as nanoseconds.
	ProcessingTime *time.Duration `cbor:"7,keyasint,omitempty"`
}

// MessageType distinguishes request and response.
type MessageType uint8

const (
	// MessageTypeRequest indicates a request message.
	MessageTypeRequest MessageType = 0
	// MessageTypeResponse indicates a response message.
	MessageTypeResponse MessageType = 1
)

// String returns the message type name.
func (m MessageType) String() string {
	switch m {
	case MessageTypeRequest:
		return "REQUEST"
	case MessageTypeResponse:
		return "RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// AccessEvent captures a device operation on an attribute or command.
type AccessEvent struct {
	// Kind of access.
	Kind AccessKind `cbor:"1,keyasint"`

	// Name is the attribute, command or property name.
	Name string `cbor:"2,keyasint"`

	// Value is the value read, written or pushed, or the command result.
	Value any `cbor:"3,keyasint,omitempty"`

	// Error is the error text when the access failed.
	Error string `cbor:"4,keyasint,omitempty"`

	// Duration of the camera call. Stored as nanoseconds.
	Duration time.Duration `cbor:"5,keyasint,omitempty"`
}

// Failed returns true if the access returned an error.
func (a *AccessEvent) Failed() bool {
	return a.Error != ""
}

// AccessKind indicates the device operation.
type AccessKind uint8

const (
	// AccessRead is an attribute read.
	AccessRead AccessKind = 0
	// AccessWrite is an attribute write.
	AccessWrite AccessKind = 1
	// AccessInvoke is a command invocation.
	AccessInvoke AccessKind = 2
	// AccessPush is a configured property pushed to the camera by Init.
	AccessPush AccessKind = 3
)

// String returns the access kind name.
func (k AccessKind) String() string {
	switch k {
	case AccessRead:
		return "READ"
	case AccessWrite:
		return "WRITE"
	case AccessInvoke:
		return "INVOKE"
	case AccessPush:
		return "PUSH"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures connection and device lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityConnection indicates a connection state change.
	StateEntityConnection StateEntity = 0
	// StateEntityDevice indicates a device state change (OFF/ON).
	StateEntityDevice StateEntity = 1
	// StateEntityControl indicates the camera handles were created.
	StateEntityControl StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntityDevice:
		return "DEVICE"
	case StateEntityControl:
		return "CONTROL"
	default:
		return "UNKNOWN"
	}
}

// ControlMsgEvent captures transport-level control messages.
type ControlMsgEvent struct {
	// Type of control message.
	Type ControlMsgType `cbor:"1,keyasint"`

	// Sequence number of a ping or pong.
	Sequence uint32 `cbor:"2,keyasint,omitempty"`
}

// ControlMsgType indicates the type of control message.
type ControlMsgType uint8

const (
	// ControlMsgPing indicates a ping message.
	ControlMsgPing ControlMsgType = 0
	// ControlMsgPong indicates a pong message.
	ControlMsgPong ControlMsgType = 1
	// ControlMsgClose indicates a close message.
	ControlMsgClose ControlMsgType = 2
)

// String returns the control message type name.
func (c ControlMsgType) String() string {
	switch c {
	case ControlMsgPing:
		return "PING"
	case ControlMsgPong:
		return "PONG"
	case ControlMsgClose:
		return "CLOSE"
	default:
		return "UNKNOWN"
	}
}

// ControlMsgTypeFromWire converts a wire control message type.
func ControlMsgTypeFromWire(t wire.ControlMessageType) ControlMsgType {
	switch t {
	case wire.ControlPong:
		return ControlMsgPong
	case wire.ControlClose:
		return ControlMsgClose
	default:
		return ControlMsgPing
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the wire status code (if applicable).
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
