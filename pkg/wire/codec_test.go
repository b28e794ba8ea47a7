package wire

import (
	"errors"
	"testing"
)

func TestRequestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "read request",
			req:  Request{MessageID: 1, Operation: OpRead, Name: "temperature"},
		},
		{
			name: "write float",
			req:  Request{MessageID: 2, Operation: OpWrite, Name: "temperature_target", Value: -5.5},
		},
		{
			name: "write enum",
			req:  Request{MessageID: 3, Operation: OpWrite, Name: "trigger_mode", Value: "GLOBAL"},
		},
		{
			name: "invoke with argument",
			req:  Request{MessageID: 4, Operation: OpInvoke, Name: "getAttrStringValueList", Value: "trigger_edge"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeRequest(&tt.req)
			if err != nil {
				t.Fatalf("EncodeRequest failed: %v", err)
			}

			typ, err := PeekMessageType(data)
			if err != nil {
				t.Fatalf("PeekMessageType failed: %v", err)
			}
			if typ != MessageTypeRequest {
				t.Errorf("PeekMessageType = %s, want request", typ)
			}

			decoded, err := DecodeRequest(data)
			if err != nil {
				t.Fatalf("DecodeRequest failed: %v", err)
			}

			if decoded.MessageID != tt.req.MessageID {
				t.Errorf("MessageID mismatch: got %d, want %d", decoded.MessageID, tt.req.MessageID)
			}
			if decoded.Operation != tt.req.Operation {
				t.Errorf("Operation mismatch: got %s, want %s", decoded.Operation, tt.req.Operation)
			}
			if decoded.Name != tt.req.Name {
				t.Errorf("Name mismatch: got %q, want %q", decoded.Name, tt.req.Name)
			}
			if !Equal(decoded.Value, tt.req.Value) {
				t.Errorf("Value mismatch: got %v, want %v", decoded.Value, tt.req.Value)
			}
		})
	}
}

func TestResponseRoundTrip(t *testing.T) {
	t.Run("success with list", func(t *testing.T) {
		resp := Response{MessageID: 7, Status: StatusSuccess, Value: []string{"RISING", "FALLING"}}
		data, err := EncodeResponse(&resp)
		if err != nil {
			t.Fatalf("EncodeResponse failed: %v", err)
		}

		if typ, _ := PeekMessageType(data); typ != MessageTypeResponse {
			t.Errorf("PeekMessageType = %s, want response", typ)
		}

		decoded, err := DecodeResponse(data)
		if err != nil {
			t.Fatalf("DecodeResponse failed: %v", err)
		}
		if !decoded.IsSuccess() || decoded.Err() != nil {
			t.Errorf("expected success, got %s", decoded.Status)
		}
		list, ok := decoded.Value.([]any)
		if !ok || len(list) != 2 || list[0] != "RISING" || list[1] != "FALLING" {
			t.Errorf("unexpected value %#v", decoded.Value)
		}
	})

	t.Run("failure", func(t *testing.T) {
		resp := Response{MessageID: 8, Status: StatusAttributeNotFound, Message: "attribute not found: exposure"}
		data, err := EncodeResponse(&resp)
		if err != nil {
			t.Fatalf("EncodeResponse failed: %v", err)
		}
		decoded, err := DecodeResponse(data)
		if err != nil {
			t.Fatalf("DecodeResponse failed: %v", err)
		}

		err = decoded.Err()
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("expected *StatusError, got %T", err)
		}
		if statusErr.Status != StatusAttributeNotFound {
			t.Errorf("Status = %s", statusErr.Status)
		}
		if err.Error() != "ATTRIBUTE_NOT_FOUND: attribute not found: exposure" {
			t.Errorf("unexpected error text %q", err.Error())
		}
	})
}

func TestControlMessageRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  ControlMessage
	}{
		{
			name: "ping",
			msg:  ControlMessage{Type: ControlPing, Sequence: 1},
		},
		{
			name: "pong",
			msg:  ControlMessage{Type: ControlPong, Sequence: 1},
		},
		{
			name: "close",
			msg:  ControlMessage{Type: ControlClose},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeControlMessage(&tt.msg)
			if err != nil {
				t.Fatalf("EncodeControlMessage failed: %v", err)
			}

			if typ, _ := PeekMessageType(data); typ != MessageTypeControl {
				t.Errorf("PeekMessageType = %s, want control", typ)
			}

			decoded, err := DecodeControlMessage(data)
			if err != nil {
				t.Fatalf("DecodeControlMessage failed: %v", err)
			}

			if decoded.Type != tt.msg.Type {
				t.Errorf("Type mismatch: got %v, want %v", decoded.Type, tt.msg.Type)
			}
			if decoded.Sequence != tt.msg.Sequence {
				t.Errorf("Sequence mismatch: got %d, want %d", decoded.Sequence, tt.msg.Sequence)
			}
		})
	}
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name: "valid request",
			req:  Request{MessageID: 1, Operation: OpRead, Name: "temperature"},
		},
		{
			name:    "messageId 0 reserved",
			req:     Request{MessageID: 0, Operation: OpRead, Name: "temperature"},
			wantErr: ErrZeroMessageID,
		},
		{
			name:    "invalid operation",
			req:     Request{MessageID: 1, Operation: Operation(99), Name: "temperature"},
			wantErr: ErrInvalidOperation,
		},
		{
			name:    "missing name",
			req:     Request{MessageID: 1, Operation: OpInvoke},
			wantErr: ErrMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeRequestKeepsMessageID(t *testing.T) {
	// An invalid request still reports its message ID so the server can
	// answer with INVALID_REQUEST.
	data, err := Marshal(map[int]any{1: uint32(9), 2: uint8(99), 3: "temperature"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	req, err := DecodeRequest(data)
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("expected ErrInvalidOperation, got %v", err)
	}
	if req == nil || req.MessageID != 9 {
		t.Errorf("expected message ID 9, got %+v", req)
	}
}

func TestCBORCompactness(t *testing.T) {
	req := Request{MessageID: 12345, Operation: OpRead, Name: "fan_speed"}

	data, err := EncodeRequest(&req)
	if err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}

	// map header + 3 small keys + uint32 + uint8 + 10 byte string
	if len(data) > 24 {
		t.Errorf("CBOR encoding too large: %d bytes (expected <= 24)", len(data))
	}

	t.Logf("CBOR size: %d bytes", len(data))
}

func TestUnknownFieldsIgnored(t *testing.T) {
	msg := map[int]any{
		1:  uint32(1),
		2:  uint8(1),
		3:  "temperature",
		99: "future field",
	}

	data, err := Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	decoded, err := DecodeRequest(data)
	if err != nil {
		t.Fatalf("DecodeRequest should succeed with unknown fields: %v", err)
	}

	if decoded.MessageID != 1 {
		t.Errorf("MessageID mismatch: got %d, want 1", decoded.MessageID)
	}
}

func TestPeekMessageTypeUnknown(t *testing.T) {
	data, _ := Marshal(map[int]any{42: "x"})
	typ, err := PeekMessageType(data)
	if err != nil {
		t.Fatalf("PeekMessageType failed: %v", err)
	}
	if typ != MessageTypeUnknown {
		t.Errorf("PeekMessageType = %s, want unknown", typ)
	}

	if _, err := PeekMessageType([]byte{0xff}); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestEqual(t *testing.T) {
	a := Request{MessageID: 1, Operation: OpRead, Name: "temperature"}
	b := Request{MessageID: 1, Operation: OpRead, Name: "temperature"}
	c := Request{MessageID: 2, Operation: OpRead, Name: "temperature"}

	if !Equal(a, b) {
		t.Error("identical requests should be equal")
	}
	if Equal(a, c) {
		t.Error("different requests should not be equal")
	}
}
