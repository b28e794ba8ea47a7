package service

import (
	"context"
	"fmt"

	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

// Device is the part of a device the handler dispatches to.
// Implemented by *device.Device.
type Device interface {
	ReadAttribute(ctx context.Context, name string) (any, error)
	WriteAttribute(ctx context.Context, name string, value any) error
	InvokeCommand(ctx context.Context, name string, arg any) (any, error)
}

// Handler turns requests into responses for one device.
type Handler struct {
	device Device
}

// NewHandler creates a handler for dev.
func NewHandler(dev Device) *Handler {
	return &Handler{device: dev}
}

// HandleRequest processes a request and returns its response.
func (h *Handler) HandleRequest(ctx context.Context, req *wire.Request) *wire.Response {
	var (
		value any
		err   error
	)

	switch req.Operation {
	case wire.OpRead:
		value, err = h.device.ReadAttribute(ctx, req.Name)
	case wire.OpWrite:
		err = h.device.WriteAttribute(ctx, req.Name, req.Value)
	case wire.OpInvoke:
		value, err = h.device.InvokeCommand(ctx, req.Name, req.Value)
	default:
		return errorResponse(req.MessageID, wire.StatusInvalidRequest,
			fmt.Sprintf("unsupported operation %d", req.Operation))
	}

	if err != nil {
		return errorResponse(req.MessageID, StatusFromError(err), err.Error())
	}
	return &wire.Response{
		MessageID: req.MessageID,
		Status:    wire.StatusSuccess,
		Value:     wireValue(value),
	}
}

func errorResponse(id uint32, status wire.Status, msg string) *wire.Response {
	return &wire.Response{
		MessageID: id,
		Status:    status,
		Message:   msg,
	}
}

// wireValue converts device values without a CBOR representation of their
// own, such as the device state, to their string form.
func wireValue(v any) any {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}
