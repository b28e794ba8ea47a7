package device

import (
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
)

func (d *Device) emitAccess(kind log.AccessKind, name string, value any, err error, elapsed time.Duration) {
	ev := &log.AccessEvent{
		Kind:     kind,
		Name:     name,
		Duration: elapsed,
	}
	if err != nil {
		ev.Error = err.Error()
	} else {
		ev.Value = loggable(value)
	}
	d.events.Log(log.Event{
		Timestamp:  time.Now(),
		Layer:      log.LayerDevice,
		Category:   log.CategoryAccess,
		DeviceName: d.name,
		Access:     ev,
	})
}

func (d *Device) emitState(old, state model.DevState, reason string) {
	d.events.Log(log.Event{
		Timestamp:  time.Now(),
		Layer:      log.LayerDevice,
		Category:   log.CategoryState,
		DeviceName: d.name,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityDevice,
			OldState: old.String(),
			NewState: state.String(),
			Reason:   reason,
		},
	})
}

func (d *Device) emitError(op string, err error) {
	d.events.Log(log.Event{
		Timestamp:  time.Now(),
		Layer:      log.LayerDevice,
		Category:   log.CategoryError,
		DeviceName: d.name,
		Error: &log.ErrorEventData{
			Layer:   log.LayerDevice,
			Message: err.Error(),
			Context: op,
		},
	})
}

func (d *Device) emitControl(state string) {
	d.events.Log(log.Event{
		Timestamp:  time.Now(),
		Layer:      log.LayerDevice,
		Category:   log.CategoryState,
		DeviceName: d.name,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityControl,
			NewState: state,
		},
	})
}

// loggable converts values the event log cannot encode as themselves.
func loggable(v any) any {
	if s, ok := v.(model.DevState); ok {
		return s.String()
	}
	return v
}
