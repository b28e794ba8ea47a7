package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhyana-lima/dhyana-go/pkg/device"
	"github.com/dhyana-lima/dhyana-go/pkg/wire"
)

type fakeRemote struct {
	values  map[string]any
	written map[string]any
	invoked []string
	pings   int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		values:  map[string]any{"temperature": -9.5},
		written: make(map[string]any),
	}
}

func (f *fakeRemote) Read(_ context.Context, name string) (any, error) {
	v, ok := f.values[name]
	if !ok {
		return nil, &wire.StatusError{Status: wire.StatusAttributeNotFound, Message: name}
	}
	return v, nil
}

func (f *fakeRemote) Write(_ context.Context, name string, value any) error {
	f.written[name] = value
	return nil
}

func (f *fakeRemote) Invoke(_ context.Context, name string, arg any) (any, error) {
	f.invoked = append(f.invoked, name)
	switch name {
	case device.CmdGetAttrStringValueList:
		if arg == "trigger_edge" {
			return []any{"RISING", "FALLING"}, nil
		}
		return []any{}, nil
	case device.CmdState:
		return "ON", nil
	case device.CmdStatus:
		return "The device is in ON state.", nil
	}
	return nil, &wire.StatusError{Status: wire.StatusCommandNotFound, Message: name}
}

func (f *fakeRemote) Ping(context.Context) (time.Duration, error) {
	f.pings++
	return 1500 * time.Microsecond, nil
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("read", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, execute(ctx, &buf, newFakeRemote(), "read", []string{"temperature"}))
		assert.Equal(t, "temperature = -9.5\n", buf.String())
	})

	t.Run("read unknown", func(t *testing.T) {
		var buf bytes.Buffer
		err := execute(ctx, &buf, newFakeRemote(), "read", []string{"gain"})
		var se *wire.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, wire.StatusAttributeNotFound, se.Status)
	})

	t.Run("write infers types", func(t *testing.T) {
		r := newFakeRemote()
		var buf bytes.Buffer
		require.NoError(t, execute(ctx, &buf, r, "write", []string{"fan_speed", "2"}))
		require.NoError(t, execute(ctx, &buf, r, "write", []string{"temperature_target", "-5.5"}))
		require.NoError(t, execute(ctx, &buf, r, "write", []string{"trigger_mode", "GLOBAL"}))
		assert.Equal(t, int64(2), r.written["fan_speed"])
		assert.Equal(t, -5.5, r.written["temperature_target"])
		assert.Equal(t, "GLOBAL", r.written["trigger_mode"])
	})

	t.Run("values", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, execute(ctx, &buf, newFakeRemote(), "values", []string{"trigger_edge"}))
		assert.Equal(t, "RISING\nFALLING\n", buf.String())

		buf.Reset()
		require.NoError(t, execute(ctx, &buf, newFakeRemote(), "values", []string{"temperature"}))
		assert.Contains(t, buf.String(), "not an enumerated attribute")
	})

	t.Run("state and status", func(t *testing.T) {
		r := newFakeRemote()
		var buf bytes.Buffer
		require.NoError(t, execute(ctx, &buf, r, "state", nil))
		require.NoError(t, execute(ctx, &buf, r, "status", nil))
		assert.Equal(t, "ON\nThe device is in ON state.\n", buf.String())
		assert.Equal(t, []string{device.CmdState, device.CmdStatus}, r.invoked)
	})

	t.Run("invoke", func(t *testing.T) {
		var buf bytes.Buffer
		err := execute(ctx, &buf, newFakeRemote(), "invoke", []string{"Reset"})
		var se *wire.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, wire.StatusCommandNotFound, se.Status)
	})

	t.Run("ping", func(t *testing.T) {
		r := newFakeRemote()
		var buf bytes.Buffer
		require.NoError(t, execute(ctx, &buf, r, "ping", []string{"3"}))
		assert.Equal(t, 3, r.pings)
		assert.Contains(t, buf.String(), "pong seq=3 time=1.5ms")
	})

	t.Run("usage errors", func(t *testing.T) {
		for _, tc := range []struct {
			cmd  string
			args []string
		}{
			{"read", nil},
			{"write", []string{"fan_speed"}},
			{"values", nil},
			{"invoke", nil},
			{"ping", []string{"zero"}},
			{"reboot", nil},
		} {
			var buf bytes.Buffer
			assert.ErrorIs(t, execute(ctx, &buf, newFakeRemote(), tc.cmd, tc.args), errUsage, tc.cmd)
		}
	})
}
