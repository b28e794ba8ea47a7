package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/control"
	"github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
)

// Device errors.
var (
	ErrNotInitialized = errors.New("device not initialized")
	ErrNoControl      = errors.New("no control context")
)

// Device is the Dhyana device adapter.
// It is safe for concurrent use.
type Device struct {
	name     string
	profile  Profile
	class    *model.Class
	bindings dispatchTable
	commands map[string]*model.Command
	control  *control.Context
	source   PropertySource
	logger   *slog.Logger
	events   log.Logger

	// initMu serializes Init. mu guards the fields below and is never held
	// while events are logged or the camera is called.
	initMu sync.Mutex
	mu     sync.RWMutex
	state  model.DevState
	props *Properties
	ctl   *control.Control
}

// Option configures a Device.
type Option func(*Device)

// WithPropertySource sets where Init loads property values from.
// Without a source every property takes its default.
func WithPropertySource(src PropertySource) Option {
	return func(d *Device) {
		d.source = src
	}
}

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Device) {
		d.logger = logger
	}
}

// WithEventLogger sets the device event log.
func WithEventLogger(events log.Logger) Option {
	return func(d *Device) {
		d.events = log.OrNoop(events)
	}
}

// New creates a device of the given profile bound to a control context.
// The device starts in state OFF; call Init to bring it ON.
func New(name string, profile Profile, cc *control.Context, opts ...Option) (*Device, error) {
	if cc == nil {
		return nil, ErrNoControl
	}

	class, err := NewClass(profile)
	if err != nil {
		return nil, err
	}

	bindings := bindingsFor(profile)
	if err := bindings.check(class); err != nil {
		return nil, err
	}

	d := &Device{
		name:     name,
		profile:  profile,
		class:    class,
		bindings: bindings,
		control:  cc,
		logger:   slog.Default(),
		events:   log.NoopLogger{},
		state:    model.StateOff,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With(slog.String("device", name))
	d.commands = d.buildCommands()

	return d, nil
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// Profile returns the device profile.
func (d *Device) Profile() Profile {
	return d.profile
}

// Class returns the published class schema.
func (d *Device) Class() *model.Class {
	return d.class
}

// State returns the device state.
func (d *Device) State() model.DevState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Properties returns the properties loaded by Init, or nil before Init.
func (d *Device) Properties() *Properties {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.props
}

// Control returns the control facade obtained by Init, or nil before Init.
func (d *Device) Control() *control.Control {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ctl
}

// Init brings the device ON, loads its properties, obtains the camera
// control and pushes the configured temperature target, trigger mode and
// trigger edge to the camera in that order. The legacy profile pushes only
// the temperature target. A property left at 0 or "" is not pushed.
//
// The state is ON even when a later step fails.
func (d *Device) Init(ctx context.Context) error {
	d.initMu.Lock()
	defer d.initMu.Unlock()

	d.mu.Lock()
	old := d.state
	d.state = model.StateOn
	d.mu.Unlock()
	d.emitState(old, model.StateOn, "init")

	raw := map[string]any{}
	if d.source != nil {
		var err error
		raw, err = d.source.DeviceProperties(d.name)
		if err != nil {
			return fmt.Errorf("load properties: %w", err)
		}
	}
	props, err := LoadProperties(d.class, raw)
	if err != nil {
		return fmt.Errorf("load properties: %w", err)
	}
	d.mu.Lock()
	d.props = props
	d.mu.Unlock()

	ctl, err := d.control.GetControl(props.Strings())
	if err != nil {
		d.emitError("get control", err)
		return fmt.Errorf("get control: %w", err)
	}
	d.mu.Lock()
	d.ctl = ctl
	d.mu.Unlock()
	d.emitControl("ACQUIRED")

	cam := ctl.Camera()
	if target := props.Float64(PropTemperatureTarget); target != 0 {
		if err := d.push(ctx, PropTemperatureTarget, target, func() error {
			return cam.SetTemperatureTarget(target)
		}); err != nil {
			return err
		}
	}

	if d.profile == ProfileLegacy {
		d.logger.Info("device initialized", slog.String("profile", d.profile.String()))
		return nil
	}

	if s := props.String(PropTriggerMode); s != "" {
		mode, err := camera.ParseTriggerMode(s)
		if err != nil {
			return fmt.Errorf("property %s: %w", PropTriggerMode, err)
		}
		if err := d.push(ctx, PropTriggerMode, mode.String(), func() error {
			return cam.SetTriggerMode(mode)
		}); err != nil {
			return err
		}
	}

	if s := props.String(PropTriggerEdge); s != "" {
		edge, err := camera.ParseTriggerEdge(s)
		if err != nil {
			return fmt.Errorf("property %s: %w", PropTriggerEdge, err)
		}
		if err := d.push(ctx, PropTriggerEdge, edge.String(), func() error {
			return cam.SetTriggerEdge(edge)
		}); err != nil {
			return err
		}
	}

	d.logger.Info("device initialized", slog.String("profile", d.profile.String()))
	return nil
}

func (d *Device) push(_ context.Context, name string, value any, fn func() error) error {
	start := time.Now()
	err := fn()
	d.emitAccess(log.AccessPush, name, value, err, time.Since(start))
	if err != nil {
		return fmt.Errorf("apply property %s: %w", name, err)
	}
	d.logger.Debug("property applied", slog.String("property", name), slog.Any("value", value))
	return nil
}

// camera returns the camera handle, or ErrNotInitialized before Init.
func (d *Device) camera() (camera.Camera, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.ctl == nil {
		return nil, ErrNotInitialized
	}
	return d.ctl.Camera(), nil
}

// ReadAttribute reads an attribute by name. Names match case-insensitively.
func (d *Device) ReadAttribute(_ context.Context, name string) (any, error) {
	meta, err := d.class.Attribute(name)
	if err != nil {
		return nil, err
	}
	if !meta.Access.CanRead() {
		return nil, fmt.Errorf("%w: %s", model.ErrAttributeNotReadable, meta.Name)
	}
	b, ok := d.bindings.lookup(meta.Name)
	if !ok || b.get == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrAttributeNotFound, name)
	}

	cam, err := d.camera()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	v, err := b.get(cam)
	d.emitAccess(log.AccessRead, meta.Name, v, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", meta.Name, err)
	}
	return v, nil
}

// WriteAttribute writes an attribute by name. The value is converted to
// the declared attribute type first; enumerated values match
// case-insensitively.
func (d *Device) WriteAttribute(_ context.Context, name string, value any) error {
	meta, err := d.class.Attribute(name)
	if err != nil {
		return err
	}
	if !meta.Access.CanWrite() {
		return fmt.Errorf("%w: %s", model.ErrAttributeNotWritable, meta.Name)
	}
	b, ok := d.bindings.lookup(meta.Name)
	if !ok || b.set == nil {
		return fmt.Errorf("%w: %s", model.ErrAttributeNotFound, name)
	}

	v, err := meta.Normalize(value)
	if err != nil {
		return err
	}

	cam, err := d.camera()
	if err != nil {
		return err
	}

	start := time.Now()
	err = b.set(cam, v)
	d.emitAccess(log.AccessWrite, meta.Name, v, err, time.Since(start))
	if err != nil {
		return fmt.Errorf("write %s: %w", meta.Name, err)
	}
	return nil
}

// GetAttrStringValueList returns the permitted string values of an
// enumerated attribute, or an empty list for any other attribute.
// It does not require Init.
func (d *Device) GetAttrStringValueList(name string) ([]string, error) {
	meta, err := d.class.Attribute(name)
	if err != nil {
		return nil, err
	}
	if !meta.IsEnum() {
		return []string{}, nil
	}
	return append([]string(nil), meta.Values...), nil
}

// InvokeCommand executes a command by name. Names match case-insensitively.
func (d *Device) InvokeCommand(ctx context.Context, name string, arg any) (any, error) {
	cmd, ok := d.commands[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrCommandNotFound, name)
	}

	start := time.Now()
	out, err := cmd.Invoke(ctx, arg)
	d.emitAccess(log.AccessInvoke, cmd.Name(), out, err, time.Since(start))
	return out, err
}

// Status returns the human-readable device status.
func (d *Device) Status() string {
	state := d.State()
	status := fmt.Sprintf("The device is in %s state.", state)

	ctl := d.Control()
	if ctl == nil {
		return status
	}
	hw, err := ctl.Status()
	if err != nil {
		return fmt.Sprintf("%s\nCamera status unavailable: %v", status, err)
	}
	return fmt.Sprintf("%s\nCamera status: %s", status, hw)
}

func (d *Device) buildCommands() map[string]*model.Command {
	handlers := map[string]model.CommandHandler{
		CmdGetAttrStringValueList: func(_ context.Context, arg any) (any, error) {
			return d.GetAttrStringValueList(arg.(string))
		},
		CmdState: func(context.Context, any) (any, error) {
			return d.State(), nil
		},
		CmdStatus: func(context.Context, any) (any, error) {
			return d.Status(), nil
		},
	}

	cmds := make(map[string]*model.Command, len(handlers))
	for _, meta := range d.class.Commands() {
		cmds[strings.ToLower(meta.Name)] = model.NewCommand(meta, handlers[meta.Name])
	}
	return cmds
}
