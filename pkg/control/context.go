package control

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dhyana-lima/dhyana-go/pkg/camera"
)

// ErrNoFactory is returned when a Context has no camera factory.
var ErrNoFactory = errors.New("no camera factory")

// Control is the acquisition-control facade returned to the host.
type Control struct {
	iface *camera.Interface
	opts  Options
}

// Interface returns the hardware interface handle.
func (c *Control) Interface() *camera.Interface {
	return c.iface
}

// Camera returns the camera handle behind the interface.
func (c *Control) Camera() camera.Camera {
	return c.iface.Camera()
}

// Options returns the options the camera was constructed with.
func (c *Control) Options() Options {
	return c.opts
}

// DetectorInfo returns the detector description.
func (c *Control) DetectorInfo() (camera.DetectorInfo, error) {
	return c.iface.DetectorInfo()
}

// Status returns the hardware acquisition status.
func (c *Control) Status() (camera.Status, error) {
	return c.iface.Status()
}

// Context owns the process-wide Camera/Interface handle pair.
// It is safe for concurrent use.
type Context struct {
	factory  camera.Factory
	defaults Options
	logger   *slog.Logger

	mu      sync.Mutex
	control *Control
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithDefaults sets the options used for keys absent from GetControl input.
func WithDefaults(opts Options) ContextOption {
	return func(c *Context) {
		c.defaults = opts
	}
}

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(c *Context) {
		c.logger = logger
	}
}

// NewContext creates a Context that builds cameras with factory.
func NewContext(factory camera.Factory, opts ...ContextOption) *Context {
	c := &Context{
		factory:  factory,
		defaults: Options{InternalTriggerTimer: DefaultInternalTriggerTimer},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetControl returns the control facade, constructing the Camera and
// Interface handles on first use. props are the device properties rendered
// as strings. Once constructed, props are ignored and the same facade is
// returned.
func (c *Context) GetControl(props map[string]string) (*Control, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.control != nil {
		return c.control, nil
	}

	if c.factory == nil {
		return nil, ErrNoFactory
	}

	opts, err := ParseOptions(props, c.defaults)
	if err != nil {
		return nil, err
	}

	cam, err := c.factory(opts.CameraConfig())
	if err != nil {
		return nil, fmt.Errorf("create camera: %w", err)
	}

	iface, err := camera.NewInterface(cam)
	if err != nil {
		return nil, fmt.Errorf("create interface: %w", err)
	}

	c.control = &Control{iface: iface, opts: opts}
	c.logger.Info("camera control created",
		slog.Int("internal_trigger_timer_ms", opts.InternalTriggerTimer))

	return c.control, nil
}

// Current returns the control facade if it has been constructed.
func (c *Context) Current() (*Control, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.control, c.control != nil
}
