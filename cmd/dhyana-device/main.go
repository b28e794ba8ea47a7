// Command dhyana-device serves a Dhyana camera device over the network.
//
// The device is built from a YAML configuration file, command-line flags
// override individual settings. Without a real camera SDK the device runs
// on the built-in camera simulator.
//
// Usage:
//
//	dhyana-device [flags]
//
// Flags:
//
//	-config string      Configuration file path
//	-listen string      Listen address (default ":9100")
//	-name string        Device name (default "dhyana/test/1")
//	-profile string     Device profile: standard, legacy (default "standard")
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-event-log string   Write device events to this CBOR log file
//	-interactive        Start the interactive console
//	-no-discovery       Do not advertise over mDNS
//
// Examples:
//
//	# Serve the default simulated device
//	dhyana-device
//
//	# Legacy profile with an event log and console
//	dhyana-device -profile legacy -event-log /tmp/dhyana.dlog -interactive
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhyana-lima/dhyana-go/cmd/dhyana-device/interactive"
	"github.com/dhyana-lima/dhyana-go/pkg/camera"
	"github.com/dhyana-lima/dhyana-go/pkg/config"
	"github.com/dhyana-lima/dhyana-go/pkg/control"
	"github.com/dhyana-lima/dhyana-go/pkg/device"
	"github.com/dhyana-lima/dhyana-go/pkg/discovery"
	dlog "github.com/dhyana-lima/dhyana-go/pkg/log"
	"github.com/dhyana-lima/dhyana-go/pkg/service"
	"github.com/dhyana-lima/dhyana-go/pkg/version"
)

// errNoSDK is returned when the configuration asks for real hardware.
var errNoSDK = errors.New("no camera SDK linked into this build; set device.simulate: true")

// Flags holds the command-line overrides.
type Flags struct {
	ConfigFile  string
	Listen      string
	Name        string
	Profile     string
	LogLevel    string
	EventLog    string
	Interactive bool
	NoDiscovery bool
}

var flags Flags

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&flags.Listen, "listen", "", "Listen address (default \":9100\")")
	flag.StringVar(&flags.Name, "name", "", "Device name (default \"dhyana/test/1\")")
	flag.StringVar(&flags.Profile, "profile", "", "Device profile: standard, legacy")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&flags.EventLog, "event-log", "", "Write device events to this CBOR log file")
	flag.BoolVar(&flags.Interactive, "interactive", false, "Start the interactive console")
	flag.BoolVar(&flags.NoDiscovery, "no-discovery", false, "Do not advertise over mDNS")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dhyana-device: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if !cfg.Device.Simulate {
		return errNoSDK
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var console *interactive.Console
	var out io.Writer = os.Stderr
	if flags.Interactive {
		console, err = interactive.New()
		if err != nil {
			return err
		}
		out = console.Stdout()
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	events, closeEvents, err := eventLogger(cfg, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	profile := cfg.Profile()
	class, newDevice, err := device.ClassAndDevice(profile)
	if err != nil {
		return err
	}

	cc := control.NewContext(camera.SimulatorFactory,
		control.WithDefaults(control.Options{InternalTriggerTimer: device.DefaultTimer(profile)}),
		control.WithLogger(logger))

	dev, err := newDevice(cfg.Device.Name, cc,
		device.WithPropertySource(cfg),
		device.WithLogger(logger),
		device.WithEventLogger(events))
	if err != nil {
		return err
	}

	logger.Info("Dhyana device",
		slog.String("class", class.Name()),
		slog.String("name", dev.Name()),
		slog.String("profile", profile.String()),
		slog.String("protocol", version.Current))

	if err := dev.Init(ctx); err != nil {
		return fmt.Errorf("init device: %w", err)
	}

	svcConfig := service.Config{
		Address:      cfg.Server.Listen,
		Logger:       logger,
		EventLogger:  events,
		InstanceName: cfg.Discovery.Instance,
	}
	if cfg.Discovery.Enabled {
		advConfig := discovery.DefaultAdvertiserConfig()
		advConfig.Interface = cfg.Discovery.Interface
		svcConfig.Advertiser = discovery.NewMDNSAdvertiser(advConfig)
	}

	srv := service.NewDeviceServer(dev, svcConfig)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	defer srv.Stop()

	acq := newAcquisition(dev, logger)
	defer acq.Stop()

	if console != nil {
		go console.Run(ctx, cancel, dev, acq)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("shutting down")
	}
	return nil
}

// loadConfig reads the configuration file, if any, and applies the flags.
func loadConfig(f Flags) (*config.Config, error) {
	cfg := config.Default()
	if f.ConfigFile != "" {
		var err error
		cfg, err = config.Load(f.ConfigFile)
		if err != nil {
			return nil, err
		}
	}

	if f.Listen != "" {
		cfg.Server.Listen = f.Listen
	}
	if f.Name != "" {
		cfg.Device.Name = f.Name
	}
	if f.Profile != "" {
		cfg.Device.Profile = f.Profile
	}
	if f.LogLevel != "" {
		cfg.Server.LogLevel = f.LogLevel
	}
	if f.EventLog != "" {
		cfg.Server.EventLog = f.EventLog
	}
	if f.NoDiscovery {
		cfg.Discovery.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// eventLogger builds the device event logger. Events always go to the
// operational logger at debug level and additionally to the CBOR file
// when one is configured.
func eventLogger(cfg *config.Config, logger *slog.Logger) (dlog.Logger, func(), error) {
	adapter := dlog.NewSlogAdapter(logger)
	if cfg.Server.EventLog == "" {
		return adapter, func() {}, nil
	}

	file, err := dlog.NewFileLogger(cfg.Server.EventLog)
	if err != nil {
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}
	logger.Info("event log", slog.String("path", file.Path()))

	closeFn := func() {
		if n := file.Dropped(); n > 0 {
			logger.Warn("event log dropped events", slog.Uint64("count", n))
		}
		file.Close()
	}
	return dlog.NewMultiLogger(adapter, file), closeFn, nil
}
