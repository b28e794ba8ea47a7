// Package config loads the YAML configuration of a device server.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dhyana-lima/dhyana-go/pkg/device"
	"github.com/dhyana-lima/dhyana-go/pkg/transport"
)

// Configuration errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownDevice = errors.New("unknown device")
)

// Config aggregates the device server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Device    DeviceConfig    `yaml:"device"`
}

// ServerConfig configures the network server and logging.
type ServerConfig struct {
	Listen   string `yaml:"listen"`
	LogLevel string `yaml:"log_level"` // debug|info|warn|error
	EventLog string `yaml:"event_log"` // CBOR event log path, empty disables
}

// DiscoveryConfig configures mDNS advertisement.
type DiscoveryConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Interface string `yaml:"interface"`
	Instance  string `yaml:"instance"` // defaults to the device name
}

// DeviceConfig configures the served device.
type DeviceConfig struct {
	Name       string         `yaml:"name"`
	Profile    string         `yaml:"profile"` // standard|legacy
	Simulate   bool           `yaml:"simulate"`
	Properties map[string]any `yaml:"properties"`
}

// Default returns the configuration used for keys absent from a file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:   fmt.Sprintf(":%d", transport.DefaultPort),
			LogLevel: "info",
		},
		Discovery: DiscoveryConfig{
			Enabled: true,
		},
		Device: DeviceConfig{
			Name:     "dhyana/test/1",
			Profile:  device.ProfileStandard.String(),
			Simulate: true,
		},
	}
}

// Load reads a YAML file and returns the validated configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration. Property keys are checked against the
// class schema of the configured profile.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Device.Name) == "" {
		return fmt.Errorf("%w: device.name is required", ErrInvalidConfig)
	}
	if c.Server.Listen == "" {
		return fmt.Errorf("%w: server.listen is required", ErrInvalidConfig)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	profile, err := device.ParseProfile(c.Device.Profile)
	if err != nil {
		return fmt.Errorf("%w: device.profile: %w", ErrInvalidConfig, err)
	}
	class, err := device.NewClass(profile)
	if err != nil {
		return err
	}
	for key := range c.Device.Properties {
		if _, err := class.Property(key); err != nil {
			return fmt.Errorf("%w: device.properties: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Profile returns the parsed device profile.
func (c *Config) Profile() device.Profile {
	p, err := device.ParseProfile(c.Device.Profile)
	if err != nil {
		return device.ProfileStandard
	}
	return p
}

// SlogLevel returns the operational log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: server.log_level %q", ErrInvalidConfig, c.Server.LogLevel)
}

// DeviceProperties returns the configured properties of the named device.
// It implements device.PropertySource.
func (c *Config) DeviceProperties(name string) (map[string]any, error) {
	if name != c.Device.Name {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDevice, name)
	}
	props := make(map[string]any, len(c.Device.Properties))
	for k, v := range c.Device.Properties {
		props[k] = v
	}
	return props, nil
}

var _ device.PropertySource = (*Config)(nil)
