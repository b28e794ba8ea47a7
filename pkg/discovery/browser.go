package discovery

import (
	"context"
	"time"
)

// Browser provides mDNS service browsing capabilities.
type Browser interface {
	// Browse searches for device servers. The channel is closed when ctx
	// is done.
	Browse(ctx context.Context) (<-chan *DeviceService, error)

	// FindDevice returns the first server advertising deviceName.
	FindDevice(ctx context.Context, deviceName string) (*DeviceService, error)
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// BrowseTimeout bounds FindDevice when the context has no deadline.
	// Default: 5 seconds.
	BrowseTimeout time.Duration

	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		BrowseTimeout: BrowseTimeout,
	}
}
