package discovery

import (
	"context"
	"time"
)

// Advertiser provides mDNS service advertising capabilities.
type Advertiser interface {
	// Advertise starts advertising a device server. A previous
	// advertisement is replaced.
	Advertise(ctx context.Context, info *DeviceInfo) error

	// Update replaces the TXT records of the running advertisement.
	Update(info *DeviceInfo) error

	// Stop stops advertising. Stopping when not advertising is a no-op.
	Stop() error
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL.
	// Default: 120 seconds.
	TTL time.Duration
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		TTL: 120 * time.Second,
	}
}
