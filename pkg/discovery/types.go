package discovery

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"
)

// Service constants for mDNS.
const (
	// ServiceType is the DNS-SD service type of device servers.
	ServiceType = "_dhyana._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the default device server port.
	DefaultPort = 9100

	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 5 * time.Second
)

// TXT record keys.
const (
	TXTKeyClass   = "class"
	TXTKeyDevice  = "device"
	TXTKeyProfile = "profile"
	TXTKeyModel   = "model"
	TXTKeyVersion = "ver"
)

// MaxInstanceNameLen is the DNS label limit.
const MaxInstanceNameLen = 63

// Errors.
var (
	ErrMissingRequired     = errors.New("missing required field")
	ErrInstanceNameTooLong = errors.New("instance name too long")
	ErrNotAdvertising      = errors.New("not advertising")
	ErrNotFound            = errors.New("device not found")
)

// DeviceInfo describes an advertised device server.
type DeviceInfo struct {
	// InstanceName is the DNS-SD instance name. Defaults to DeviceName.
	InstanceName string

	// Class is the device class name.
	Class string

	// DeviceName is the device name.
	DeviceName string

	// Profile is the device profile.
	Profile string

	// Model is the detector model. Optional.
	Model string

	// Version is the protocol version spoken by the server. Optional.
	Version string

	// Port is the TCP port of the device server.
	Port uint16
}

// DeviceService is a device server found by browsing.
type DeviceService struct {
	InstanceName string
	Host         string
	Port         uint16
	Addresses    []string

	Class      string
	DeviceName string
	Profile    string
	Model      string
	Version    string
}

// Address returns a dialable host:port, preferring the first resolved
// address over the host name.
func (s *DeviceService) Address() string {
	host := strings.TrimSuffix(s.Host, ".")
	if len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	return net.JoinHostPort(host, strconv.Itoa(int(s.Port)))
}
