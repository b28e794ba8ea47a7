// Package version provides the device server protocol version and
// compatibility checks between clients and servers.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Current is the protocol version implemented by this module.
const Current = "1.0"

// ErrIncompatible is returned when a peer speaks a different major version.
var ErrIncompatible = errors.New("incompatible protocol version")

// Protocol is a parsed "major.minor" protocol version.
type Protocol struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (Protocol, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok || strings.Contains(minor, ".") {
		return Protocol{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	ma, err := strconv.ParseUint(major, 10, 16)
	if err != nil {
		return Protocol{}, fmt.Errorf("invalid version %q: bad major component", s)
	}
	mi, err := strconv.ParseUint(minor, 10, 16)
	if err != nil {
		return Protocol{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return Protocol{Major: uint16(ma), Minor: uint16(mi)}, nil
}

// MustCurrent returns the parsed Current version.
func MustCurrent() Protocol {
	v, err := Parse(Current)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as "major.minor".
func (v Protocol) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v Protocol) Compatible(other Protocol) bool {
	return v.Major == other.Major
}

// Check verifies that an advertised version string is compatible with
// Current. Servers that advertise no version predate versioning and are
// accepted.
func Check(advertised string) error {
	if advertised == "" {
		return nil
	}
	v, err := Parse(advertised)
	if err != nil {
		return err
	}
	if !MustCurrent().Compatible(v) {
		return fmt.Errorf("%w: peer %s, local %s", ErrIncompatible, v, Current)
	}
	return nil
}
