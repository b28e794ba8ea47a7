package device

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProfile is returned for a profile name that is not defined.
var ErrUnknownProfile = errors.New("unknown device profile")

// Profile selects one of the device variants.
type Profile string

const (
	// ProfileStandard is the full-featured variant.
	ProfileStandard Profile = "standard"

	// ProfileLegacy is the reduced variant with numeric gain.
	ProfileLegacy Profile = "legacy"
)

// Profiles lists the defined profiles.
var Profiles = []Profile{ProfileStandard, ProfileLegacy}

// ParseProfile parses a profile name. An empty name selects ProfileStandard.
func ParseProfile(s string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case "", ProfileStandard:
		return ProfileStandard, nil
	case ProfileLegacy:
		return ProfileLegacy, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
}

// String returns the profile name.
func (p Profile) String() string {
	return string(p)
}

// Valid returns true for a defined profile.
func (p Profile) Valid() bool {
	return p == ProfileStandard || p == ProfileLegacy
}
