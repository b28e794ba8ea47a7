package discovery

import (
	"fmt"
	"sort"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeDeviceTXT creates TXT records for a device server.
func EncodeDeviceTXT(info *DeviceInfo) TXTRecordMap {
	txt := TXTRecordMap{
		TXTKeyClass:   info.Class,
		TXTKeyDevice:  info.DeviceName,
		TXTKeyProfile: info.Profile,
	}
	if info.Model != "" {
		txt[TXTKeyModel] = info.Model
	}
	if info.Version != "" {
		txt[TXTKeyVersion] = info.Version
	}
	return txt
}

// DecodeDeviceTXT parses the TXT records of a device server.
func DecodeDeviceTXT(txt TXTRecordMap) (*DeviceInfo, error) {
	info := &DeviceInfo{}

	var ok bool
	if info.Class, ok = txt[TXTKeyClass]; !ok || info.Class == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyClass)
	}
	if info.DeviceName, ok = txt[TXTKeyDevice]; !ok || info.DeviceName == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyDevice)
	}
	info.Profile = txt[TXTKeyProfile]
	info.Model = txt[TXTKeyModel]
	info.Version = txt[TXTKeyVersion]

	return info, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value"
// strings, sorted by key.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		key, value, found := strings.Cut(s, "=")
		if key == "" {
			continue
		}
		if !found {
			// Key without value (boolean flag)
			value = ""
		}
		txt[key] = value
	}
	return txt
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrMissingRequired)
	}
	if len(name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	return nil
}

// InstanceName returns the instance name for info: InstanceName when set,
// the device name otherwise, truncated to the DNS label limit.
func InstanceName(info *DeviceInfo) string {
	name := info.InstanceName
	if name == "" {
		name = info.DeviceName
	}
	if len(name) > MaxInstanceNameLen {
		name = name[:MaxInstanceNameLen]
	}
	return name
}
