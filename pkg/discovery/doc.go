// Package discovery implements mDNS/DNS-SD discovery for Dhyana device
// servers.
//
// A running device server advertises one instance of the _dhyana._tcp
// service. The instance name defaults to the device name. TXT records carry:
//   - class: the device class name ("Dhyana")
//   - device: the device name, e.g. "dhyana/test/1"
//   - profile: the device profile ("standard" or "legacy")
//   - model: the detector model reported by the camera (optional)
//
// Clients browse the same service type to find servers without knowing
// their address in advance.
package discovery
