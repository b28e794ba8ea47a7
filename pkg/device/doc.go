// Package device implements the Dhyana device adapter.
//
// A Device publishes the Dhyana class schema (properties, attributes and
// commands) and forwards attribute access to the camera handle owned by a
// control.Context. Two independent profiles exist:
//
//   - standard: the full attribute set with enumerated gain, trigger and
//     test-image attributes and buffer statistics
//   - legacy: the reduced attribute set with numeric gain
//
// Attribute access goes through a dispatch table that maps every attribute
// name to a typed getter and setter. The table is checked against the
// published schema when the device is constructed.
//
// Typical use by a host:
//
//	class, newDevice, _ := device.ClassAndDevice(device.ProfileStandard)
//	dev, err := newDevice("dhyana/test/1", controlCtx,
//	    device.WithPropertySource(cfg))
//	err = dev.Init(ctx)
//	v, err := dev.ReadAttribute(ctx, "temperature")
package device
