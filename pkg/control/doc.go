// Package control owns the camera handles of a device server process.
//
// A Context is created once by the host and handed to every device it
// constructs. The first call to GetControl parses the string-typed
// configuration it receives, constructs the Camera Handle through the
// injected factory and wraps it in an Interface Handle and a Control facade.
// Later calls return the same facade:
//
//	ctx := control.NewContext(camera.SimulatorFactory)
//	ctl, err := ctx.GetControl(map[string]string{"internal_trigger_timer": "123"})
//
// Creation is serialized, so concurrent first use constructs exactly one
// Camera/Interface pair. When the factory fails nothing is kept and the next
// call tries again.
package control
