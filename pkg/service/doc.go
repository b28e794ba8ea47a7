// Package service binds a Dhyana device to the network.
//
// A DeviceServer owns a transport.Server. Every request frame is decoded,
// dispatched to the device by operation and answered with exactly one
// response carrying the request's message ID:
//
//	READ   -> Device.ReadAttribute
//	WRITE  -> Device.WriteAttribute
//	INVOKE -> Device.InvokeCommand
//
// Device errors are mapped to wire status codes by StatusFromError.
// Requests on one connection are handled one at a time, in arrival order.
//
// When an Advertiser is configured the server announces itself over mDNS
// while it runs.
package service
