// Package wire defines the CBOR wire format of the Dhyana device protocol.
//
// Messages use CBOR (RFC 8949) with integer keys and are carried in
// length-prefixed frames by the transport package.
//
// # Message Types
//
//   - Request: client to device (Read, Write, Invoke)
//   - Response: device to client (status plus value or error message)
//   - ControlMessage: either side (ping, pong, close)
//
// Attributes and commands are addressed by name. Values travel as plain
// CBOR items, so a float written by a client decodes as float64 and an
// integer as uint64 or int64. The device normalizes them to the declared
// attribute type.
package wire
