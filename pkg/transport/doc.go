// Package transport provides the Dhyana device protocol transport.
//
// The transport layer handles:
//   - Length-prefixed message framing
//   - A TCP server that gives each connection a session UUID
//   - A client with request/response correlation by message ID
//   - Ping/pong/close control messages
//
// # Protocol Stack
//
//	┌────────────────────────────────┐
//	│      CBOR Messages (wire)      │
//	├────────────────────────────────┤
//	│   Length-Prefix Framing (4B)   │
//	├────────────────────────────────┤
//	│             TCP                │
//	└────────────────────────────────┘
//
// Every frame is a 4-byte big-endian payload length followed by the
// payload. Payloads are limited to 64 KiB by default. Empty frames are
// invalid.
package transport
