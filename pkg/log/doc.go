// Package log provides the device event log of a Dhyana device server.
//
// This package defines the Logger interface and Event types for capturing
// what happens to a device at every layer: transport frames, decoded wire
// messages, attribute and command access, state changes and errors.
// It is separate from operational logging (slog). The event log is a
// complete machine-readable trace for debugging and analysis.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	events := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to a binary file
//	file, _ := log.NewFileLogger("/var/log/dhyana/device.dlog")
//
//	// Both
//	events := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), file)
//
// # Event Types
//
//   - Transport: raw frame sizes (FrameEvent)
//   - Wire: decoded requests and responses (MessageEvent)
//   - Device: attribute reads/writes, command invocations and the
//     property pushes of Init (AccessEvent)
//
// State changes, control messages and errors have dedicated event types.
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys,
// conventionally named *.dlog. The dhyana-log tool views them and
// computes statistics.
package log
