// Package model implements the device class schema used by the Dhyana
// device server.
//
// # Class Structure
//
// A device class is an immutable catalog published once per process:
//
//	Class (Dhyana)
//	├── Properties  name -> (type, description, default)
//	├── Attributes  name -> (type, format, access, unit, description, values)
//	└── Commands    name -> (argin type, argout type)
//
// Properties are typed configuration values loaded once at device startup.
// Attributes are typed, access-controlled values read or written at runtime.
// Commands are invokable operations with a single input and output argument.
//
// # Names
//
// Host frameworks address attributes, properties and commands by name. All
// lookups on a Class are case-insensitive; the schema keeps the canonical
// spelling.
//
// # Access Control
//
// Attributes have access flags:
//   - Read: Can be read
//   - Write: Can be written
//
// Enumerated attributes (DataTypeEnum) additionally carry the ordered list
// of permitted string values.
package model
