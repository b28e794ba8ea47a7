package model

import (
	"context"
	"errors"
	"fmt"
)

// Command errors.
var (
	ErrCommandNotFound   = errors.New("command not found")
	ErrCommandFailed     = errors.New("command execution failed")
	ErrInvalidParameters = errors.New("invalid command parameters")
)

// CommandHandler is the function signature for command handlers.
// arg is the input argument already normalized to the declared input type
// (nil for DevVoid). Returns the output argument (nil for DevVoid) or an error.
type CommandHandler func(ctx context.Context, arg any) (any, error)

// CommandMetadata describes a command's properties.
type CommandMetadata struct {
	// Name is the command name.
	Name string

	// InType is the input argument type.
	InType DataType

	// InDescription describes the input argument.
	InDescription string

	// OutType is the output argument type.
	OutType DataType

	// OutDescription describes the output argument.
	OutDescription string
}

// Command represents a command instance with its handler.
type Command struct {
	metadata *CommandMetadata
	handler  CommandHandler
}

// NewCommand creates a new command with the given metadata and handler.
func NewCommand(meta *CommandMetadata, handler CommandHandler) *Command {
	return &Command{
		metadata: meta,
		handler:  handler,
	}
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.metadata.Name
}

// Metadata returns the command metadata.
func (c *Command) Metadata() *CommandMetadata {
	return c.metadata
}

// Invoke executes the command with the given argument.
func (c *Command) Invoke(ctx context.Context, arg any) (any, error) {
	arg, err := c.normalizeArg(arg)
	if err != nil {
		return nil, err
	}

	if c.handler == nil {
		return nil, ErrCommandNotFound
	}

	return c.handler(ctx, arg)
}

// normalizeArg checks the input argument against the declared type.
func (c *Command) normalizeArg(arg any) (any, error) {
	if c.metadata.InType == DataTypeVoid {
		return nil, nil
	}
	v, err := NormalizeValue(c.metadata.InType, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidParameters, c.metadata.Name, err)
	}
	return v, nil
}

// SetHandler sets or replaces the command handler.
func (c *Command) SetHandler(handler CommandHandler) {
	c.handler = handler
}
