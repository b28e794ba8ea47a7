package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateName is returned when a class declares the same name twice.
var ErrDuplicateName = errors.New("duplicate name")

// Class is the immutable schema of a device class.
type Class struct {
	name       string
	properties []*PropertyMetadata
	attributes []*AttributeMetadata
	commands   []*CommandMetadata

	// lowercase name -> index
	propIndex map[string]int
	attrIndex map[string]int
	cmdIndex  map[string]int
}

// ClassDefinition lists the members of a class in publication order.
type ClassDefinition struct {
	Name       string
	Properties []*PropertyMetadata
	Attributes []*AttributeMetadata
	Commands   []*CommandMetadata
}

// NewClass validates def and builds a Class.
// Property defaults must match their declared types and names must be
// unique within each catalog (case-insensitive).
func NewClass(def ClassDefinition) (*Class, error) {
	c := &Class{
		name:       def.Name,
		properties: def.Properties,
		attributes: def.Attributes,
		commands:   def.Commands,
		propIndex:  make(map[string]int, len(def.Properties)),
		attrIndex:  make(map[string]int, len(def.Attributes)),
		cmdIndex:   make(map[string]int, len(def.Commands)),
	}

	for i, p := range def.Properties {
		if err := p.CheckDefault(); err != nil {
			return nil, err
		}
		if err := addIndex(c.propIndex, p.Name, i); err != nil {
			return nil, fmt.Errorf("property: %w", err)
		}
	}
	for i, a := range def.Attributes {
		if a.IsEnum() && len(a.Values) == 0 {
			return nil, fmt.Errorf("attribute %s: enumerated attribute without values", a.Name)
		}
		if err := addIndex(c.attrIndex, a.Name, i); err != nil {
			return nil, fmt.Errorf("attribute: %w", err)
		}
	}
	for i, cmd := range def.Commands {
		if err := addIndex(c.cmdIndex, cmd.Name, i); err != nil {
			return nil, fmt.Errorf("command: %w", err)
		}
	}

	return c, nil
}

func addIndex(index map[string]int, name string, i int) error {
	key := strings.ToLower(name)
	if _, exists := index[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	index[key] = i
	return nil
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Properties returns the property schema in publication order.
func (c *Class) Properties() []*PropertyMetadata {
	return c.properties
}

// Attributes returns the attribute schema in publication order.
func (c *Class) Attributes() []*AttributeMetadata {
	return c.attributes
}

// Commands returns the command schema in publication order.
func (c *Class) Commands() []*CommandMetadata {
	return c.commands
}

// Property looks up a property by name.
func (c *Class) Property(name string) (*PropertyMetadata, error) {
	i, ok := c.propIndex[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, name)
	}
	return c.properties[i], nil
}

// Attribute looks up an attribute by name.
func (c *Class) Attribute(name string) (*AttributeMetadata, error) {
	i, ok := c.attrIndex[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
	}
	return c.attributes[i], nil
}

// Command looks up a command by name.
func (c *Class) Command(name string) (*CommandMetadata, error) {
	i, ok := c.cmdIndex[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	return c.commands[i], nil
}

// AttributeNames returns the attribute names in publication order.
func (c *Class) AttributeNames() []string {
	names := make([]string, len(c.attributes))
	for i, a := range c.attributes {
		names[i] = a.Name
	}
	return names
}
