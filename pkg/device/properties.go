package device

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/dhyana-lima/dhyana-go/pkg/model"
)

// PropertySource supplies the configured property values of a device.
// Values may be typed (from YAML) or strings (from a host database).
type PropertySource interface {
	DeviceProperties(device string) (map[string]any, error)
}

// StaticProperties is a PropertySource that returns the same values for
// every device.
type StaticProperties map[string]any

// DeviceProperties returns the map itself.
func (s StaticProperties) DeviceProperties(string) (map[string]any, error) {
	return s, nil
}

// Properties are the loaded property values of a device, keyed by the
// published property name and typed as declared.
type Properties struct {
	values map[string]any
	set    map[string]bool
}

// LoadProperties validates raw against the class properties and fills in
// defaults. Keys match property names case-insensitively. An unknown key
// fails with model.ErrPropertyNotFound and a value that cannot be coerced
// to the declared type with model.ErrAttributeValueType.
func LoadProperties(class *model.Class, raw map[string]any) (*Properties, error) {
	p := &Properties{
		values: make(map[string]any, len(class.Properties())),
		set:    make(map[string]bool, len(raw)),
	}

	for _, meta := range class.Properties() {
		p.values[meta.Name] = meta.Default
	}

	for key, value := range raw {
		meta, err := class.Property(key)
		if err != nil {
			return nil, err
		}
		v, err := coerceProperty(meta, value)
		if err != nil {
			return nil, err
		}
		p.values[meta.Name] = v
		p.set[meta.Name] = true
	}

	return p, nil
}

// coerceProperty converts a configured value to the declared property type.
// Host databases deliver every value as a string; those are parsed and then
// range-checked like typed values.
func coerceProperty(meta *model.PropertyMetadata, value any) (any, error) {
	s, isString := value.(string)
	if !isString || meta.Type == model.DataTypeString {
		return meta.Normalize(value)
	}

	v, err := model.ParseValue(meta.Type, s)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", meta.Name, err)
	}
	return v, nil
}

// Get returns the value of a property.
func (p *Properties) Get(name string) (any, bool) {
	for k, v := range p.values {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// IsSet reports whether the property was configured rather than defaulted.
func (p *Properties) IsSet(name string) bool {
	return p.set[name]
}

// Float64 returns a float property, or 0 if it is absent.
func (p *Properties) Float64(name string) float64 {
	v, _ := p.Get(name)
	f, _ := model.ToFloat64(v)
	return f
}

// String returns a string property, or "" if it is absent.
func (p *Properties) String(name string) string {
	v, _ := p.Get(name)
	s, _ := v.(string)
	return s
}

// Names returns the property names in sorted order.
func (p *Properties) Names() []string {
	names := make([]string, 0, len(p.values))
	for k := range p.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Strings renders every property as a string, the form the control
// context parses.
func (p *Properties) Strings() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = cast.ToString(v)
	}
	return out
}
