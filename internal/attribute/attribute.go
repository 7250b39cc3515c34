// Package attribute provides a named string value holder.
package attribute

import "gopkg.in/yaml.v3"

// Attribute holds a name and an optional value. An attribute constructed
// with an empty name has no value, whatever value was supplied.
type Attribute struct {
	name  string
	value *string
}

// New creates an attribute.
func New(name, value string) *Attribute {
	a := &Attribute{name: name}
	if name != "" {
		a.value = &value
	}
	return a
}

// Name returns the attribute name.
func (a *Attribute) Name() string {
	return a.name
}

// Value returns the value and whether one is present.
func (a *Attribute) Value() (string, bool) {
	if a.value == nil {
		return "", false
	}
	return *a.value, true
}

// SetName overwrites the name. It always succeeds.
func (a *Attribute) SetName(name string) bool {
	a.name = name
	return true
}

// SetValue overwrites the value. It always succeeds.
func (a *Attribute) SetValue(value string) bool {
	a.value = &value
	return true
}

// IsAttribute reports whether candidate is an attribute.
func (a *Attribute) IsAttribute(candidate any) bool {
	switch c := candidate.(type) {
	case *Attribute:
		return c != nil
	case Attribute:
		return true
	default:
		return false
	}
}

// String renders the attribute as name=value.
func (a *Attribute) String() string {
	if v, ok := a.Value(); ok {
		return a.name + "=" + v
	}
	return a.name + "=<absent>"
}

// MarshalYAML renders the attribute as a single-entry mapping, with a null
// value when absent.
func (a *Attribute) MarshalYAML() (any, error) {
	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	if v, ok := a.Value(); ok {
		valueNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.name},
			valueNode,
		},
	}, nil
}
