package commands

import (
	"fsops/internal/attribute"
)

// AttributeRequest contains the parameters for the attribute command.
type AttributeRequest struct {
	Name  string
	Value string
}

// BuildAttribute constructs an attribute from the request. An empty name
// yields an attribute without a value.
func BuildAttribute(req AttributeRequest) *attribute.Attribute {
	return attribute.New(req.Name, req.Value)
}
