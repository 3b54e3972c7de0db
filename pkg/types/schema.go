// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Schema represents an OpenAPI schema object, following the JSON Schema
// specification with OpenAPI extensions.
type Schema struct {
	// Ref is a reference to another schema ($ref)
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	// Type is the data type (string, number, integer, boolean, array, object)
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Format is the data format (date-time, email, uuid, etc.)
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Title is a short title for the schema
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Description is a detailed description of the schema
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Default is the default value
	Default interface{} `json:"default,omitempty" yaml:"default,omitempty"`

	// Example is an example value
	Example interface{} `json:"example,omitempty" yaml:"example,omitempty"`

	// Enum is a list of allowed values
	Enum []interface{} `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Nullable indicates if the value can be null
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// ReadOnly indicates the value is read-only
	ReadOnly bool `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`

	// WriteOnly indicates the value is write-only
	WriteOnly bool `json:"writeOnly,omitempty" yaml:"writeOnly,omitempty"`

	// Deprecated indicates the schema is deprecated
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// MinLength is the minimum string length
	MinLength *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`

	// MaxLength is the maximum string length
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	// Pattern is a regex pattern for string validation
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Minimum is the minimum numeric value
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`

	// Maximum is the maximum numeric value
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// ExclusiveMinimum indicates if minimum is exclusive
	ExclusiveMinimum bool `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`

	// ExclusiveMaximum indicates if maximum is exclusive
	ExclusiveMaximum bool `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`

	// Items is the schema for array items
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// MinItems is the minimum number of array items
	MinItems *int `json:"minItems,omitempty" yaml:"minItems,omitempty"`

	// MaxItems is the maximum number of array items
	MaxItems *int `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`

	// UniqueItems indicates if array items must be unique
	UniqueItems bool `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`

	// Properties maps property names to their schemas
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`

	// Required is a list of required property names
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`

	// AdditionalProperties defines the schema for additional properties
	AdditionalProperties *Schema `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// AllOf is a list of schemas that must all be valid
	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`

	// OneOf is a list of schemas where exactly one must be valid
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`

	// AnyOf is a list of schemas where at least one must be valid
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`

	// ExternalDocs provides external documentation
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// SetProperty records a property schema, creating the property map on
// first use.
func (s *Schema) SetProperty(name string, prop *Schema) {
	if s.Properties == nil {
		s.Properties = make(map[string]*Schema)
	}
	s.Properties[name] = prop
}

// Clone returns a deep copy of the schema.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s

	if s.Enum != nil {
		out.Enum = append([]interface{}(nil), s.Enum...)
	}
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	out.Items = s.Items.Clone()
	out.AdditionalProperties = s.AdditionalProperties.Clone()
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.Clone()
		}
	}
	out.AllOf = cloneSchemas(s.AllOf)
	out.OneOf = cloneSchemas(s.OneOf)
	out.AnyOf = cloneSchemas(s.AnyOf)
	if s.ExternalDocs != nil {
		docs := *s.ExternalDocs
		out.ExternalDocs = &docs
	}
	return &out
}

func cloneSchemas(schemas []*Schema) []*Schema {
	if schemas == nil {
		return nil
	}
	out := make([]*Schema, len(schemas))
	for i, s := range schemas {
		out[i] = s.Clone()
	}
	return out
}
