// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation represents one verb on one path. It is assembled additively
// by the transformation engine: an explicit operation fragment (if any)
// seeds the document, and inferred tags, security, responses, servers,
// callbacks, parameters and request body are layered on top.
type Operation struct {
	// Tags is an ordered list of tag names
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Summary is a brief summary
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Description is a detailed description
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// ExternalDocs provides external documentation
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`

	// OperationID is a unique identifier; defaults to the handler name
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`

	// Parameters is an ordered list of parameters
	Parameters []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// RequestBody is the request body; at most one per operation
	RequestBody *RequestBody `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`

	// Responses maps a status code or "default" to a response
	Responses map[string]*Response `json:"responses,omitempty" yaml:"responses,omitempty"`

	// Callbacks maps callback names to callback definitions
	Callbacks map[string]*Callback `json:"callbacks,omitempty" yaml:"callbacks,omitempty"`

	// Deprecated indicates if the operation is deprecated
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// Security is an ordered list of security requirements
	Security []SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`

	// Servers is an ordered list of servers
	Servers []Server `json:"servers,omitempty" yaml:"servers,omitempty"`
}

// AddTag appends a tag name.
func (o *Operation) AddTag(name string) {
	o.Tags = append(o.Tags, name)
}

// AddSecurity appends a security requirement.
func (o *Operation) AddSecurity(req SecurityRequirement) {
	o.Security = append(o.Security, req)
}

// AddServer appends a server.
func (o *Operation) AddServer(server Server) {
	o.Servers = append(o.Servers, server)
}

// AddCallback records a callback under the given name, creating the
// callback map on first use.
func (o *Operation) AddCallback(name string, cb *Callback) {
	if o.Callbacks == nil {
		o.Callbacks = make(map[string]*Callback)
	}
	o.Callbacks[name] = cb
}

// SetResponse records a response under a status code or "default".
func (o *Operation) SetResponse(code string, resp *Response) {
	if o.Responses == nil {
		o.Responses = make(map[string]*Response)
	}
	o.Responses[code] = resp
}

// DefaultResponseKey is the responses map key for the synthesized
// default response.
const DefaultResponseKey = "default"

// Parameter represents an OpenAPI parameter document.
//
// Required and Explode are pointers so that "unset" is distinguishable
// from an explicit false; the fragment merge in the engine relies on
// this to never clobber a derived value with a zero value.
type Parameter struct {
	// Name is the parameter name; non-empty before attachment
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// In is the binding location (path, query, header, cookie)
	In string `json:"in,omitempty" yaml:"in,omitempty"`

	// Description is a brief description of the parameter
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Required indicates if the parameter is required; nil means unset
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Deprecated indicates if the parameter is deprecated
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// AllowEmptyValue permits empty values for query parameters
	AllowEmptyValue bool `json:"allowEmptyValue,omitempty" yaml:"allowEmptyValue,omitempty"`

	// Style describes how the parameter value is serialized
	Style string `json:"style,omitempty" yaml:"style,omitempty"`

	// Explode indicates exploded serialization; nil means unset
	Explode *bool `json:"explode,omitempty" yaml:"explode,omitempty"`

	// Schema defines the type of the parameter
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Example is an example value for the parameter
	Example interface{} `json:"example,omitempty" yaml:"example,omitempty"`
}

// Parameter location constants.
const (
	InPath   = "path"
	InQuery  = "query"
	InHeader = "header"
	InCookie = "cookie"
)

// RequestBody represents an OpenAPI request body document.
type RequestBody struct {
	// Description is a brief description of the request body
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Required indicates if the request body is required; nil means unset
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Content maps media types to their schemas
	Content *Content `json:"content,omitempty" yaml:"content,omitempty"`
}

// Response represents an OpenAPI response document.
type Response struct {
	// Description is a brief description of the response
	Description string `json:"description" yaml:"description"`

	// Headers maps header names to header definitions
	Headers map[string]*Header `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Content maps media types to their schemas
	Content *Content `json:"content,omitempty" yaml:"content,omitempty"`
}

// Header represents an OpenAPI header.
type Header struct {
	// Description is a brief description of the header
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Required indicates if the header is required
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Deprecated indicates if the header is deprecated
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// Schema defines the type of the header
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// MediaType represents an OpenAPI media type entry.
type MediaType struct {
	// Schema defines the structure of the content
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Example is an example of the content
	Example interface{} `json:"example,omitempty" yaml:"example,omitempty"`
}

// Content is a media-type-keyed set of schemas attached to a body.
// Keys are unique and insertion order is preserved through serialization.
type Content struct {
	keys    []string
	entries map[string]*MediaType
}

// NewContent returns an empty content map.
func NewContent() *Content {
	return &Content{entries: make(map[string]*MediaType)}
}

// Set records a media type entry, replacing any existing entry with the
// same key without changing its position.
func (c *Content) Set(mediaType string, mt *MediaType) {
	if c.entries == nil {
		c.entries = make(map[string]*MediaType)
	}
	if _, ok := c.entries[mediaType]; !ok {
		c.keys = append(c.keys, mediaType)
	}
	c.entries[mediaType] = mt
}

// Get returns the entry for a media type.
func (c *Content) Get(mediaType string) (*MediaType, bool) {
	if c == nil || c.entries == nil {
		return nil, false
	}
	mt, ok := c.entries[mediaType]
	return mt, ok
}

// Keys returns the media type keys in insertion order.
func (c *Content) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of entries.
func (c *Content) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// MarshalJSON emits the entries as a JSON object in insertion order.
func (c *Content) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(c.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving key order.
func (c *Content) UnmarshalJSON(data []byte) error {
	c.keys = nil
	c.entries = make(map[string]*MediaType)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("content: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var mt MediaType
		if err := dec.Decode(&mt); err != nil {
			return fmt.Errorf("content %q: %w", key, err)
		}
		c.Set(key, &mt)
	}
	return nil
}

// MarshalYAML emits the entries as a YAML mapping in insertion order.
func (c *Content) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range c.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(c.entries[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML reads a YAML mapping preserving key order.
func (c *Content) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("content: expected mapping, got %v", value.Kind)
	}
	c.keys = nil
	c.entries = make(map[string]*MediaType)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		var mt MediaType
		if err := value.Content[i+1].Decode(&mt); err != nil {
			return fmt.Errorf("content %q: %w", key, err)
		}
		c.Set(key, &mt)
	}
	return nil
}

// CallbackExpression associates a callback URL expression with the path
// item describing the out-of-band request.
type CallbackExpression struct {
	// Expression is the runtime callback URL expression
	Expression string

	// PathItem describes the operations issued against the expression
	PathItem *PathItem
}

// Callback is either an inline set of expression-keyed path items or a
// reference to a shared callback definition in the document components.
type Callback struct {
	// Ref references a shared component callback; when set the inline
	// expressions are ignored
	Ref string

	// Expressions are the inline expression-keyed path items, in
	// declaration order
	Expressions []CallbackExpression
}

// AddExpression appends an inline expression entry.
func (c *Callback) AddExpression(expression string, item *PathItem) {
	c.Expressions = append(c.Expressions, CallbackExpression{Expression: expression, PathItem: item})
}

// MarshalJSON emits either a $ref object or the expression map.
func (c *Callback) MarshalJSON() ([]byte, error) {
	if c.Ref != "" {
		return json.Marshal(map[string]string{"$ref": c.Ref})
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, expr := range c.Expressions {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(expr.Expression)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(expr.PathItem)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits either a $ref mapping or the expression mapping.
func (c *Callback) MarshalYAML() (interface{}, error) {
	if c.Ref != "" {
		return map[string]string{"$ref": c.Ref}, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, expr := range c.Expressions {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: expr.Expression}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(expr.PathItem); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML reads either a $ref mapping or an expression mapping.
func (c *Callback) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("callback: expected mapping, got %v", value.Kind)
	}
	c.Ref = ""
	c.Expressions = nil
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		if key == "$ref" {
			c.Ref = value.Content[i+1].Value
			continue
		}
		var item PathItem
		if err := value.Content[i+1].Decode(&item); err != nil {
			return fmt.Errorf("callback %q: %w", key, err)
		}
		c.AddExpression(key, &item)
	}
	return nil
}

// UnmarshalJSON reads either a $ref object or an expression map.
func (c *Callback) UnmarshalJSON(data []byte) error {
	c.Ref = ""
	c.Expressions = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("callback: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		if key == "$ref" {
			refTok, err := dec.Token()
			if err != nil {
				return err
			}
			if ref, ok := refTok.(string); ok {
				c.Ref = ref
			}
			continue
		}
		var item PathItem
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("callback %q: %w", key, err)
		}
		c.AddExpression(key, &item)
	}
	return nil
}

// NormalizeVerb upper-cases and trims an HTTP verb.
func NormalizeVerb(verb string) string {
	return strings.ToUpper(strings.TrimSpace(verb))
}

// RecognizedVerb reports whether the verb maps to a path item slot.
func RecognizedVerb(verb string) bool {
	switch NormalizeVerb(verb) {
	case "GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH", "TRACE":
		return true
	}
	return false
}

// PermitsRequestBody reports whether the verb may carry a request body.
func PermitsRequestBody(verb string) bool {
	switch NormalizeVerb(verb) {
	case "POST", "PUT", "PATCH", "DELETE", "OPTIONS":
		return true
	}
	return false
}

// RequiresRequestBody reports whether the verb normally carries a
// request body, which triggers body synthesis from loose parameters.
func RequiresRequestBody(verb string) bool {
	switch NormalizeVerb(verb) {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

// BoolPtr returns a pointer to the given bool. Used for the optional
// Required and Explode fields.
func BoolPtr(v bool) *bool {
	return &v
}
