// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package annotation converts declarative specification fragments into
// document objects. Fragments are key/value trees; a conversion reads
// only the keys that are present, so partially specified fragments
// produce partially populated documents.
package annotation

import (
	"fmt"
	"strconv"

	"github.com/anno2spec/anno2spec/pkg/types"
)

// ConversionError reports a fragment that could not be converted into a
// document object. The engine downgrades it to a warning and keeps
// building from inferred data.
type ConversionError struct {
	Kind string
	Key  string
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("cannot convert %s fragment: key %q: %v", e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("cannot convert %s fragment: %v", e.Kind, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func conversionErr(kind, key string, err error) error {
	return &ConversionError{Kind: kind, Key: key, Err: err}
}

// ToOperation converts an explicit operation fragment into an operation
// document seed.
func ToOperation(f types.Fragment) (*types.Operation, error) {
	op := &types.Operation{
		OperationID: f.String("operationId"),
		Summary:     f.String("summary"),
		Description: f.String("description"),
		Deprecated:  f.Bool("deprecated", false),
		Tags:        f.StringList("tags"),
	}

	for _, pf := range f.Fragments("parameters") {
		param, err := ToParameter(pf)
		if err != nil {
			return nil, err
		}
		op.Parameters = append(op.Parameters, param)
	}

	if rb := f.Fragment("requestBody"); rb != nil {
		body, err := ToRequestBody(rb)
		if err != nil {
			return nil, err
		}
		op.RequestBody = body
	}

	for _, rf := range f.Fragments("responses") {
		code := rf.String("responseCode")
		if code == "" {
			code = types.DefaultResponseKey
		}
		resp, err := ToResponse(rf)
		if err != nil {
			return nil, err
		}
		op.SetResponse(code, resp)
	}

	for _, sf := range f.Fragments("security") {
		req, err := ToSecurityRequirement(sf)
		if err != nil {
			return nil, err
		}
		op.AddSecurity(req)
	}

	for _, sf := range f.Fragments("servers") {
		server, err := ToServer(sf)
		if err != nil {
			return nil, err
		}
		op.AddServer(server)
	}

	return op, nil
}

// ToParameter converts a parameter fragment into a fresh parameter
// document.
func ToParameter(f types.Fragment) (*types.Parameter, error) {
	param := &types.Parameter{}
	if err := ApplyParameter(param, f); err != nil {
		return nil, err
	}
	return param, nil
}

// ApplyParameter merges a parameter fragment onto an existing parameter
// document. Only keys present in the fragment overwrite fields; every
// other field keeps its derived value.
func ApplyParameter(target *types.Parameter, f types.Fragment) error {
	if f.Has("name") {
		target.Name = f.String("name")
	}
	if f.Has("in") {
		target.In = f.String("in")
	}
	if f.Has("description") {
		target.Description = f.String("description")
	}
	if f.Has("required") {
		target.Required = types.BoolPtr(f.Bool("required", false))
	}
	if f.Has("deprecated") {
		target.Deprecated = f.Bool("deprecated", false)
	}
	if f.Has("allowEmptyValue") {
		target.AllowEmptyValue = f.Bool("allowEmptyValue", false)
	}
	if f.Has("style") {
		target.Style = f.String("style")
	}
	if f.Has("explode") {
		target.Explode = types.BoolPtr(f.Bool("explode", false))
	}
	if f.Has("example") {
		target.Example = f["example"]
	}
	if f.Has("schema") {
		schemaFragment := f.Fragment("schema")
		if schemaFragment == nil {
			return conversionErr("parameter", "schema", fmt.Errorf("expected a nested fragment"))
		}
		schema := target.Schema
		if schema == nil {
			schema = &types.Schema{}
			target.Schema = schema
		}
		BindSchema(schema, schemaFragment)
	}
	return nil
}

// ToRequestBody converts a request body fragment into a request body
// document.
func ToRequestBody(f types.Fragment) (*types.RequestBody, error) {
	body := &types.RequestBody{
		Description: f.String("description"),
	}
	if f.Has("required") {
		body.Required = types.BoolPtr(f.Bool("required", false))
	}

	content, err := toContent(f)
	if err != nil {
		return nil, err
	}
	body.Content = content
	return body, nil
}

// ToResponse converts a response fragment into a response document.
func ToResponse(f types.Fragment) (*types.Response, error) {
	resp := &types.Response{
		Description: f.String("description"),
	}
	content, err := toContent(f)
	if err != nil {
		return nil, err
	}
	resp.Content = content
	return resp, nil
}

// toContent reads the "content" entries of a body-carrying fragment.
func toContent(f types.Fragment) (*types.Content, error) {
	fragments := f.Fragments("content")
	if len(fragments) == 0 {
		return nil, nil
	}

	content := types.NewContent()
	for _, cf := range fragments {
		mediaType := cf.String("mediaType")
		if mediaType == "" {
			mediaType = "application/json"
		}
		mt := &types.MediaType{}
		if sf := cf.Fragment("schema"); sf != nil {
			schema := &types.Schema{}
			BindSchema(schema, sf)
			mt.Schema = schema
		}
		content.Set(mediaType, mt)
	}
	return content, nil
}

// ToServer converts a server fragment.
func ToServer(f types.Fragment) (types.Server, error) {
	if !f.Has("url") {
		return types.Server{}, conversionErr("server", "url", fmt.Errorf("missing"))
	}
	return types.Server{
		URL:         f.String("url"),
		Description: f.String("description"),
	}, nil
}

// ToSecurityRequirement converts a security requirement fragment.
func ToSecurityRequirement(f types.Fragment) (types.SecurityRequirement, error) {
	name := f.String("name")
	if name == "" {
		return nil, conversionErr("security requirement", "name", fmt.Errorf("missing"))
	}
	scopes := f.StringList("scopes")
	if scopes == nil {
		scopes = []string{}
	}
	return types.SecurityRequirement{name: scopes}, nil
}

// BindSchema applies a schema override fragment onto a schema document.
// Only keys present in the fragment are bound.
func BindSchema(schema *types.Schema, f types.Fragment) {
	if f.Has("type") {
		schema.Type = f.String("type")
	}
	if f.Has("format") {
		schema.Format = f.String("format")
	}
	if f.Has("title") {
		schema.Title = f.String("title")
	}
	if f.Has("description") {
		schema.Description = f.String("description")
	}
	if f.Has("nullable") {
		schema.Nullable = f.Bool("nullable", false)
	}
	if f.Has("deprecated") {
		schema.Deprecated = f.Bool("deprecated", false)
	}
	if f.Has("pattern") {
		schema.Pattern = f.String("pattern")
	}
	if f.Has("example") {
		schema.Example = f["example"]
	}
	if f.Has("defaultValue") {
		schema.Default = f["defaultValue"]
	}
	if f.Has("allowableValues") {
		schema.Enum = f.List("allowableValues")
	}
	if f.Has("minLength") {
		if n, ok := intValue(f["minLength"]); ok {
			schema.MinLength = &n
		}
	}
	if f.Has("maxLength") {
		if n, ok := intValue(f["maxLength"]); ok {
			schema.MaxLength = &n
		}
	}
	if f.Has("minimum") {
		if n, ok := floatValue(f["minimum"]); ok {
			schema.Minimum = &n
		}
	}
	if f.Has("maximum") {
		if n, ok := floatValue(f["maximum"]); ok {
			schema.Maximum = &n
		}
	}
}

func intValue(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func floatValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
