// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package engine

import (
	"fmt"

	"github.com/anno2spec/anno2spec/internal/annotation"
	"github.com/anno2spec/anno2spec/internal/javadoc"
	"github.com/anno2spec/anno2spec/internal/uritemplate"
	"github.com/anno2spec/anno2spec/pkg/types"
)

// bodyFromParameter builds the request body from a parameter explicitly
// declared to carry the whole body.
func (b *Builder) bodyFromParameter(doc *types.OpenAPI, route *types.RouteDescriptor,
	param *types.ParameterDescriptor, comment *javadoc.Comment, loc Location) *types.RequestBody {

	body := &types.RequestBody{}
	if param.BodyFragment != nil {
		converted, err := annotation.ToRequestBody(param.BodyFragment)
		if err != nil {
			b.diags.Warn(fmt.Sprintf("discarding request body fragment for %q: %v", param.Name, err), loc)
		} else {
			body = converted
		}
	}

	if body.Content.Len() == 0 {
		body.Content = b.buildContent(doc, param.Type, route.Consumes)
	}
	if body.Required == nil {
		body.Required = types.BoolPtr(!param.Nullable && !isOptionalWrapper(param.Type))
	}
	if body.Description == "" {
		body.Description = comment.ParamDescription(param.Name)
	}
	return body
}

// synthesizeRequestBody builds a request body from the loose parameters
// of a body-requiring route: one object schema per consumed media type,
// with one property per candidate parameter. Having no candidates is not
// an error; the operation simply keeps no body.
func (b *Builder) synthesizeRequestBody(doc *types.OpenAPI, op *types.Operation,
	route *types.RouteDescriptor, template *uritemplate.Template, comment *javadoc.Comment) {

	variables := template.VariableMap()
	var candidates []*types.ParameterDescriptor
	for i := range route.Parameters {
		param := &route.Parameters[i]
		if looseParameter(param, variables) {
			candidates = append(candidates, param)
		}
	}
	if len(candidates) == 0 {
		return
	}

	content := types.NewContent()
	for _, mediaType := range mediaTypes(route.Consumes) {
		schema := &types.Schema{Type: "object"}
		for _, param := range candidates {
			schema.SetProperty(param.Name, b.propertySchema(doc, param, comment))
		}
		content.Set(mediaType, &types.MediaType{Schema: schema})
	}

	op.RequestBody = &types.RequestBody{
		Required: types.BoolPtr(true),
		Content:  content,
	}
}

// looseParameter reports whether a parameter belongs in a synthesized
// body: nothing binds it anywhere else and nothing excludes it.
func looseParameter(param *types.ParameterDescriptor, variables map[string]types.PathVariable) bool {
	if param.Hidden || param.IgnoreSerialization || ignoredType(param.Type) {
		return false
	}
	if param.HasBindingOverride() {
		return false
	}
	if param.ParameterFragment.Bool("hidden", false) {
		return false
	}
	_, bound := variables[param.Name]
	return !bound
}

// propertySchema resolves one candidate parameter into a body property,
// copying its nullability and documentation text.
func (b *Builder) propertySchema(doc *types.OpenAPI, param *types.ParameterDescriptor, comment *javadoc.Comment) *types.Schema {
	schema := b.schemas.Resolve(doc, param.Type)
	if schema == nil {
		schema = &types.Schema{}
	}
	if param.Nullable {
		if schema.Ref != "" {
			schema = &types.Schema{AllOf: []*types.Schema{schema}}
		}
		schema.Nullable = true
	}
	if desc := comment.ParamDescription(param.Name); desc != "" && schema.Ref == "" && schema.Description == "" {
		schema.Description = desc
	}
	return schema
}

func isOptionalWrapper(ref types.TypeRef) bool {
	return ref.Name == "Optional" || ref.Name == "java.util.Optional"
}
