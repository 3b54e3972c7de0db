// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package engine transforms route descriptors into OpenAPI operations.
// It reconciles three information sources per route: the handler's
// structural signature, explicit specification fragments, and parsed
// documentation text. Fragments win where they speak; inferred data
// fills everything they leave unset.
package engine

import (
	"fmt"

	"github.com/anno2spec/anno2spec/internal/annotation"
	"github.com/anno2spec/anno2spec/internal/javadoc"
	"github.com/anno2spec/anno2spec/internal/uritemplate"
	"github.com/anno2spec/anno2spec/pkg/types"
)

// DefaultMediaType is assumed when a route declares no consumed or
// produced media types.
const DefaultMediaType = "application/json"

// SchemaResolver resolves declared types into schemas, registering any
// named component schemas on the target document. A nil schema means the
// type carries no payload.
type SchemaResolver interface {
	Resolve(doc *types.OpenAPI, ref types.TypeRef) *types.Schema
}

// PlaceholderResolver substitutes ${...}-style properties inside path
// templates before binding.
type PlaceholderResolver interface {
	Resolve(input string) (string, error)
}

// Builder turns route descriptors into operations on context documents.
// One builder serves any number of contexts; routes within a context
// must be visited sequentially.
type Builder struct {
	schemas SchemaResolver
	props   PlaceholderResolver
	docs    *javadoc.Parser
	diags   Diagnostics
}

// NewBuilder creates a route builder over the given collaborators.
func NewBuilder(schemas SchemaResolver, props PlaceholderResolver, diags Diagnostics) *Builder {
	return &Builder{
		schemas: schemas,
		props:   props,
		docs:    javadoc.NewParser(),
		diags:   diags,
	}
}

// VisitRoute builds one operation from a route descriptor and attaches
// it to the context's document. Failures abort only this route.
func (b *Builder) VisitRoute(ctx *Context, route *types.RouteDescriptor) {
	if route.Hidden {
		return
	}
	verb := types.NormalizeVerb(route.Verb)
	if verb == "" {
		return
	}
	loc := routeLocation(route)

	controllerPath, err := b.props.Resolve(route.ControllerPath)
	if err != nil {
		b.diags.Fail(fmt.Sprintf("cannot resolve controller path %q: %v", route.ControllerPath, err), loc)
		return
	}
	methodPath, err := b.props.Resolve(route.MethodPath)
	if err != nil {
		b.diags.Fail(fmt.Sprintf("cannot resolve method path %q: %v", route.MethodPath, err), loc)
		return
	}

	template := uritemplate.Parse(controllerPath).Nest(uritemplate.Parse(methodPath))
	doc := ctx.Document()
	pathItem := doc.PathItemFor(template.Path)

	op, explicitParameters := b.seedOperation(route, loc)
	if op == nil {
		// fragment marked the handler hidden
		return
	}

	b.readTags(op, route)
	b.readSecurity(op, route, loc)
	b.readResponses(op, route, loc)
	b.readServers(op, route, loc)
	b.resolveCallbacks(doc, op, route, loc)

	comment := b.docs.Parse(route.Doc)
	if comment != nil && op.Description == "" {
		op.Description = comment.Description
		if op.Summary == "" {
			op.Summary = comment.Description
		}
	}

	pathItem.SetOperation(verb, op)

	if route.Deprecated {
		op.Deprecated = true
	}
	if op.OperationID == "" {
		op.OperationID = route.HandlerName
	}
	if len(op.Responses) == 0 {
		b.synthesizeDefaultResponse(doc, op, route, comment)
	}

	if !explicitParameters {
		if !b.classifyParameters(doc, op, route, template, comment, loc) {
			return
		}
	}
	if types.RequiresRequestBody(verb) && op.RequestBody == nil {
		b.synthesizeRequestBody(doc, op, route, template, comment)
	}
}

// seedOperation converts the explicit operation fragment into the
// operation seed, or creates an empty one. The second result reports
// whether the fragment carried a non-empty parameter list, which
// suppresses per-parameter classification outright.
func (b *Builder) seedOperation(route *types.RouteDescriptor, loc Location) (*types.Operation, bool) {
	fragment := route.OperationFragment
	if fragment == nil {
		return &types.Operation{}, false
	}
	if fragment.Bool("hidden", false) {
		return nil, false
	}

	op, err := annotation.ToOperation(fragment)
	if err != nil {
		b.diags.Warn(fmt.Sprintf("discarding operation fragment: %v", err), loc)
		return &types.Operation{}, false
	}
	return op, len(op.Parameters) > 0
}

// readTags adds declared tag names, keeping the list an ordered set.
func (b *Builder) readTags(op *types.Operation, route *types.RouteDescriptor) {
	for _, tag := range route.Tags {
		if tag == "" || containsString(op.Tags, tag) {
			continue
		}
		op.AddTag(tag)
	}
}

func (b *Builder) readSecurity(op *types.Operation, route *types.RouteDescriptor, loc Location) {
	for _, fragment := range route.SecurityFragments {
		req, err := annotation.ToSecurityRequirement(fragment)
		if err != nil {
			b.diags.Warn(fmt.Sprintf("discarding security fragment: %v", err), loc)
			continue
		}
		op.AddSecurity(req)
	}
}

// readResponses converts explicit response fragments. Their presence
// replaces the responses map outright; default-response synthesis only
// runs when no responses exist at all.
func (b *Builder) readResponses(op *types.Operation, route *types.RouteDescriptor, loc Location) {
	for _, fragment := range route.ResponseFragments {
		resp, err := annotation.ToResponse(fragment)
		if err != nil {
			b.diags.Warn(fmt.Sprintf("discarding response fragment: %v", err), loc)
			continue
		}
		code := fragment.String("responseCode")
		if code == "" {
			code = types.DefaultResponseKey
		}
		op.SetResponse(code, resp)
	}
}

func (b *Builder) readServers(op *types.Operation, route *types.RouteDescriptor, loc Location) {
	for _, fragment := range route.ServerFragments {
		server, err := annotation.ToServer(fragment)
		if err != nil {
			b.diags.Warn(fmt.Sprintf("discarding server fragment: %v", err), loc)
			continue
		}
		op.AddServer(server)
	}
}

// mediaTypes returns the declared list or the default.
func mediaTypes(declared []string) []string {
	if len(declared) == 0 {
		return []string{DefaultMediaType}
	}
	return declared
}

// buildContent resolves one schema per media type. Each entry resolves
// independently so repeated builds yield structurally equal schemas.
func (b *Builder) buildContent(doc *types.OpenAPI, ref types.TypeRef, declared []string) *types.Content {
	content := types.NewContent()
	for _, mediaType := range mediaTypes(declared) {
		mt := &types.MediaType{}
		if schema := b.schemas.Resolve(doc, ref); schema != nil {
			mt.Schema = schema
		}
		content.Set(mediaType, mt)
	}
	return content
}

func routeLocation(route *types.RouteDescriptor) Location {
	element := route.HandlerName
	if route.ControllerName != "" {
		element = route.ControllerName + "." + route.HandlerName
	}
	return Location{File: route.SourceFile, Line: route.SourceLine, Element: element}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
