// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package engine

import (
	"github.com/anno2spec/anno2spec/internal/javadoc"
	"github.com/anno2spec/anno2spec/pkg/types"
)

// unwrapRule strips one wrapper layer off a return type. Rules are
// applied in order, restarting after every hit, until none match.
type unwrapRule struct {
	match  func(types.TypeRef) bool
	unwrap func(types.TypeRef) types.TypeRef
}

// fireAndForgetTypes complete without emitting a payload.
var fireAndForgetTypes = map[string]bool{
	"Completable": true,
}

// responseWrapperTypes carry the payload as their first type argument.
var responseWrapperTypes = map[string]bool{
	"HttpResponse":   true,
	"HttpEntity":     true,
	"ResponseEntity": true,
}

// singleWrapperTypes emit exactly one value of their first type argument.
var singleWrapperTypes = map[string]bool{
	"Single":            true,
	"Mono":              true,
	"Maybe":             true,
	"CompletableFuture": true,
	"CompletionStage":   true,
}

var unwrapRules = []unwrapRule{
	{
		match: func(t types.TypeRef) bool {
			if fireAndForgetTypes[t.Name] {
				return true
			}
			return singleWrapperTypes[t.Name] && isVoid(t.FirstArg())
		},
		unwrap: func(types.TypeRef) types.TypeRef {
			return types.TypeRef{}
		},
	},
	{
		match: func(t types.TypeRef) bool { return responseWrapperTypes[t.Name] },
		unwrap: func(t types.TypeRef) types.TypeRef {
			return t.FirstArg()
		},
	},
	{
		// a single-reactive wrapper around a response wrapper unwraps
		// twice; the restart after each hit takes care of the second step
		match: func(t types.TypeRef) bool { return singleWrapperTypes[t.Name] },
		unwrap: func(t types.TypeRef) types.TypeRef {
			return t.FirstArg()
		},
	},
}

// unwrapReturnType reduces a declared return type to the payload type
// the response actually carries. A zero result means no body.
func unwrapReturnType(ref types.TypeRef) types.TypeRef {
	for {
		matched := false
		for _, rule := range unwrapRules {
			if rule.match(ref) {
				ref = rule.unwrap(ref)
				matched = true
				break
			}
		}
		if !matched {
			return ref
		}
	}
}

func isVoid(ref types.TypeRef) bool {
	return ref.Name == "void" || ref.Name == "Void"
}

// synthesizeDefaultResponse builds the single default response for an
// operation that declared none.
func (b *Builder) synthesizeDefaultResponse(doc *types.OpenAPI, op *types.Operation,
	route *types.RouteDescriptor, comment *javadoc.Comment) {

	description := ""
	if comment != nil {
		description = comment.Return
	}
	if description == "" {
		description = op.OperationID + " default response"
	}
	resp := &types.Response{Description: description}

	payload := unwrapReturnType(route.Return)
	if !payload.IsZero() && !isVoid(payload) {
		resp.Content = b.buildContent(doc, payload, route.Produces)
	}

	op.SetResponse(types.DefaultResponseKey, resp)
}
