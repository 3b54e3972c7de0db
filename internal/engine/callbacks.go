// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package engine

import (
	"fmt"

	"github.com/anno2spec/anno2spec/internal/annotation"
	"github.com/anno2spec/anno2spec/pkg/types"
)

// resolveCallbacks attaches one callback per named declaration. An
// inline URL expression builds a path item carrying the declared nested
// operations; without an expression the name must match a shared
// component callback, which is attached by reference. A name matching
// nothing produces no entry.
func (b *Builder) resolveCallbacks(doc *types.OpenAPI, op *types.Operation,
	route *types.RouteDescriptor, loc Location) {

	for _, fragment := range route.CallbackFragments {
		name := fragment.String("name")
		if name == "" {
			continue
		}

		expression := fragment.String("callbackUrlExpression")
		if expression == "" {
			if sharedCallbackExists(doc, name) {
				op.AddCallback(name, &types.Callback{Ref: "#/components/callbacks/" + name})
			}
			continue
		}

		item := &types.PathItem{}
		for _, opFragment := range fragment.Fragments("operation") {
			nested, err := annotation.ToOperation(opFragment)
			if err != nil {
				b.diags.Warn(fmt.Sprintf("discarding callback operation in %q: %v", name, err), loc)
				continue
			}
			// unrecognized verbs drop this nested operation only
			item.SetOperation(opFragment.String("method"), nested)
		}

		callback := &types.Callback{}
		callback.AddExpression(expression, item)
		op.AddCallback(name, callback)
	}
}

func sharedCallbackExists(doc *types.OpenAPI, name string) bool {
	if doc.Components == nil {
		return false
	}
	_, ok := doc.Components.Callbacks[name]
	return ok
}
