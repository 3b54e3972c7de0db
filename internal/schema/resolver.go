// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"strings"

	"github.com/anno2spec/anno2spec/pkg/types"
)

// Resolver maps declared Java types onto OpenAPI schemas. Named types
// that exist in the registry become component references on the target
// document; everything else resolves structurally.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver backed by the given registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Registry returns the backing registry.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve converts a type reference into a schema, registering any
// referenced component schemas on doc. A nil result means the type
// carries no payload (void).
func (r *Resolver) Resolve(doc *types.OpenAPI, ref types.TypeRef) *types.Schema {
	if ref.IsZero() {
		return nil
	}

	name := simpleName(ref.Name)
	switch name {
	case "void", "Void":
		return nil
	case "Optional":
		inner := r.Resolve(doc, ref.FirstArg())
		if inner == nil {
			return nil
		}
		if inner.Ref != "" {
			return &types.Schema{Nullable: true, AllOf: []*types.Schema{inner}}
		}
		inner.Nullable = true
		return inner
	case "[]", "List", "Collection", "Iterable", "ArrayList", "LinkedList":
		return &types.Schema{
			Type:  "array",
			Items: r.itemSchema(doc, ref.FirstArg()),
		}
	case "Set", "HashSet", "TreeSet", "SortedSet":
		return &types.Schema{
			Type:        "array",
			UniqueItems: true,
			Items:       r.itemSchema(doc, ref.FirstArg()),
		}
	case "Map", "HashMap", "TreeMap", "SortedMap", "LinkedHashMap":
		schema := &types.Schema{Type: "object"}
		if len(ref.Args) == 2 {
			schema.AdditionalProperties = r.Resolve(doc, ref.Args[1])
		}
		return schema
	}

	if primitive := primitiveSchema(name); primitive != nil {
		return primitive
	}

	if r.registry != nil {
		if component, ok := r.registry.Get(name); ok {
			if doc != nil {
				doc.ComponentsInit()
				doc.Components.AddSchema(name, component)
			}
			return SchemaRef(name)
		}
	}

	// Unknown named type: nothing to reference, fall back to a plain
	// object so the document stays valid.
	return &types.Schema{Type: "object"}
}

func (r *Resolver) itemSchema(doc *types.OpenAPI, ref types.TypeRef) *types.Schema {
	if ref.IsZero() {
		return &types.Schema{Type: "object"}
	}
	item := r.Resolve(doc, ref)
	if item == nil {
		return &types.Schema{Type: "object"}
	}
	return item
}

// SchemaRef builds a reference schema pointing at a named component.
func SchemaRef(name string) *types.Schema {
	return &types.Schema{Ref: "#/components/schemas/" + name}
}

func primitiveSchema(name string) *types.Schema {
	switch name {
	case "String", "CharSequence", "char", "Character", "StringBuilder":
		return &types.Schema{Type: "string"}
	case "int", "Integer", "short", "Short":
		return &types.Schema{Type: "integer", Format: "int32"}
	case "long", "Long", "BigInteger":
		return &types.Schema{Type: "integer", Format: "int64"}
	case "float", "Float":
		return &types.Schema{Type: "number", Format: "float"}
	case "double", "Double", "BigDecimal":
		return &types.Schema{Type: "number", Format: "double"}
	case "boolean", "Boolean":
		return &types.Schema{Type: "boolean"}
	case "byte", "Byte":
		return &types.Schema{Type: "string", Format: "byte"}
	case "LocalDate":
		return &types.Schema{Type: "string", Format: "date"}
	case "LocalDateTime", "OffsetDateTime", "ZonedDateTime", "Instant", "Date":
		return &types.Schema{Type: "string", Format: "date-time"}
	case "LocalTime", "Duration":
		return &types.Schema{Type: "string"}
	case "UUID":
		return &types.Schema{Type: "string", Format: "uuid"}
	case "URI", "URL":
		return &types.Schema{Type: "string", Format: "uri"}
	case "Object":
		return &types.Schema{Type: "object"}
	case "byte[]":
		return &types.Schema{Type: "string", Format: "byte"}
	default:
		return nil
	}
}

func simpleName(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
