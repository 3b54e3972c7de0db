// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package engine

import (
	"sort"
	"sync"

	"github.com/anno2spec/anno2spec/pkg/types"
)

// DefaultSpecVersion is the OpenAPI version stamped on lazily created
// documents.
const DefaultSpecVersion = "3.0.3"

// Context scopes one specification document to one compilation unit.
// Every route of the unit mutates the same document; the document is
// created on first access and retained until the pass ends.
type Context struct {
	name string
	doc  *types.OpenAPI
}

// Name returns the compilation unit name.
func (c *Context) Name() string {
	return c.name
}

// Document returns the context's specification document, creating it on
// first access.
func (c *Context) Document() *types.OpenAPI {
	if c.doc == nil {
		c.doc = &types.OpenAPI{OpenAPI: DefaultSpecVersion}
	}
	return c.doc
}

// Registry hands out one Context per compilation unit. Route processing
// within a context is sequential; the registry itself may be consulted
// from concurrent unit drivers, so lookups are locked.
type Registry struct {
	mu       sync.Mutex
	contexts map[string]*Context
}

// NewRegistry creates an empty context registry.
func NewRegistry() *Registry {
	return &Registry{contexts: make(map[string]*Context)}
}

// Context returns the context for a compilation unit, creating it on
// first access.
func (r *Registry) Context(name string) *Context {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, ok := r.contexts[name]
	if !ok {
		ctx = &Context{name: name}
		r.contexts[name] = ctx
	}
	return ctx
}

// Contexts returns every registered context ordered by name.
func (r *Registry) Contexts() []*Context {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.contexts))
	for name := range r.contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Context, len(names))
	for i, name := range names {
		out[i] = r.contexts[name]
	}
	return out
}
