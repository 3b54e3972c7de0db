// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"github.com/anno2spec/anno2spec/pkg/types"
)

// MergeStrategy defines how to handle conflicts during merge.
type MergeStrategy string

const (
	// MergeStrategyKeepExisting keeps the existing value on conflict.
	MergeStrategyKeepExisting MergeStrategy = "keep-existing"

	// MergeStrategyOverwrite overwrites with the generated value on conflict.
	MergeStrategyOverwrite MergeStrategy = "overwrite"
)

// MergeOptions configures the merge behavior.
type MergeOptions struct {
	// Strategy defines how conflicting paths and schemas are resolved.
	Strategy MergeStrategy

	// PreservePaths keeps existing paths that the generator did not produce.
	PreservePaths bool

	// PreserveSchemas keeps existing component schemas the generator did not produce.
	PreserveSchemas bool

	// PreserveInfo preserves info from the existing document.
	PreserveInfo bool

	// PreserveServers preserves servers from the existing document.
	PreserveServers bool

	// PreserveTags preserves tags from the existing document.
	PreserveTags bool

	// PreserveSecurity preserves global security from the existing document.
	PreserveSecurity bool
}

// DefaultMergeOptions returns the default merge options.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		Strategy:         MergeStrategyOverwrite,
		PreservePaths:    true,
		PreserveSchemas:  true,
		PreserveInfo:     true,
		PreserveServers:  true,
		PreserveTags:     true,
		PreserveSecurity: true,
	}
}

// Merger combines a freshly generated OpenAPI document with a previously
// written one so that hand-maintained parts of the file survive regeneration.
type Merger struct {
	options MergeOptions
}

// NewMerger creates a new Merger with the given options.
func NewMerger(options MergeOptions) *Merger {
	return &Merger{
		options: options,
	}
}

// Merge combines an existing OpenAPI document with a generated one. The
// generated document is the base; pieces of the existing document are layered
// back in according to the options. Neither input is modified.
func (m *Merger) Merge(existing, generated *types.OpenAPI) (*types.OpenAPI, error) {
	if existing == nil {
		return generated, nil
	}
	if generated == nil {
		return existing, nil
	}

	result := *generated

	if m.options.PreserveInfo && existing.Info.Title != "" {
		result.Info = existing.Info
	}

	if m.options.PreserveServers && len(existing.Servers) > 0 {
		result.Servers = existing.Servers
	}

	if m.options.PreserveTags && len(existing.Tags) > 0 {
		result.Tags = mergeTags(existing.Tags, generated.Tags)
	}

	if m.options.PreserveSecurity && len(existing.Security) > 0 {
		result.Security = existing.Security
	}

	if m.options.PreservePaths {
		result.Paths = m.mergePaths(existing.Paths, generated.Paths)
	}

	result.Components = m.mergeComponents(existing.Components, generated.Components)

	return &result, nil
}

// mergePaths layers existing path items under the generated ones. Paths the
// generator no longer produces are kept; conflicting paths follow the
// strategy.
func (m *Merger) mergePaths(existing, generated map[string]*types.PathItem) map[string]*types.PathItem {
	if len(existing) == 0 {
		return generated
	}

	merged := make(map[string]*types.PathItem, len(existing)+len(generated))
	for path, item := range existing {
		merged[path] = item
	}
	for path, item := range generated {
		if _, conflict := merged[path]; conflict && m.options.Strategy == MergeStrategyKeepExisting {
			continue
		}
		merged[path] = item
	}
	return merged
}

// mergeComponents keeps existing component entries that the generator did not
// produce. Generated entries win conflicts unless the strategy keeps existing.
func (m *Merger) mergeComponents(existing, generated *types.Components) *types.Components {
	if existing == nil {
		return generated
	}
	if generated == nil {
		return existing
	}

	merged := *generated

	if m.options.PreserveSchemas {
		merged.Schemas = mergeMap(existing.Schemas, generated.Schemas, m.options.Strategy)
	}
	merged.Responses = mergeMap(existing.Responses, generated.Responses, m.options.Strategy)
	merged.Parameters = mergeMap(existing.Parameters, generated.Parameters, m.options.Strategy)
	merged.RequestBodies = mergeMap(existing.RequestBodies, generated.RequestBodies, m.options.Strategy)
	merged.Headers = mergeMap(existing.Headers, generated.Headers, m.options.Strategy)
	merged.SecuritySchemes = mergeMap(existing.SecuritySchemes, generated.SecuritySchemes, m.options.Strategy)
	merged.Callbacks = mergeMap(existing.Callbacks, generated.Callbacks, m.options.Strategy)

	return &merged
}

// mergeTags keeps existing tags and appends generated tags not already named.
func mergeTags(existing, generated []types.Tag) []types.Tag {
	seen := make(map[string]bool, len(existing))
	merged := make([]types.Tag, 0, len(existing)+len(generated))
	for _, tag := range existing {
		seen[tag.Name] = true
		merged = append(merged, tag)
	}
	for _, tag := range generated {
		if !seen[tag.Name] {
			merged = append(merged, tag)
		}
	}
	return merged
}

func mergeMap[V any](existing, generated map[string]V, strategy MergeStrategy) map[string]V {
	if len(existing) == 0 {
		return generated
	}

	merged := make(map[string]V, len(existing)+len(generated))
	for name, value := range existing {
		merged[name] = value
	}
	for name, value := range generated {
		if _, conflict := merged[name]; conflict && strategy == MergeStrategyKeepExisting {
			continue
		}
		merged[name] = value
	}
	return merged
}

// MergeDefault merges two documents using default options.
func MergeDefault(existing, generated *types.OpenAPI) (*types.OpenAPI, error) {
	merger := NewMerger(DefaultMergeOptions())
	return merger.Merge(existing, generated)
}
