// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package openapi provides OpenAPI document decoration, merging, diffing,
// and serialization.
package openapi

import (
	"sort"

	"github.com/anno2spec/anno2spec/internal/config"
	"github.com/anno2spec/anno2spec/pkg/types"
)

// Decorator applies configured API metadata onto a generated OpenAPI
// document. Route and schema content comes from the engine; the decorator
// contributes the parts that live in configuration: info, servers,
// top-level tags, and security schemes.
type Decorator struct {
	config *config.Config
}

// NewDecorator creates a new Decorator with the given configuration.
func NewDecorator(cfg *config.Config) *Decorator {
	return &Decorator{
		config: cfg,
	}
}

// Decorate applies the configured metadata to the document in place and
// returns it.
func (d *Decorator) Decorate(doc *types.OpenAPI) *types.OpenAPI {
	if d.config.OpenAPI.Version != "" {
		doc.OpenAPI = d.config.OpenAPI.Version
	}

	doc.Info = d.buildInfo()

	if servers := d.buildServers(); len(servers) > 0 {
		doc.Servers = servers
	}

	doc.Tags = d.mergeTags(doc.Tags)

	if len(d.config.OpenAPI.Security.Schemes) > 0 {
		doc.ComponentsInit().SecuritySchemes = d.buildSecuritySchemes()
	}

	if security := d.buildSecurity(); len(security) > 0 {
		doc.Security = security
	}

	return doc
}

// buildInfo constructs the Info object from configuration.
func (d *Decorator) buildInfo() types.Info {
	info := types.Info{
		Title:          d.config.OpenAPI.Info.Title,
		Description:    d.config.OpenAPI.Info.Description,
		TermsOfService: d.config.OpenAPI.Info.TermsOfService,
		Version:        d.config.OpenAPI.Info.Version,
	}

	if d.config.OpenAPI.Info.Contact.Name != "" ||
		d.config.OpenAPI.Info.Contact.Email != "" ||
		d.config.OpenAPI.Info.Contact.URL != "" {
		info.Contact = &types.Contact{
			Name:  d.config.OpenAPI.Info.Contact.Name,
			URL:   d.config.OpenAPI.Info.Contact.URL,
			Email: d.config.OpenAPI.Info.Contact.Email,
		}
	}

	if d.config.OpenAPI.Info.License.Name != "" {
		info.License = &types.License{
			Name: d.config.OpenAPI.Info.License.Name,
			URL:  d.config.OpenAPI.Info.License.URL,
		}
	}

	return info
}

// buildServers constructs the servers list from configuration.
func (d *Decorator) buildServers() []types.Server {
	servers := make([]types.Server, 0, len(d.config.OpenAPI.Servers))
	for _, s := range d.config.OpenAPI.Servers {
		servers = append(servers, types.Server{
			URL:         s.URL,
			Description: s.Description,
		})
	}
	return servers
}

// mergeTags combines configured tags with tag names referenced by
// operations. Configured tags come first and keep their descriptions;
// operation tags without a configured entry are appended alphabetically.
func (d *Decorator) mergeTags(existing []types.Tag) []types.Tag {
	tags := make([]types.Tag, 0, len(d.config.OpenAPI.Tags))
	seen := make(map[string]bool)
	for _, t := range d.config.OpenAPI.Tags {
		tags = append(tags, types.Tag{
			Name:        t.Name,
			Description: t.Description,
		})
		seen[t.Name] = true
	}

	extra := make([]types.Tag, 0, len(existing))
	for _, t := range existing {
		if !seen[t.Name] {
			extra = append(extra, t)
			seen[t.Name] = true
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Name < extra[j].Name })

	return append(tags, extra...)
}

// buildSecurity constructs the global security requirements.
func (d *Decorator) buildSecurity() []types.SecurityRequirement {
	if len(d.config.OpenAPI.Security.Default) == 0 {
		return nil
	}

	security := make([]types.SecurityRequirement, 0, len(d.config.OpenAPI.Security.Default))
	for _, name := range d.config.OpenAPI.Security.Default {
		security = append(security, types.SecurityRequirement{
			name: {},
		})
	}

	return security
}

// buildSecuritySchemes constructs security scheme definitions.
func (d *Decorator) buildSecuritySchemes() map[string]types.SecurityScheme {
	schemes := make(map[string]types.SecurityScheme)

	for name, cfg := range d.config.OpenAPI.Security.Schemes {
		schemes[name] = types.SecurityScheme{
			Type:         cfg.Type,
			Description:  cfg.Description,
			Name:         cfg.Name,
			In:           cfg.In,
			Scheme:       cfg.Scheme,
			BearerFormat: cfg.BearerFormat,
		}
	}

	return schemes
}

// SortedPaths returns a sorted list of path keys for deterministic output.
func SortedPaths(paths map[string]*types.PathItem) []string {
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedSchemas returns a sorted list of schema keys for deterministic output.
func SortedSchemas(schemas map[string]*types.Schema) []string {
	keys := make([]string, 0, len(schemas))
	for k := range schemas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
