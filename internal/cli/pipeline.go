// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/anno2spec/anno2spec/internal/config"
	"github.com/anno2spec/anno2spec/internal/engine"
	"github.com/anno2spec/anno2spec/internal/extractor"
	"github.com/anno2spec/anno2spec/internal/openapi"
	"github.com/anno2spec/anno2spec/internal/placeholder"
	"github.com/anno2spec/anno2spec/internal/scanner"
	"github.com/anno2spec/anno2spec/internal/schema"
	"github.com/anno2spec/anno2spec/pkg/types"
)

// pipelineResult carries the outcome of one generation run.
type pipelineResult struct {
	// Document is the generated, decorated OpenAPI document.
	Document *types.OpenAPI

	// Diagnostics are the warnings and failures collected while
	// processing routes.
	Diagnostics []engine.Diagnostic

	// Files is the number of source files scanned.
	Files int

	// Routes is the number of routes extracted.
	Routes int

	// HasFailures reports whether any route-level failure was recorded.
	HasFailures bool
}

// runPipeline executes the full generation pipeline: scan sources, extract
// route and schema descriptors, run them through the engine, and decorate
// the resulting document with configured metadata. Route-level failures are
// collected as diagnostics, not returned as errors.
func runPipeline(cfg *config.Config, paths []string) (*pipelineResult, error) {
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}

	scn := scanner.New(scanner.Config{
		IncludePatterns: cfg.Source.Include,
		ExcludePatterns: cfg.Source.Exclude,
	})
	files, err := scn.ScanPaths(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sources: %w", err)
	}

	registry := schema.NewRegistry()
	ex := extractor.New(registry)
	defer ex.Close()

	var routes []types.RouteDescriptor
	for _, file := range files {
		extracted, err := ex.ExtractSource(file.Path, string(file.Content))
		if err != nil {
			return nil, fmt.Errorf("failed to extract %s: %w", file.Path, err)
		}
		routes = append(routes, extracted...)
	}

	collector := engine.NewCollector()
	builder := engine.NewBuilder(
		schema.NewResolver(registry),
		placeholder.NewResolver(cfg.Properties),
		collector,
	)

	contexts := engine.NewRegistry()
	ctx := contexts.Context("default")

	if cfg.Generation.Mode != "schemas-only" {
		for i := range routes {
			builder.VisitRoute(ctx, &routes[i])
		}
	}

	doc := ctx.Document()

	switch cfg.Generation.Mode {
	case "schemas-only":
		resolver := schema.NewResolver(registry)
		for _, name := range registry.Names() {
			resolver.Resolve(doc, types.TypeRef{Name: name})
		}
	case "routes-only":
		if doc.Components != nil {
			doc.Components.Schemas = nil
		}
	}

	openapi.NewDecorator(cfg).Decorate(doc)

	return &pipelineResult{
		Document:    doc,
		Diagnostics: collector.Diagnostics(),
		Files:       len(files),
		Routes:      len(routes),
		HasFailures: collector.HasFailures(),
	}, nil
}

// mergeWithExisting layers the generated document over a previously written
// spec file when merging is enabled. A missing output file is not an error.
func mergeWithExisting(cfg *config.Config, doc *types.OpenAPI) (*types.OpenAPI, error) {
	existing, err := openapi.ReadFile(cfg.Output)
	if err != nil {
		// Nothing to merge over.
		return doc, nil
	}
	return openapi.MergeDefault(existing, doc)
}

// printDiagnostics reports collected diagnostics to the user.
func printDiagnostics(diags []engine.Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case engine.SeverityError:
			printError("%s: %s", d.Location, d.Message)
		default:
			printInfo("Warning: %s: %s", d.Location, d.Message)
		}
	}
}
