// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anno2spec/anno2spec/internal/config"
	"github.com/anno2spec/anno2spec/internal/openapi"
)

var (
	generateMode    string
	generateMerge   bool
	generateDryRun  bool
	generateInclude []string
	generateExclude []string
)

var generateCmd = &cobra.Command{
	Use:   "generate [paths...]",
	Short: "Generate OpenAPI specification from annotated source code",
	Long: `Generate an OpenAPI specification by analyzing annotated Java
controllers.

The generate command scans your source files, extracts routing and
OpenAPI annotations, and produces an OpenAPI 3.0/3.1 specification
document.

Modes:
  full         Generate complete spec with routes and schemas (default)
  routes-only  Generate only route definitions
  schemas-only Generate only schema definitions

Example:
  anno2spec generate                           # Generate from current directory
  anno2spec generate ./src/main/java           # Generate from specific paths
  anno2spec generate --mode routes-only        # Generate routes only
  anno2spec generate --merge                   # Merge with existing spec
  anno2spec generate --dry-run                 # Preview without writing`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "", "generation mode: full, routes-only, schemas-only")
	generateCmd.Flags().BoolVar(&generateMerge, "merge", false, "merge with existing spec file")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "preview output without writing to file")
	generateCmd.Flags().StringSliceVarP(&generateInclude, "include", "i", nil, "glob patterns to include")
	generateCmd.Flags().StringSliceVarP(&generateExclude, "exclude", "e", nil, "glob patterns to exclude")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyGenerateOverrides(cfg)

	paths := args
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printVerbose("Configuration:")
	printVerbose("  Mode: %s", cfg.Generation.Mode)
	printVerbose("  Output: %s", cfg.Output)
	printVerbose("  Format: %s", cfg.Format)
	printVerbose("  Paths: %s", strings.Join(paths, ", "))

	result, err := runPipeline(cfg, paths)
	if err != nil {
		return err
	}

	printDiagnostics(result.Diagnostics)
	printVerbose("Scanned %d file(s), extracted %d route(s)", result.Files, result.Routes)

	doc := result.Document
	if cfg.Generation.Merge {
		doc, err = mergeWithExisting(cfg, doc)
		if err != nil {
			return fmt.Errorf("failed to merge with existing spec: %w", err)
		}
	}

	writer := openapi.NewWriter()

	if generateDryRun {
		printInfo("Dry run mode - no files will be written")
		rendered, err := render(writer, doc, cfg.Format)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
		return nil
	}

	if err := writer.WriteFile(doc, cfg.Output, cfg.Format); err != nil {
		return fmt.Errorf("failed to write spec: %w", err)
	}

	printInfo("Wrote %s", cfg.Output)
	return nil
}

// applyGenerateOverrides layers generate command flags over the config.
func applyGenerateOverrides(cfg *config.Config) {
	if generateMode != "" {
		cfg.Generation.Mode = generateMode
	}
	if generateMerge {
		cfg.Generation.Merge = true
	}
	if len(generateInclude) > 0 {
		cfg.Source.Include = generateInclude
	}
	if len(generateExclude) > 0 {
		cfg.Source.Exclude = generateExclude
	}
	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = format
	}
}
