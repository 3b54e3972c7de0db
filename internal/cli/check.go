// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anno2spec/anno2spec/internal/config"
	"github.com/anno2spec/anno2spec/internal/openapi"
)

// Exit codes for check command
const (
	ExitCodeMatch      = 0 // Spec matches implementation
	ExitCodeDifference = 1 // Spec differs from implementation
	ExitCodeCheckError = 2 // Error during analysis
)

var (
	checkStrict bool
	checkIgnore []string
	checkCI     bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check if spec matches current implementation",
	Long: `Check validates that your OpenAPI specification matches your current code.

This command generates a spec from your annotated sources and compares it
with the existing spec file. It's useful for CI pipelines to ensure the
spec is always in sync with the implementation. With --strict, route
processing failures also fail the check.

Exit codes:
  0  Spec matches implementation
  1  Spec differs from implementation
  2  Error during analysis

Example:
  anno2spec check                      # Basic validation
  anno2spec check --strict             # Fail on any difference (default)
  anno2spec check --ci                 # CI mode with appropriate exit codes
  anno2spec check --ignore paths       # Ignore path differences`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", true, "fail on any difference or route failure")
	checkCmd.Flags().StringSliceVar(&checkIgnore, "ignore", nil, "patterns to ignore in comparison (paths, schemas)")
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "CI mode: use exit codes for status")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = format
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}

	if err := cfg.Validate(); err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printVerbose("Check configuration:")
	printVerbose("  Strict mode: %t", checkStrict)
	printVerbose("  CI mode: %t", checkCI)
	if len(checkIgnore) > 0 {
		printVerbose("  Ignored patterns: %s", strings.Join(checkIgnore, ", "))
	}
	printVerbose("  Paths: %s", strings.Join(paths, ", "))
	printVerbose("  Spec file: %s", cfg.Output)

	if _, err := os.Stat(cfg.Output); os.IsNotExist(err) {
		printError("Spec file not found: %s", cfg.Output)
		printInfo("Run 'anno2spec generate' first to create the spec file")
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("spec file not found: %s", cfg.Output)
	}

	existingSpec, err := openapi.ReadFile(cfg.Output)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to read existing spec: %w", err)
	}

	result, err := runPipeline(cfg, paths)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to generate spec from code: %w", err)
	}

	printDiagnostics(result.Diagnostics)

	if checkStrict && result.HasFailures {
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("route processing failed")
	}

	differ := openapi.NewDiffer()
	diffResult, err := differ.Diff(existingSpec, result.Document)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to compare specs: %w", err)
	}

	diffResult = applyIgnorePatterns(diffResult, checkIgnore)

	if diffResult.IsEmpty() {
		printInfo("Spec is in sync with implementation")
		if checkCI {
			os.Exit(ExitCodeMatch)
		}
		return nil
	}

	printInfo("Spec differs from implementation:\n")
	printInfo(diffResult.Summary)
	printInfo("")

	if len(diffResult.PathChanges) > 0 {
		printInfo("Path changes:")
		for _, change := range diffResult.PathChanges {
			symbol := getChangeSymbol(change.Type)
			printInfo("  %s %s %s", symbol, change.Method, change.Path)
		}
		printInfo("")
	}

	if len(diffResult.SchemaChanges) > 0 {
		printInfo("Schema changes:")
		for _, change := range diffResult.SchemaChanges {
			symbol := getChangeSymbol(change.Type)
			printInfo("  %s %s", symbol, change.Name)
		}
		printInfo("")
	}

	if diffResult.HasBreakingChanges {
		printError("Breaking changes detected!")
	}

	printInfo("Run 'anno2spec generate' to update the spec file")

	if checkStrict || (checkCI && !diffResult.IsEmpty()) {
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("spec differs from implementation")
	}

	return nil
}

// applyIgnorePatterns filters out changes that match ignore patterns.
func applyIgnorePatterns(result *openapi.DiffResult, patterns []string) *openapi.DiffResult {
	if len(patterns) == 0 {
		return result
	}

	filtered := &openapi.DiffResult{
		PathChanges:   make([]openapi.PathChange, 0),
		SchemaChanges: make([]openapi.SchemaChange, 0),
	}

	for _, change := range result.PathChanges {
		if !matchesAnyPattern(change.Path, patterns) {
			filtered.PathChanges = append(filtered.PathChanges, change)
		}
	}

	for _, change := range result.SchemaChanges {
		if !matchesAnyPattern(change.Name, patterns) {
			filtered.SchemaChanges = append(filtered.SchemaChanges, change)
		}
	}

	for _, change := range filtered.PathChanges {
		if change.Type == openapi.DiffTypeRemoved {
			filtered.HasBreakingChanges = true
			break
		}
	}
	if !filtered.HasBreakingChanges {
		for _, change := range filtered.SchemaChanges {
			if change.Type == openapi.DiffTypeRemoved {
				filtered.HasBreakingChanges = true
				break
			}
		}
	}

	filtered.Summary = generateFilteredSummary(filtered)

	return filtered
}

// matchesAnyPattern checks if a string matches any of the given patterns.
func matchesAnyPattern(s string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, "*") {
			if strings.HasSuffix(s, pattern[1:]) {
				return true
			}
		} else if strings.HasSuffix(pattern, "*") {
			if strings.HasPrefix(s, pattern[:len(pattern)-1]) {
				return true
			}
		} else if strings.Contains(pattern, "*") {
			if matched, _ := filepath.Match(pattern, s); matched {
				return true
			}
		} else {
			if s == pattern {
				return true
			}
		}
	}
	return false
}

// generateFilteredSummary generates a summary for filtered results.
func generateFilteredSummary(result *openapi.DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected (after applying filters)"
	}

	var parts []string
	pathAdded, pathRemoved, pathModified := 0, 0, 0
	for _, c := range result.PathChanges {
		switch c.Type {
		case openapi.DiffTypeAdded:
			pathAdded++
		case openapi.DiffTypeRemoved:
			pathRemoved++
		case openapi.DiffTypeModified:
			pathModified++
		}
	}

	schemaAdded, schemaRemoved, schemaModified := 0, 0, 0
	for _, c := range result.SchemaChanges {
		switch c.Type {
		case openapi.DiffTypeAdded:
			schemaAdded++
		case openapi.DiffTypeRemoved:
			schemaRemoved++
		case openapi.DiffTypeModified:
			schemaModified++
		}
	}

	if pathAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) added", pathAdded))
	}
	if pathRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) removed", pathRemoved))
	}
	if pathModified > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) modified", pathModified))
	}
	if schemaAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d schema(s) added", schemaAdded))
	}
	if schemaRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d schema(s) removed", schemaRemoved))
	}
	if schemaModified > 0 {
		parts = append(parts, fmt.Sprintf("%d schema(s) modified", schemaModified))
	}

	summary := strings.Join(parts, ", ")
	if result.HasBreakingChanges {
		summary += " [BREAKING CHANGES DETECTED]"
	}

	return summary
}

// getChangeSymbol returns a symbol for the change type.
func getChangeSymbol(t openapi.DiffType) string {
	switch t {
	case openapi.DiffTypeAdded:
		return "+"
	case openapi.DiffTypeRemoved:
		return "-"
	case openapi.DiffTypeModified:
		return "~"
	default:
		return " "
	}
}
