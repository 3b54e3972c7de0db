// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anno2spec/anno2spec/internal/config"
	"github.com/anno2spec/anno2spec/internal/openapi"
	"github.com/anno2spec/anno2spec/pkg/types"
)

var diffCmd = &cobra.Command{
	Use:   "diff [file1] [file2]",
	Short: "Compare two OpenAPI specifications",
	Long: `Compare two OpenAPI specifications and show the differences.

If only one file is provided, it will be compared against the generated
specification from the current source code.

If no files are provided, the existing spec file will be compared against
what would be generated from the current source code.

Example:
  anno2spec diff                           # Compare current vs generated
  anno2spec diff openapi.yaml              # Compare file vs generated
  anno2spec diff old.yaml new.yaml         # Compare two files`,
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("too many arguments: expected at most 2 files")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var a, b *types.OpenAPI

	switch len(args) {
	case 2:
		printVerbose("Comparing %s against %s", args[0], args[1])
		if a, err = openapi.ReadFile(args[0]); err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if b, err = openapi.ReadFile(args[1]); err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}

	case 1:
		printVerbose("Comparing %s against generated spec", args[0])
		if a, err = openapi.ReadFile(args[0]); err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if b, err = generateForDiff(cfg); err != nil {
			return err
		}

	default:
		printVerbose("Comparing %s against generated spec", cfg.Output)
		if a, err = openapi.ReadFile(cfg.Output); err != nil {
			return fmt.Errorf("failed to read %s: %w", cfg.Output, err)
		}
		if b, err = generateForDiff(cfg); err != nil {
			return err
		}
	}

	result, err := openapi.NewDiffer().Diff(a, b)
	if err != nil {
		return fmt.Errorf("failed to compare specs: %w", err)
	}

	fmt.Print(openapi.FormatDiff(result))
	return nil
}

// generateForDiff runs the pipeline and returns the generated document.
func generateForDiff(cfg *config.Config) (*types.OpenAPI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	result, err := runPipeline(cfg, nil)
	if err != nil {
		return nil, err
	}
	printDiagnostics(result.Diagnostics)
	return result.Document, nil
}
