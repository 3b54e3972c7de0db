// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anno2spec/anno2spec/internal/config"
	"github.com/anno2spec/anno2spec/internal/openapi"
	"github.com/anno2spec/anno2spec/pkg/types"
)

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Print the OpenAPI specification to stdout",
	Long: `Print the OpenAPI specification to standard output.

If a file is provided, it will print that file. Otherwise, it will
generate and print the specification from the current source code.

This is useful for piping the output to other tools or for quick inspection.

Example:
  anno2spec print                      # Generate and print
  anno2spec print openapi.yaml         # Print existing file
  anno2spec print -f json              # Print in JSON format
  anno2spec print | jq '.paths'        # Pipe to jq for processing`,
	RunE: runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	outputFormat := format
	if outputFormat == "" {
		outputFormat = "yaml"
	}

	printVerbose("Print configuration:")
	printVerbose("  Format: %s", outputFormat)

	if len(args) > 0 {
		// Print existing file
		filePath := args[0]
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filePath, err)
		}
		fmt.Print(string(data))
		return nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Format = outputFormat

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	result, err := runPipeline(cfg, nil)
	if err != nil {
		return err
	}

	rendered, err := render(openapi.NewWriter(), result.Document, outputFormat)
	if err != nil {
		return err
	}
	fmt.Print(rendered)

	return nil
}

// render serializes a document to a string in the requested format.
func render(writer *openapi.Writer, doc *types.OpenAPI, format string) (string, error) {
	switch format {
	case "json":
		return writer.ToJSON(doc)
	default:
		return writer.ToYAML(doc)
	}
}
