// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package main is the entry point for the anno2spec CLI.
package main

import (
	"fmt"
	"os"

	"github.com/anno2spec/anno2spec/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
