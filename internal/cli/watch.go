// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/anno2spec/anno2spec/internal/config"
	"github.com/anno2spec/anno2spec/internal/openapi"
	"github.com/anno2spec/anno2spec/internal/scanner"
)

var (
	watchMode     string
	watchDebounce int
	watchOnChange string
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Watch for file changes and regenerate specification",
	Long: `Watch for file changes and automatically regenerate the OpenAPI specification.

This command monitors your source files for changes and triggers a regeneration
when files are modified. It's useful during development to keep your API
documentation in sync with your code.

Example:
  anno2spec watch                          # Watch current directory
  anno2spec watch ./src/main/java          # Watch specific paths
  anno2spec watch --debounce 1000          # Wait 1s before regenerating
  anno2spec watch --on-change "make docs"  # Run command after regeneration`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchMode, "mode", "m", "", "generation mode: full, routes-only, schemas-only")
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds")
	watchCmd.Flags().StringVar(&watchOnChange, "on-change", "", "command to run after regeneration")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if watchMode != "" {
		cfg.Generation.Mode = watchMode
	}
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}
	if watchOnChange != "" {
		cfg.Watch.OnChange = watchOnChange
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
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printVerbose("Watch configuration:")
	printVerbose("  Mode: %s", cfg.Generation.Mode)
	printVerbose("  Debounce: %dms", cfg.Watch.Debounce)
	if cfg.Watch.OnChange != "" {
		printVerbose("  On change: %s", cfg.Watch.OnChange)
	}
	printVerbose("  Paths: %s", strings.Join(paths, ", "))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := addWatchTree(watcher, path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	// Initial generation before waiting for changes.
	regenerate(cfg, paths)

	printInfo("Watching for changes in: %s", strings.Join(paths, ", "))
	printInfo("Press Ctrl+C to stop")

	debounce := time.Duration(cfg.Watch.Debounce) * time.Millisecond
	var timer *time.Timer
	var timerC <-chan time.Time

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchRelevant(event) {
				continue
			}
			// New directories need to be picked up for recursive watching.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchTree(watcher, event.Name)
				}
			}
			printVerbose("Change detected: %s", event.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			regenerate(cfg, paths)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError("watch error: %v", err)

		case <-interrupt:
			printInfo("Stopping watch")
			return nil
		}
	}
}

// addWatchTree registers a path and all its subdirectories with the watcher.
func addWatchTree(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if name != "." && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		switch name {
		case "target", "build", "node_modules":
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// watchRelevant reports whether an event should trigger regeneration.
func watchRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if scanner.IsSupportedFile(event.Name) {
		return true
	}
	// Directory events matter for recursive watching.
	info, err := os.Stat(event.Name)
	return err == nil && info.IsDir()
}

// regenerate runs the pipeline and writes the spec, reporting any errors
// without stopping the watch loop.
func regenerate(cfg *config.Config, paths []string) {
	start := time.Now()

	result, err := runPipeline(cfg, paths)
	if err != nil {
		printError("generation failed: %v", err)
		return
	}

	printDiagnostics(result.Diagnostics)

	doc := result.Document
	if cfg.Generation.Merge {
		doc, err = mergeWithExisting(cfg, doc)
		if err != nil {
			printError("merge failed: %v", err)
			return
		}
	}

	if err := openapi.NewWriter().WriteFile(doc, cfg.Output, cfg.Format); err != nil {
		printError("failed to write spec: %v", err)
		return
	}

	printInfo("Regenerated %s (%d route(s), %s)", cfg.Output, result.Routes, time.Since(start).Round(time.Millisecond))

	if cfg.Watch.OnChange != "" {
		runOnChange(cfg.Watch.OnChange)
	}
}

// runOnChange executes the configured post-regeneration command.
func runOnChange(command string) {
	printVerbose("Running: %s", command)
	cmd := exec.Command("sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		printError("on-change command failed: %v", err)
	}
}
