// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/anno2spec/anno2spec/internal/config"
)

var (
	initForce       bool
	initInteractive bool
	initTitle       string
	initVersion     string
	initDescription string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new anno2spec configuration file",
	Long: `Initialize a new anno2spec configuration file in the current directory.

This command creates an anno2spec.yaml file with sensible defaults
that you can customize for your project.

Features:
  - Infers API title from the Maven or Gradle project name
  - Detects common source root patterns
  - Sets up appropriate exclude patterns

Example:
  anno2spec init                         # Create config with detected defaults
  anno2spec init --force                 # Overwrite existing config
  anno2spec init --interactive           # Interactive mode with prompts
  anno2spec init --title "My API"        # Set custom API title`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "interactive mode with prompts")
	initCmd.Flags().StringVar(&initTitle, "title", "", "API title for OpenAPI info")
	initCmd.Flags().StringVar(&initVersion, "version", "", "API version for OpenAPI info")
	initCmd.Flags().StringVar(&initDescription, "description", "", "API description for OpenAPI info")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := "anno2spec.yaml"

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	// Determine project root
	projectRoot, err := filepath.Abs(".")
	if err != nil {
		return fmt.Errorf("failed to determine project root: %w", err)
	}

	// Create config with sensible defaults
	cfg := config.Default()

	// Detect project info from the build file
	projectInfo := detectProjectInfo(projectRoot)

	// Set API info from detection or flags
	if initTitle != "" {
		cfg.OpenAPI.Info.Title = initTitle
	} else if projectInfo.Title != "" {
		cfg.OpenAPI.Info.Title = projectInfo.Title
	}

	if initVersion != "" {
		cfg.OpenAPI.Info.Version = initVersion
	}

	if initDescription != "" {
		cfg.OpenAPI.Info.Description = initDescription
	}

	// Detect source roots based on project structure
	sourceRoots := detectSourceRoots(projectRoot)
	if len(sourceRoots) > 0 {
		cfg.Source.Paths = sourceRoots
		printVerbose("Detected source roots: %s", strings.Join(sourceRoots, ", "))
	}

	// Interactive mode
	if initInteractive && isTerminal() {
		cfg, err = interactiveInit(cfg)
		if err != nil {
			return fmt.Errorf("interactive init failed: %w", err)
		}
	}

	// Build YAML with comments
	output := buildConfigYAML(cfg)

	// Write config file
	if err := os.WriteFile(configFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Output: %s", cfg.Output)
	printVerbose("Paths: %s", strings.Join(cfg.Source.Paths, ", "))

	return nil
}

// projectInfo holds information detected from the project.
type projectInfo struct {
	Title string
	Name  string
}

// detectProjectInfo detects the project name from Maven or Gradle build files.
func detectProjectInfo(projectRoot string) projectInfo {
	info := projectInfo{}

	if name := mavenArtifactID(filepath.Join(projectRoot, "pom.xml")); name != "" {
		info.Name = name
	} else if name := gradleProjectName(filepath.Join(projectRoot, "settings.gradle")); name != "" {
		info.Name = name
	} else if name := gradleProjectName(filepath.Join(projectRoot, "settings.gradle.kts")); name != "" {
		info.Name = name
	}

	if info.Name != "" {
		title := strings.ReplaceAll(info.Name, "-", " ")
		title = strings.ReplaceAll(title, "_", " ")
		words := strings.Fields(title)
		for i, w := range words {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
		info.Title = strings.Join(words, " ") + " API"
	}

	return info
}

// mavenArtifactID reads the first artifactId from a pom.xml.
func mavenArtifactID(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "<artifactId>") && strings.HasSuffix(line, "</artifactId>") {
			return strings.TrimSuffix(strings.TrimPrefix(line, "<artifactId>"), "</artifactId>")
		}
	}
	return ""
}

// gradleProjectName reads rootProject.name from a Gradle settings file.
func gradleProjectName(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "rootProject.name") {
			continue
		}
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return ""
}

// detectSourceRoots detects common source root patterns in the project.
func detectSourceRoots(projectRoot string) []string {
	var paths []string

	// Common layouts for Java projects
	candidates := []string{
		"./src/main/java",
		"./app/src/main/java",
		"./src",
	}

	for _, candidate := range candidates {
		fullPath := filepath.Join(projectRoot, candidate)
		if stat, err := os.Stat(fullPath); err == nil && stat.IsDir() {
			paths = append(paths, candidate)
			break
		}
	}

	// If no common directories found, use current directory
	if len(paths) == 0 {
		paths = []string{"."}
	}

	return paths
}

// isTerminal checks if stdin is a terminal.
func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// interactiveInit prompts the user for configuration options.
func interactiveInit(cfg *config.Config) (*config.Config, error) {
	reader := bufio.NewReader(os.Stdin)

	// API Title
	fmt.Printf("API Title [%s]: ", cfg.OpenAPI.Info.Title)
	title, _ := reader.ReadString('\n')
	title = strings.TrimSpace(title)
	if title != "" {
		cfg.OpenAPI.Info.Title = title
	}

	// API Version
	fmt.Printf("API Version [%s]: ", cfg.OpenAPI.Info.Version)
	version, _ := reader.ReadString('\n')
	version = strings.TrimSpace(version)
	if version != "" {
		cfg.OpenAPI.Info.Version = version
	}

	// API Description
	fmt.Printf("API Description [%s]: ", cfg.OpenAPI.Info.Description)
	description, _ := reader.ReadString('\n')
	description = strings.TrimSpace(description)
	if description != "" {
		cfg.OpenAPI.Info.Description = description
	}

	// Output file
	fmt.Printf("Output file [%s]: ", cfg.Output)
	output, _ := reader.ReadString('\n')
	output = strings.TrimSpace(output)
	if output != "" {
		cfg.Output = output
	}

	// Output format
	fmt.Printf("Output format (yaml/json) [%s]: ", cfg.Format)
	format, _ := reader.ReadString('\n')
	format = strings.TrimSpace(format)
	if format != "" {
		cfg.Format = format
	}

	return cfg, nil
}

// buildConfigYAML builds a YAML config with helpful comments.
func buildConfigYAML(cfg *config.Config) string {
	// First, marshal to get the base YAML
	data, _ := yaml.Marshal(cfg)

	// Add header comment
	header := `# anno2spec configuration file
# https://github.com/anno2spec/anno2spec

`
	return header + string(data)
}
