// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anno2spec/anno2spec/internal/config"
)

func TestDetectProjectInfo_Maven(t *testing.T) {
	tests := []struct {
		name       string
		pomContent string
		wantTitle  string
		wantName   string
	}{
		{
			name: "simple artifact",
			pomContent: `<project>
  <groupId>com.example</groupId>
  <artifactId>petstore</artifactId>
  <version>1.0.0</version>
</project>
`,
			wantTitle: "Petstore API",
			wantName:  "petstore",
		},
		{
			name: "artifact with hyphens",
			pomContent: `<project>
  <artifactId>order-service</artifactId>
</project>
`,
			wantTitle: "Order Service API",
			wantName:  "order-service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			err := os.WriteFile(filepath.Join(tmpDir, "pom.xml"), []byte(tt.pomContent), 0644)
			require.NoError(t, err)

			info := detectProjectInfo(tmpDir)

			assert.Equal(t, tt.wantName, info.Name)
			assert.Equal(t, tt.wantTitle, info.Title)
		})
	}
}

func TestDetectProjectInfo_Gradle(t *testing.T) {
	tmpDir := t.TempDir()
	settings := `rootProject.name = "billing-service"
`
	err := os.WriteFile(filepath.Join(tmpDir, "settings.gradle"), []byte(settings), 0644)
	require.NoError(t, err)

	info := detectProjectInfo(tmpDir)

	assert.Equal(t, "billing-service", info.Name)
	assert.Equal(t, "Billing Service API", info.Title)
}

func TestDetectProjectInfo_NoBuildFile(t *testing.T) {
	tmpDir := t.TempDir()

	info := detectProjectInfo(tmpDir)

	assert.Empty(t, info.Name)
	assert.Empty(t, info.Title)
}

func TestDetectSourceRoots(t *testing.T) {
	tests := []struct {
		name     string
		dirs     []string
		expected []string
	}{
		{
			name:     "maven layout",
			dirs:     []string{"src/main/java"},
			expected: []string{"./src/main/java"},
		},
		{
			name:     "android-style app module",
			dirs:     []string{"app/src/main/java"},
			expected: []string{"./app/src/main/java"},
		},
		{
			name:     "bare src",
			dirs:     []string{"src"},
			expected: []string{"./src"},
		},
		{
			name:     "no common directories",
			dirs:     []string{"lib"},
			expected: []string{"."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			for _, dir := range tt.dirs {
				err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755)
				require.NoError(t, err)
			}

			paths := detectSourceRoots(tmpDir)

			assert.Equal(t, tt.expected, paths)
		})
	}
}

func TestDetectSourceRoots_Empty(t *testing.T) {
	tmpDir := t.TempDir()

	paths := detectSourceRoots(tmpDir)

	assert.Equal(t, []string{"."}, paths)
}

func TestBuildConfigYAML(t *testing.T) {
	cfg := config.Default()
	cfg.Output = "openapi.yaml"
	cfg.Format = "yaml"

	yaml := buildConfigYAML(cfg)

	assert.Contains(t, yaml, "# anno2spec configuration file")
	assert.Contains(t, yaml, "output: openapi.yaml")
	assert.Contains(t, yaml, "format: yaml")
}
