// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anno2spec/anno2spec/internal/config"
	"github.com/anno2spec/anno2spec/pkg/types"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.OpenAPI.Info.Title = "Pet Store"
	cfg.OpenAPI.Info.Version = "1.2.3"
	cfg.OpenAPI.Info.Description = "Manages pets"
	return cfg
}

func TestDecorate_AppliesInfo(t *testing.T) {
	doc := &types.OpenAPI{OpenAPI: "3.0.3"}

	result := NewDecorator(testConfig()).Decorate(doc)

	assert.Equal(t, "Pet Store", result.Info.Title)
	assert.Equal(t, "1.2.3", result.Info.Version)
	assert.Equal(t, "Manages pets", result.Info.Description)
	assert.Nil(t, result.Info.Contact)
	assert.Nil(t, result.Info.License)
}

func TestDecorate_ContactAndLicense(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAPI.Info.Contact.Name = "API Team"
	cfg.OpenAPI.Info.Contact.Email = "api@example.com"
	cfg.OpenAPI.Info.License.Name = "Apache 2.0"
	cfg.OpenAPI.Info.License.URL = "https://www.apache.org/licenses/LICENSE-2.0"

	result := NewDecorator(cfg).Decorate(&types.OpenAPI{})

	require.NotNil(t, result.Info.Contact)
	assert.Equal(t, "API Team", result.Info.Contact.Name)
	assert.Equal(t, "api@example.com", result.Info.Contact.Email)
	require.NotNil(t, result.Info.License)
	assert.Equal(t, "Apache 2.0", result.Info.License.Name)
}

func TestDecorate_Version(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAPI.Version = "3.1.0"

	result := NewDecorator(cfg).Decorate(&types.OpenAPI{OpenAPI: "3.0.3"})

	assert.Equal(t, "3.1.0", result.OpenAPI)
}

func TestDecorate_Servers(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAPI.Servers = []config.ServerConfig{
		{URL: "https://api.example.com", Description: "Production"},
		{URL: "https://staging.example.com", Description: "Staging"},
	}

	result := NewDecorator(cfg).Decorate(&types.OpenAPI{})

	require.Len(t, result.Servers, 2)
	assert.Equal(t, "https://api.example.com", result.Servers[0].URL)
	assert.Equal(t, "Staging", result.Servers[1].Description)
}

func TestDecorate_MergesTags(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAPI.Tags = []config.TagConfig{
		{Name: "Pets", Description: "Pet management"},
	}

	doc := &types.OpenAPI{
		Tags: []types.Tag{
			{Name: "Pets"},
			{Name: "Owners"},
			{Name: "Billing"},
		},
	}

	result := NewDecorator(cfg).Decorate(doc)

	require.Len(t, result.Tags, 3)
	assert.Equal(t, "Pets", result.Tags[0].Name)
	assert.Equal(t, "Pet management", result.Tags[0].Description)
	// Unconfigured tags follow, alphabetically.
	assert.Equal(t, "Billing", result.Tags[1].Name)
	assert.Equal(t, "Owners", result.Tags[2].Name)
}

func TestDecorate_SecuritySchemes(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAPI.Security.Schemes = map[string]config.SecuritySchemeConfig{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
		"apiKey": {
			Type: "apiKey",
			Name: "X-API-Key",
			In:   "header",
		},
	}
	cfg.OpenAPI.Security.Default = []string{"bearerAuth"}

	result := NewDecorator(cfg).Decorate(&types.OpenAPI{})

	require.NotNil(t, result.Components)
	require.Len(t, result.Components.SecuritySchemes, 2)
	assert.Equal(t, "JWT", result.Components.SecuritySchemes["bearerAuth"].BearerFormat)
	assert.Equal(t, "X-API-Key", result.Components.SecuritySchemes["apiKey"].Name)

	require.Len(t, result.Security, 1)
	assert.Contains(t, result.Security[0], "bearerAuth")
}

func TestDecorate_PreservesGeneratedContent(t *testing.T) {
	doc := &types.OpenAPI{
		Paths: map[string]*types.PathItem{
			"/pets": {Get: &types.Operation{OperationID: "listPets"}},
		},
	}
	doc.ComponentsInit().AddSchema("Pet", &types.Schema{Type: "object"})

	result := NewDecorator(testConfig()).Decorate(doc)

	assert.Contains(t, result.Paths, "/pets")
	assert.Contains(t, result.Components.Schemas, "Pet")
}

func TestSortedPaths(t *testing.T) {
	paths := map[string]*types.PathItem{
		"/pets/{id}": {},
		"/owners":    {},
		"/pets":      {},
	}

	assert.Equal(t, []string{"/owners", "/pets", "/pets/{id}"}, SortedPaths(paths))
}

func TestSortedSchemas(t *testing.T) {
	schemas := map[string]*types.Schema{
		"Pet":   {},
		"Owner": {},
	}

	assert.Equal(t, []string{"Owner", "Pet"}, SortedSchemas(schemas))
}
