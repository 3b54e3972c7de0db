// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types provides the OpenAPI document model and the route
// descriptor model produced by metadata extraction.
package types

// OpenAPI represents a complete OpenAPI 3.0/3.1 specification document.
// One instance exists per compilation context; it is created lazily when
// the first route of the context is processed and mutated in place by
// every subsequent route.
type OpenAPI struct {
	// OpenAPI is the OpenAPI specification version (e.g., "3.0.3", "3.1.0")
	OpenAPI string `json:"openapi" yaml:"openapi"`

	// Info provides metadata about the API
	Info Info `json:"info" yaml:"info"`

	// Servers is a list of server objects
	Servers []Server `json:"servers,omitempty" yaml:"servers,omitempty"`

	// Paths holds the available paths and operations
	Paths map[string]*PathItem `json:"paths,omitempty" yaml:"paths,omitempty"`

	// Components holds reusable objects, including shared callbacks
	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`

	// Security is a list of global security requirements
	Security []SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`

	// Tags is a list of tags used by the specification
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`

	// ExternalDocs provides external documentation
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// PathItemFor returns the path item for the given path, creating it on
// first access.
func (o *OpenAPI) PathItemFor(path string) *PathItem {
	if o.Paths == nil {
		o.Paths = make(map[string]*PathItem)
	}
	item, ok := o.Paths[path]
	if !ok {
		item = &PathItem{}
		o.Paths[path] = item
	}
	return item
}

// ComponentsInit returns the document components, creating them on first
// access.
func (o *OpenAPI) ComponentsInit() *Components {
	if o.Components == nil {
		o.Components = &Components{}
	}
	return o.Components
}

// SecurityRequirement maps a security scheme name to the scopes it needs.
type SecurityRequirement map[string][]string

// Info provides metadata about the API.
type Info struct {
	// Title is the title of the API
	Title string `json:"title" yaml:"title"`

	// Description is a description of the API
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// TermsOfService is a URL to the Terms of Service
	TermsOfService string `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`

	// Contact provides contact information
	Contact *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`

	// License provides license information
	License *License `json:"license,omitempty" yaml:"license,omitempty"`

	// Version is the version of the API
	Version string `json:"version" yaml:"version"`
}

// Contact provides contact information.
type Contact struct {
	// Name is the name of the contact
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// URL is the URL of the contact
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Email is the email of the contact
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License provides license information.
type License struct {
	// Name is the name of the license
	Name string `json:"name" yaml:"name"`

	// URL is the URL of the license
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Server represents an API server.
type Server struct {
	// URL is the URL of the server
	URL string `json:"url" yaml:"url"`

	// Description is a description of the server
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Variables are server variables
	Variables map[string]ServerVariable `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// ServerVariable represents a server variable.
type ServerVariable struct {
	// Enum is a list of allowed values
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Default is the default value
	Default string `json:"default" yaml:"default"`

	// Description is a description of the variable
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem represents one API path and the operations bound to it.
type PathItem struct {
	// Ref is a reference to another path item
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	// Summary is a brief summary
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Description is a detailed description
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Get is the GET operation
	Get *Operation `json:"get,omitempty" yaml:"get,omitempty"`

	// Put is the PUT operation
	Put *Operation `json:"put,omitempty" yaml:"put,omitempty"`

	// Post is the POST operation
	Post *Operation `json:"post,omitempty" yaml:"post,omitempty"`

	// Delete is the DELETE operation
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`

	// Options is the OPTIONS operation
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`

	// Head is the HEAD operation
	Head *Operation `json:"head,omitempty" yaml:"head,omitempty"`

	// Patch is the PATCH operation
	Patch *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Trace is the TRACE operation
	Trace *Operation `json:"trace,omitempty" yaml:"trace,omitempty"`

	// Servers is a list of servers for this path
	Servers []Server `json:"servers,omitempty" yaml:"servers,omitempty"`

	// Parameters are parameters shared by all operations on this path
	Parameters []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// SetOperation attaches an operation under the given verb. Unrecognized
// verbs are reported by the false return; the path item is left untouched.
func (p *PathItem) SetOperation(verb string, op *Operation) bool {
	switch NormalizeVerb(verb) {
	case "GET":
		p.Get = op
	case "PUT":
		p.Put = op
	case "POST":
		p.Post = op
	case "DELETE":
		p.Delete = op
	case "OPTIONS":
		p.Options = op
	case "HEAD":
		p.Head = op
	case "PATCH":
		p.Patch = op
	case "TRACE":
		p.Trace = op
	default:
		return false
	}
	return true
}

// Operations returns the verb-to-operation pairs present on the path item.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation, 8)
	for verb, op := range map[string]*Operation{
		"GET": p.Get, "PUT": p.Put, "POST": p.Post, "DELETE": p.Delete,
		"OPTIONS": p.Options, "HEAD": p.Head, "PATCH": p.Patch, "TRACE": p.Trace,
	} {
		if op != nil {
			ops[verb] = op
		}
	}
	return ops
}

// Components holds reusable objects.
type Components struct {
	// Schemas is a map of schema objects
	Schemas map[string]*Schema `json:"schemas,omitempty" yaml:"schemas,omitempty"`

	// Responses is a map of response objects
	Responses map[string]*Response `json:"responses,omitempty" yaml:"responses,omitempty"`

	// Parameters is a map of parameter objects
	Parameters map[string]*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// RequestBodies is a map of request body objects
	RequestBodies map[string]*RequestBody `json:"requestBodies,omitempty" yaml:"requestBodies,omitempty"`

	// Headers is a map of header objects
	Headers map[string]*Header `json:"headers,omitempty" yaml:"headers,omitempty"`

	// SecuritySchemes is a map of security scheme objects
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`

	// Callbacks is a map of shared callback definitions
	Callbacks map[string]*Callback `json:"callbacks,omitempty" yaml:"callbacks,omitempty"`
}

// AddSchema registers a named schema, creating the schema map on first use.
func (c *Components) AddSchema(name string, schema *Schema) {
	if c.Schemas == nil {
		c.Schemas = make(map[string]*Schema)
	}
	c.Schemas[name] = schema
}

// SecurityScheme represents a security scheme.
type SecurityScheme struct {
	// Type is the type of security scheme
	Type string `json:"type" yaml:"type"`

	// Description is a description
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Name is the name of the header, query, or cookie parameter
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// In is the location of the API key (query, header, cookie)
	In string `json:"in,omitempty" yaml:"in,omitempty"`

	// Scheme is the HTTP authorization scheme
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty"`

	// BearerFormat is the format of the bearer token
	BearerFormat string `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`

	// OpenIDConnectURL is the OpenID Connect URL
	OpenIDConnectURL string `json:"openIdConnectUrl,omitempty" yaml:"openIdConnectUrl,omitempty"`
}

// Tag represents a tag object.
type Tag struct {
	// Name is the name of the tag
	Name string `json:"name" yaml:"name"`

	// Description is a description of the tag
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// ExternalDocs provides external documentation
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// ExternalDocs provides external documentation.
type ExternalDocs struct {
	// Description is a description of the external documentation
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// URL is the URL of the external documentation
	URL string `json:"url" yaml:"url"`
}
