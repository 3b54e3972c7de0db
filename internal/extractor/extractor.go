// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package extractor maps parsed Java controller sources onto route
// descriptors and registers data classes as named schemas.
package extractor

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/anno2spec/anno2spec/internal/javadoc"
	"github.com/anno2spec/anno2spec/internal/parser"
	"github.com/anno2spec/anno2spec/internal/schema"
	"github.com/anno2spec/anno2spec/pkg/types"
)

// verbAnnotations maps mapping annotation names to HTTP verbs.
var verbAnnotations = map[string]string{
	"Get":     "GET",
	"Post":    "POST",
	"Put":     "PUT",
	"Delete":  "DELETE",
	"Patch":   "PATCH",
	"Head":    "HEAD",
	"Options": "OPTIONS",
	"Trace":   "TRACE",
}

// mediaTypeConstants maps MediaType constant references onto their
// media type strings.
var mediaTypeConstants = map[string]string{
	"MediaType.APPLICATION_JSON":            "application/json",
	"MediaType.APPLICATION_XML":             "application/xml",
	"MediaType.APPLICATION_YAML":            "application/yaml",
	"MediaType.APPLICATION_FORM_URLENCODED": "application/x-www-form-urlencoded",
	"MediaType.MULTIPART_FORM_DATA":         "multipart/form-data",
	"MediaType.APPLICATION_OCTET_STREAM":    "application/octet-stream",
	"MediaType.TEXT_PLAIN":                  "text/plain",
	"MediaType.TEXT_HTML":                   "text/html",
}

// Extractor turns parsed Java files into route descriptors. Data
// classes discovered along the way are registered into the schema
// registry so the resolver can reference them.
type Extractor struct {
	parser   *parser.JavaParser
	registry *schema.Registry
	docs     *javadoc.Parser
	caser    cases.Caser
}

// New creates an extractor registering schemas into the given registry.
func New(registry *schema.Registry) *Extractor {
	return &Extractor{
		parser:   parser.NewJavaParser(),
		registry: registry,
		docs:     javadoc.NewParser(),
		caser:    cases.Title(language.English),
	}
}

// Close releases the underlying parser.
func (e *Extractor) Close() {
	e.parser.Close()
}

// ExtractFile parses one Java source file and extracts its routes.
func (e *Extractor) ExtractFile(path string) ([]types.RouteDescriptor, error) {
	pf, err := e.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return e.Extract(pf), nil
}

// ExtractSource parses Java source text and extracts its routes.
func (e *Extractor) ExtractSource(filename, source string) ([]types.RouteDescriptor, error) {
	pf, err := e.parser.ParseSource(filename, source)
	if err != nil {
		return nil, err
	}
	return e.Extract(pf), nil
}

// Extract maps a parsed file onto route descriptors. Non-controller
// classes with fields register as named schemas instead.
func (e *Extractor) Extract(pf *parser.ParsedJavaFile) []types.RouteDescriptor {
	// register data classes first so controller routes in the same file
	// can reference them
	for i := range pf.Classes {
		class := &pf.Classes[i]
		if class.Annotation("Controller") == nil {
			e.registerSchema(class)
		}
	}

	var routes []types.RouteDescriptor
	for i := range pf.Classes {
		class := &pf.Classes[i]
		controller := class.Annotation("Controller")
		if controller == nil {
			continue
		}
		routes = append(routes, e.extractController(pf, class, controller)...)
	}
	return routes
}

func (e *Extractor) extractController(pf *parser.ParsedJavaFile, class *parser.JavaClass, controller *parser.JavaAnnotation) []types.RouteDescriptor {
	controllerPath, _ := controller.Value().(string)
	if controllerPath == "" {
		controllerPath = controller.StringValue("uri")
	}

	classHidden := class.Annotation("Hidden") != nil
	classDeprecated := class.Annotation("Deprecated") != nil
	classTags := e.tagNames(class.Annotations)
	classConsumes := annotationMediaTypes(class.Annotation("Consumes"))
	classProduces := annotationMediaTypes(class.Annotation("Produces"))

	var routes []types.RouteDescriptor
	for i := range class.Methods {
		method := &class.Methods[i]
		verb, mapping := e.verbAnnotation(method)
		if verb == "" {
			continue
		}

		route := types.RouteDescriptor{
			Verb:           verb,
			ControllerPath: controllerPath,
			MethodPath:     mappingPath(mapping),
			Return:         types.ParseTypeRef(method.ReturnType),
			Hidden:         classHidden || method.Annotation("Hidden") != nil,
			Deprecated:     classDeprecated || method.Annotation("Deprecated") != nil,
			Doc:            method.Doc,
			HandlerName:    method.Name,
			ControllerName: class.Name,
			SourceFile:     pf.Path,
			SourceLine:     method.Line,
		}

		route.Consumes = firstNonEmpty(e.methodMediaTypes(method, mapping, "consumes", "Consumes"), classConsumes)
		route.Produces = firstNonEmpty(e.methodMediaTypes(method, mapping, "produces", "Produces"), classProduces)

		route.Tags = append(append([]string(nil), classTags...), e.tagNames(method.Annotations)...)
		if len(route.Tags) == 0 {
			if tag := e.defaultTag(class.Name); tag != "" {
				route.Tags = []string{tag}
			}
		}

		if op := method.Annotation("Operation"); op != nil {
			route.OperationFragment = toFragment(op)
		}
		for _, a := range repeated(method.Annotations, "SecurityRequirement", "SecurityRequirements") {
			route.SecurityFragments = append(route.SecurityFragments, toFragment(a))
		}
		for _, a := range repeated(method.Annotations, "ApiResponse", "ApiResponses") {
			route.ResponseFragments = append(route.ResponseFragments, toFragment(a))
		}
		for _, a := range repeated(method.Annotations, "Server", "Servers") {
			route.ServerFragments = append(route.ServerFragments, toFragment(a))
		}
		for _, a := range repeated(method.Annotations, "Callback", "Callbacks") {
			route.CallbackFragments = append(route.CallbackFragments, toFragment(a))
		}

		for j := range method.Parameters {
			route.Parameters = append(route.Parameters, e.extractParameter(&method.Parameters[j]))
		}

		routes = append(routes, route)
	}
	return routes
}

// verbAnnotation finds the HTTP mapping annotation on a method.
func (e *Extractor) verbAnnotation(method *parser.JavaMethod) (string, *parser.JavaAnnotation) {
	for i := range method.Annotations {
		if verb, ok := verbAnnotations[method.Annotations[i].Name]; ok {
			return verb, &method.Annotations[i]
		}
	}
	return "", nil
}

func mappingPath(mapping *parser.JavaAnnotation) string {
	if mapping == nil {
		return ""
	}
	if path, ok := mapping.Value().(string); ok {
		return path
	}
	return mapping.StringValue("uri")
}

// methodMediaTypes reads declared media types from the mapping
// annotation attribute or a dedicated annotation.
func (e *Extractor) methodMediaTypes(method *parser.JavaMethod, mapping *parser.JavaAnnotation, attribute, annotationName string) []string {
	if mapping != nil {
		if declared := mediaTypeStrings(mapping.StringValues(attribute)); len(declared) > 0 {
			return declared
		}
	}
	return annotationMediaTypes(method.Annotation(annotationName))
}

func annotationMediaTypes(a *parser.JavaAnnotation) []string {
	if a == nil {
		return nil
	}
	switch v := a.Value().(type) {
	case string:
		return mediaTypeStrings([]string{v})
	case []interface{}:
		var raw []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
		return mediaTypeStrings(raw)
	default:
		return nil
	}
}

// mediaTypeStrings maps constant references onto media type strings and
// keeps literals as written.
func mediaTypeStrings(raw []string) []string {
	var out []string
	for _, s := range raw {
		if mapped, ok := mediaTypeConstants[s]; ok {
			out = append(out, mapped)
			continue
		}
		out = append(out, s)
	}
	return out
}

// extractParameter maps one method parameter onto a descriptor.
func (e *Extractor) extractParameter(param *parser.JavaParameter) types.ParameterDescriptor {
	desc := types.ParameterDescriptor{
		Name:     param.Name,
		Type:     types.ParseTypeRef(param.Type),
		Nullable: param.Annotation("Nullable") != nil || strings.HasPrefix(param.Type, "Optional<"),
		Hidden:   param.Annotation("Hidden") != nil,
		Body:     param.Annotation("Body") != nil,
		Bindable: param.Annotation("Bindable") != nil,
	}

	if param.Annotation("JsonIgnore") != nil || param.Annotation("Transient") != nil {
		desc.IgnoreSerialization = true
	}

	desc.PathBinding = bindingDecl(param.Annotation("PathVariable"))
	desc.HeaderBinding = bindingDecl(param.Annotation("Header"))
	desc.CookieBinding = bindingDecl(param.Annotation("CookieValue"))
	desc.QueryBinding = bindingDecl(param.Annotation("QueryValue"))

	if a := param.Annotation("Parameter"); a != nil {
		desc.ParameterFragment = toFragment(a)
	}
	if a := param.Annotation("RequestBody"); a != nil {
		desc.BodyFragment = toFragment(a)
	}

	return desc
}

// bindingDecl maps a binding annotation onto a declaration; the unnamed
// attribute or "name" carries the override name.
func bindingDecl(a *parser.JavaAnnotation) *types.BindingDecl {
	if a == nil {
		return nil
	}
	name, _ := a.Value().(string)
	if name == "" {
		name = a.StringValue("name")
	}
	return &types.BindingDecl{Name: name}
}

// tagNames collects @Tag/@Tags names from an annotation list.
func (e *Extractor) tagNames(annotations []parser.JavaAnnotation) []string {
	var tags []string
	for _, a := range repeated(annotations, "Tag", "Tags") {
		if name := a.StringValue("name"); name != "" {
			tags = append(tags, name)
		}
	}
	return tags
}

// repeated collects an annotation and its container form, flattening
// nested annotations out of the container's value array.
func repeated(annotations []parser.JavaAnnotation, name, containerName string) []*parser.JavaAnnotation {
	var out []*parser.JavaAnnotation
	for i := range annotations {
		a := &annotations[i]
		switch a.Name {
		case name:
			out = append(out, a)
		case containerName:
			if values, ok := a.Value().([]interface{}); ok {
				for _, v := range values {
					if nested, ok := v.(*parser.JavaAnnotation); ok && nested.Name == name {
						out = append(out, nested)
					}
				}
			}
		}
	}
	return out
}

// defaultTag derives a display tag from a controller class name:
// "UserAccountController" becomes "User Account".
func (e *Extractor) defaultTag(controllerName string) string {
	name := strings.TrimSuffix(controllerName, "Controller")
	if name == "" {
		return ""
	}
	words := splitCamelCase(name)
	for i, word := range words {
		words[i] = e.caser.String(strings.ToLower(word))
	}
	return strings.Join(words, " ")
}

func splitCamelCase(s string) []string {
	var words []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// registerSchema records a data class as a named object schema.
func (e *Extractor) registerSchema(class *parser.JavaClass) {
	if len(class.Fields) == 0 || e.registry == nil {
		return
	}
	if class.Annotation("Hidden") != nil {
		return
	}

	resolver := schema.NewResolver(e.registry)
	s := &types.Schema{Type: "object"}
	if comment := e.docs.Parse(class.Doc); comment != nil {
		s.Description = comment.Description
	}

	for i := range class.Fields {
		field := &class.Fields[i]
		if field.Annotation("JsonIgnore") != nil || field.Annotation("Hidden") != nil {
			continue
		}

		prop := resolver.Resolve(nil, types.ParseTypeRef(field.Type))
		if prop == nil {
			continue
		}
		if field.Annotation("Nullable") != nil && prop.Ref == "" {
			prop.Nullable = true
		}
		if comment := e.docs.Parse(field.Doc); comment != nil && prop.Ref == "" {
			prop.Description = comment.Description
		}
		if a := field.Annotation("Schema"); a != nil {
			bindFieldSchema(prop, a)
		}
		s.SetProperty(field.Name, prop)

		if field.Annotation("NotNull") != nil || field.Annotation("NonNull") != nil {
			s.Required = append(s.Required, field.Name)
		}
	}

	e.registry.Add(class.Name, s)
}

// bindFieldSchema applies a @Schema annotation onto a field schema.
func bindFieldSchema(s *types.Schema, a *parser.JavaAnnotation) {
	if v := a.StringValue("description"); v != "" {
		s.Description = v
	}
	if v := a.StringValue("format"); v != "" {
		s.Format = v
	}
	if v := a.StringValue("example"); v != "" {
		s.Example = v
	}
	if a.BoolValue("nullable") {
		s.Nullable = true
	}
	if a.BoolValue("deprecated") {
		s.Deprecated = true
	}
}

// toFragment converts an annotation into a specification fragment,
// recursing through nested annotations and arrays.
func toFragment(a *parser.JavaAnnotation) types.Fragment {
	fragment := make(types.Fragment, len(a.Values))
	for key, value := range a.Values {
		fragment[key] = fragmentValue(value)
	}
	return fragment
}

func fragmentValue(value interface{}) interface{} {
	switch v := value.(type) {
	case *parser.JavaAnnotation:
		return toFragment(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = fragmentValue(item)
		}
		return out
	default:
		return value
	}
}

func firstNonEmpty(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}
