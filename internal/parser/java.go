// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package parser provides Java source parsing using tree-sitter.
package parser

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// JavaParser provides Java AST parsing capabilities using tree-sitter.
type JavaParser struct {
	parser *sitter.Parser
}

// NewJavaParser creates a new Java parser.
func NewJavaParser() *JavaParser {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	return &JavaParser{
		parser: parser,
	}
}

// ParsedJavaFile represents a parsed Java source file.
type ParsedJavaFile struct {
	// Path is the file path
	Path string

	// Content is the original source content
	Content []byte

	// Package is the declared package name
	Package string

	// Classes contains the class declarations
	Classes []JavaClass
}

// JavaClass represents a Java class definition.
type JavaClass struct {
	// Name is the class name
	Name string

	// Package is the package name
	Package string

	// Annotations are the class annotations
	Annotations []JavaAnnotation

	// Methods are the class methods
	Methods []JavaMethod

	// Fields are the instance fields
	Fields []JavaField

	// Doc is the raw documentation comment, if any
	Doc string

	// Line is the source line number
	Line int
}

// JavaAnnotation represents a Java annotation. Attribute values are
// string, bool, int64, float64, []interface{}, or a nested
// *JavaAnnotation; the single unnamed attribute is stored under "value".
type JavaAnnotation struct {
	// Name is the annotation name without the leading @
	Name string

	// Values are the annotation attributes by name
	Values map[string]interface{}

	// Line is the source line number
	Line int
}

// Value returns the unnamed attribute.
func (a *JavaAnnotation) Value() interface{} {
	return a.Values["value"]
}

// StringValue returns a string attribute, or "".
func (a *JavaAnnotation) StringValue(key string) string {
	s, _ := a.Values[key].(string)
	return s
}

// BoolValue returns a bool attribute, or false.
func (a *JavaAnnotation) BoolValue(key string) bool {
	b, _ := a.Values[key].(bool)
	return b
}

// StringValues returns a string-array attribute. A single string value
// is returned as a one-element list.
func (a *JavaAnnotation) StringValues(key string) []string {
	switch v := a.Values[key].(type) {
	case string:
		return []string{v}
	case []interface{}:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// JavaMethod represents a Java method definition.
type JavaMethod struct {
	// Name is the method name
	Name string

	// Annotations are the method annotations
	Annotations []JavaAnnotation

	// Parameters are the method parameters
	Parameters []JavaParameter

	// ReturnType is the declared return type in source form
	ReturnType string

	// Doc is the raw documentation comment, if any
	Doc string

	// Line is the source line number
	Line int
}

// JavaParameter represents a method parameter.
type JavaParameter struct {
	// Name is the parameter name
	Name string

	// Type is the declared type in source form
	Type string

	// Annotations are the parameter annotations
	Annotations []JavaAnnotation
}

// JavaField represents an instance field.
type JavaField struct {
	// Name is the field name
	Name string

	// Type is the declared type in source form
	Type string

	// Annotations are the field annotations
	Annotations []JavaAnnotation

	// Doc is the raw documentation comment, if any
	Doc string

	// Line is the source line number
	Line int
}

func annotationByName(annotations []JavaAnnotation, name string) *JavaAnnotation {
	for i := range annotations {
		if annotations[i].Name == name {
			return &annotations[i]
		}
	}
	return nil
}

// Annotation returns the class annotation with the given name, or nil.
func (c *JavaClass) Annotation(name string) *JavaAnnotation {
	return annotationByName(c.Annotations, name)
}

// Annotation returns the method annotation with the given name, or nil.
func (m *JavaMethod) Annotation(name string) *JavaAnnotation {
	return annotationByName(m.Annotations, name)
}

// Annotation returns the parameter annotation with the given name, or nil.
func (p *JavaParameter) Annotation(name string) *JavaAnnotation {
	return annotationByName(p.Annotations, name)
}

// Annotation returns the field annotation with the given name, or nil.
func (f *JavaField) Annotation(name string) *JavaAnnotation {
	return annotationByName(f.Annotations, name)
}

// ParseSource parses Java source code from a string.
func (p *JavaParser) ParseSource(filename string, source string) (*ParsedJavaFile, error) {
	return p.Parse(filename, []byte(source))
}

// Parse parses Java source code from bytes.
func (p *JavaParser) Parse(filename string, content []byte) (*ParsedJavaFile, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Java: %w", err)
	}

	rootNode := tree.RootNode()
	if rootNode == nil {
		return nil, fmt.Errorf("failed to get root node")
	}

	pf := &ParsedJavaFile{
		Path:    filename,
		Content: content,
		Classes: []JavaClass{},
	}
	pf.Package = p.extractPackage(rootNode, content)
	pf.Classes = p.extractClasses(rootNode, content, pf.Package)

	return pf, nil
}

// ParseFile parses a Java source file from disk.
func (p *JavaParser) ParseFile(path string) (*ParsedJavaFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return p.Parse(path, content)
}

// SupportedExtensions returns the file extensions this parser handles.
func (p *JavaParser) SupportedExtensions() []string {
	return []string{".java"}
}

// Close releases the parser resources.
func (p *JavaParser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

func (p *JavaParser) extractPackage(rootNode *sitter.Node, content []byte) string {
	for i := 0; i < int(rootNode.ChildCount()); i++ {
		child := rootNode.Child(i)
		if child.Type() != "package_declaration" {
			continue
		}
		for j := 0; j < int(child.ChildCount()); j++ {
			sub := child.Child(j)
			if sub.Type() == "scoped_identifier" || sub.Type() == "identifier" {
				return sub.Content(content)
			}
		}
	}
	return ""
}

// extractClasses extracts all class declarations, including nested ones.
func (p *JavaParser) extractClasses(rootNode *sitter.Node, content []byte, pkg string) []JavaClass {
	var classes []JavaClass

	p.walkNodes(rootNode, func(node *sitter.Node) bool {
		if node.Type() != "class_declaration" && node.Type() != "record_declaration" {
			return true
		}
		class := p.parseClassDecl(node, content)
		class.Package = pkg
		classes = append(classes, class)
		return true
	})

	return classes
}

// parseClassDecl parses a class_declaration or record_declaration node.
func (p *JavaParser) parseClassDecl(node *sitter.Node, content []byte) JavaClass {
	class := JavaClass{
		Line: int(node.StartPoint().Row) + 1,
		Doc:  p.precedingDocComment(node, content),
	}

	if name := node.ChildByFieldName("name"); name != nil {
		class.Name = name.Content(content)
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "modifiers" {
			class.Annotations = p.parseAnnotations(child, content)
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.ChildCount()); i++ {
			member := body.Child(i)
			switch member.Type() {
			case "method_declaration":
				class.Methods = append(class.Methods, p.parseMethodDecl(member, content))
			case "field_declaration":
				class.Fields = append(class.Fields, p.parseFieldDecls(member, content)...)
			}
		}
	}

	// record components double as fields
	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.ChildCount()); i++ {
			component := params.Child(i)
			if component.Type() != "formal_parameter" && component.Type() != "record_component" {
				continue
			}
			field := JavaField{Line: int(component.StartPoint().Row) + 1}
			if name := component.ChildByFieldName("name"); name != nil {
				field.Name = name.Content(content)
			}
			if typ := component.ChildByFieldName("type"); typ != nil {
				field.Type = typ.Content(content)
			}
			class.Fields = append(class.Fields, field)
		}
	}

	return class
}

// parseMethodDecl parses a method_declaration node.
func (p *JavaParser) parseMethodDecl(node *sitter.Node, content []byte) JavaMethod {
	method := JavaMethod{
		Line: int(node.StartPoint().Row) + 1,
		Doc:  p.precedingDocComment(node, content),
	}

	if name := node.ChildByFieldName("name"); name != nil {
		method.Name = name.Content(content)
	}
	if typ := node.ChildByFieldName("type"); typ != nil {
		method.ReturnType = typ.Content(content)
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "modifiers" {
			method.Annotations = p.parseAnnotations(child, content)
		}
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.ChildCount()); i++ {
			child := params.Child(i)
			if child.Type() != "formal_parameter" && child.Type() != "spread_parameter" {
				continue
			}
			method.Parameters = append(method.Parameters, p.parseParameterDecl(child, content))
		}
	}

	return method
}

// parseParameterDecl parses a formal_parameter node.
func (p *JavaParser) parseParameterDecl(node *sitter.Node, content []byte) JavaParameter {
	param := JavaParameter{}

	if name := node.ChildByFieldName("name"); name != nil {
		param.Name = name.Content(content)
	}
	if typ := node.ChildByFieldName("type"); typ != nil {
		param.Type = typ.Content(content)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "modifiers" {
			param.Annotations = p.parseAnnotations(child, content)
		}
	}

	return param
}

// parseFieldDecls parses a field_declaration node. One declaration may
// declare several fields.
func (p *JavaParser) parseFieldDecls(node *sitter.Node, content []byte) []JavaField {
	var annotations []JavaAnnotation
	typeName := ""
	doc := p.precedingDocComment(node, content)
	line := int(node.StartPoint().Row) + 1

	if typ := node.ChildByFieldName("type"); typ != nil {
		typeName = typ.Content(content)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "modifiers" {
			annotations = p.parseAnnotations(child, content)
		}
	}

	var fields []JavaField
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		field := JavaField{
			Type:        typeName,
			Annotations: annotations,
			Doc:         doc,
			Line:        line,
		}
		if name := child.ChildByFieldName("name"); name != nil {
			field.Name = name.Content(content)
		}
		fields = append(fields, field)
	}
	return fields
}

// parseAnnotations parses the annotations inside a modifiers node.
func (p *JavaParser) parseAnnotations(node *sitter.Node, content []byte) []JavaAnnotation {
	var annotations []JavaAnnotation
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "annotation" || child.Type() == "marker_annotation" {
			annotations = append(annotations, p.parseAnnotation(child, content))
		}
	}
	return annotations
}

// parseAnnotation parses an annotation or marker_annotation node.
func (p *JavaParser) parseAnnotation(node *sitter.Node, content []byte) JavaAnnotation {
	annotation := JavaAnnotation{
		Values: map[string]interface{}{},
		Line:   int(node.StartPoint().Row) + 1,
	}

	if name := node.ChildByFieldName("name"); name != nil {
		full := name.Content(content)
		if idx := strings.LastIndex(full, "."); idx >= 0 {
			full = full[idx+1:]
		}
		annotation.Name = full
	}

	args := node.ChildByFieldName("arguments")
	if args == nil {
		return annotation
	}
	for i := 0; i < int(args.ChildCount()); i++ {
		child := args.Child(i)
		switch child.Type() {
		case "element_value_pair":
			key := ""
			if keyNode := child.ChildByFieldName("key"); keyNode != nil {
				key = keyNode.Content(content)
			}
			if valueNode := child.ChildByFieldName("value"); valueNode != nil && key != "" {
				annotation.Values[key] = p.parseElementValue(valueNode, content)
			}
		case "(", ")", ",":
		default:
			// single unnamed value
			annotation.Values["value"] = p.parseElementValue(child, content)
		}
	}

	return annotation
}

// parseElementValue parses one annotation attribute value.
func (p *JavaParser) parseElementValue(node *sitter.Node, content []byte) interface{} {
	switch node.Type() {
	case "string_literal":
		return unquote(node.Content(content))
	case "true":
		return true
	case "false":
		return false
	case "decimal_integer_literal", "hex_integer_literal":
		if n, err := strconv.ParseInt(strings.TrimSuffix(node.Content(content), "L"), 0, 64); err == nil {
			return n
		}
		return node.Content(content)
	case "decimal_floating_point_literal":
		raw := strings.TrimRight(node.Content(content), "fFdD")
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
		return node.Content(content)
	case "annotation", "marker_annotation":
		nested := p.parseAnnotation(node, content)
		return &nested
	case "element_value_array_initializer":
		var values []interface{}
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			switch child.Type() {
			case "{", "}", ",":
			default:
				values = append(values, p.parseElementValue(child, content))
			}
		}
		return values
	default:
		// constant references such as MediaType.APPLICATION_JSON keep
		// their source text; the extractor maps the known ones
		return node.Content(content)
	}
}

// precedingDocComment returns the /** ... */ comment directly above a
// declaration, if any.
func (p *JavaParser) precedingDocComment(node *sitter.Node, content []byte) string {
	prev := node.PrevSibling()
	if prev == nil {
		return ""
	}
	if prev.Type() != "block_comment" && prev.Type() != "comment" {
		return ""
	}
	text := prev.Content(content)
	if !strings.HasPrefix(text, "/**") {
		return ""
	}
	return text
}

// walkNodes walks all nodes in the tree, calling fn for each node.
// Returning false stops descent into that node's children.
func (p *JavaParser) walkNodes(node *sitter.Node, fn func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !fn(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		p.walkNodes(node.Child(i), fn)
	}
}

// unquote strips the surrounding quotes from a string literal.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
