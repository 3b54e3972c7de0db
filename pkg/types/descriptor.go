// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import "strings"

// RouteDescriptor carries the structural facts about one HTTP handler as
// supplied by the metadata extractor. The transformation engine treats it
// as read-only input.
type RouteDescriptor struct {
	// Verb is the HTTP verb declared by the mapping annotation
	Verb string

	// ControllerPath is the raw controller-level path template
	ControllerPath string

	// MethodPath is the raw method-level path template
	MethodPath string

	// Consumes lists the declared consumed media types
	Consumes []string

	// Produces lists the declared produced media types
	Produces []string

	// Return is the handler's declared return type
	Return TypeRef

	// Parameters are the handler's parameters, in declaration order
	Parameters []ParameterDescriptor

	// Hidden marks the handler as excluded from the specification
	Hidden bool

	// Deprecated marks the handler as deprecated
	Deprecated bool

	// Doc is the raw documentation comment attached to the handler
	Doc string

	// HandlerName is the handler method's own name
	HandlerName string

	// ControllerName is the declaring controller's name
	ControllerName string

	// OperationFragment is the explicit operation-level specification
	// fragment, if any
	OperationFragment Fragment

	// Tags are tag names declared on the handler or its controller
	Tags []string

	// SecurityFragments are explicit security requirement fragments
	SecurityFragments []Fragment

	// ServerFragments are explicit server fragments
	ServerFragments []Fragment

	// ResponseFragments are explicit response fragments, each keyed by a
	// "responseCode" entry
	ResponseFragments []Fragment

	// CallbackFragments are explicit callback declaration fragments
	CallbackFragments []Fragment

	// SourceFile is the file the handler was extracted from
	SourceFile string

	// SourceLine is the line the handler was extracted from
	SourceLine int
}

// ParameterDescriptor carries the structural facts about one handler
// parameter and its declared bindings.
type ParameterDescriptor struct {
	// Name is the parameter's own name
	Name string

	// Type is the parameter's declared type
	Type TypeRef

	// Nullable marks the parameter as accepting null
	Nullable bool

	// Hidden marks the parameter as excluded from the specification
	Hidden bool

	// Body marks the parameter as carrying the whole request body
	Body bool

	// Bindable marks a generic binding stereotype with no specific
	// location; such parameters never match the path-variable rule and
	// are excluded from synthesized bodies
	Bindable bool

	// IgnoreSerialization excludes the parameter from synthesized bodies
	IgnoreSerialization bool

	// PathBinding is the explicit path-variable binding, if declared
	PathBinding *BindingDecl

	// HeaderBinding is the explicit header binding, if declared
	HeaderBinding *BindingDecl

	// CookieBinding is the explicit cookie binding, if declared
	CookieBinding *BindingDecl

	// QueryBinding is the explicit query binding, if declared
	QueryBinding *BindingDecl

	// ParameterFragment is the explicit per-parameter specification
	// fragment, if any
	ParameterFragment Fragment

	// BodyFragment is the explicit request-body fragment declared on the
	// parameter, if any
	BodyFragment Fragment
}

// BindingDecl is an explicit binding-kind declaration on a parameter.
// Name is the declared override name; empty means "use the default".
type BindingDecl struct {
	Name string
}

// HasBindingOverride reports whether any explicit binding-kind
// declaration is present on the parameter.
func (p *ParameterDescriptor) HasBindingOverride() bool {
	return p.Bindable || p.Body ||
		p.PathBinding != nil || p.HeaderBinding != nil ||
		p.CookieBinding != nil || p.QueryBinding != nil
}

// PathVariable is a variable declared by a bound path template.
type PathVariable struct {
	// Name is the variable name, unique within a route
	Name string

	// Query marks a query-style template variable
	Query bool

	// Exploded marks an exploded template variable
	Exploded bool
}

// TypeRef is a structural reference to a declared type, carrying its
// type arguments so wrapper types can be unwrapped.
type TypeRef struct {
	// Name is the plain type name without type arguments
	Name string

	// Args are the type arguments, in declaration order
	Args []TypeRef
}

// IsZero reports whether the reference is empty.
func (t TypeRef) IsZero() bool {
	return t.Name == ""
}

// FirstArg returns the first type argument, or a zero reference when
// the type carries none.
func (t TypeRef) FirstArg() TypeRef {
	if len(t.Args) == 0 {
		return TypeRef{}
	}
	return t.Args[0]
}

// String renders the reference back into source form.
func (t TypeRef) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return t.Name + "<" + strings.Join(args, ", ") + ">"
}

// ParseTypeRef parses a source-form type expression such as
// "HttpResponse<List<User>>" into a TypeRef. Array suffixes become a
// synthetic "[]" wrapper around the element type.
func ParseTypeRef(expr string) TypeRef {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return TypeRef{}
	}
	if strings.HasSuffix(expr, "[]") {
		elem := ParseTypeRef(strings.TrimSuffix(expr, "[]"))
		return TypeRef{Name: "[]", Args: []TypeRef{elem}}
	}

	open := strings.Index(expr, "<")
	if open == -1 {
		return TypeRef{Name: expr}
	}
	close := strings.LastIndex(expr, ">")
	if close <= open {
		return TypeRef{Name: strings.TrimSpace(expr[:open])}
	}

	ref := TypeRef{Name: strings.TrimSpace(expr[:open])}
	for _, arg := range splitTypeArgs(expr[open+1 : close]) {
		ref.Args = append(ref.Args, ParseTypeRef(arg))
	}
	return ref
}

// splitTypeArgs splits a type argument list on top-level commas.
func splitTypeArgs(src string) []string {
	var args []string
	var current strings.Builder
	depth := 0

	for _, ch := range src {
		switch ch {
		case '<':
			depth++
			current.WriteRune(ch)
		case '>':
			depth--
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				args = append(args, current.String())
				current.Reset()
			} else {
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}
	if strings.TrimSpace(current.String()) != "" {
		args = append(args, current.String())
	}
	return args
}
