// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package uritemplate parses and nests route path templates with
// variable placeholders.
package uritemplate

import (
	"strings"

	"github.com/anno2spec/anno2spec/pkg/types"
)

// Template is a parsed path template: a normalized path string plus the
// ordered list of variables the template declares. Query-style variables
// are recorded but excluded from the path string.
type Template struct {
	// Path is the normalized path, with path variables rendered as
	// {name} segments
	Path string

	// Variables are the declared variables in template order
	Variables []types.PathVariable
}

// Parse parses a raw path template. Parsing is deliberately lenient:
// malformed expressions are copied through as literal text, so a
// template never fails to parse.
func Parse(raw string) *Template {
	t := &Template{}
	if raw == "" {
		raw = "/"
	}

	var path strings.Builder
	for i := 0; i < len(raw); {
		if raw[i] != '{' {
			path.WriteByte(raw[i])
			i++
			continue
		}
		end := strings.IndexByte(raw[i:], '}')
		if end == -1 {
			// unclosed expression, keep the rest literally
			path.WriteString(raw[i:])
			break
		}
		expr := raw[i+1 : i+end]
		path.WriteString(t.appendExpression(expr))
		i += end + 1
	}

	t.Path = normalize(path.String())
	return t
}

// appendExpression records the variables of one {...} expression and
// returns the text it contributes to the path string.
func (t *Template) appendExpression(expr string) string {
	if expr == "" {
		return ""
	}

	operator := byte(0)
	switch expr[0] {
	case '?', '&', '/', '#', '+', '.':
		operator = expr[0]
		expr = expr[1:]
	}

	var rendered strings.Builder
	for _, spec := range strings.Split(expr, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}

		exploded := strings.HasSuffix(spec, "*")
		spec = strings.TrimSuffix(spec, "*")
		// strip prefix modifiers like {name:3}
		if colon := strings.IndexByte(spec, ':'); colon != -1 {
			spec = spec[:colon]
		}
		if spec == "" {
			continue
		}

		variable := types.PathVariable{
			Name:     spec,
			Query:    operator == '?' || operator == '&',
			Exploded: exploded,
		}
		if !t.hasVariable(spec) {
			t.Variables = append(t.Variables, variable)
		}

		switch operator {
		case '?', '&':
			// query variables do not appear in the path string
		case '/':
			rendered.WriteString("/{" + spec + "}")
		default:
			rendered.WriteString("{" + spec + "}")
		}
	}
	return rendered.String()
}

func (t *Template) hasVariable(name string) bool {
	for _, v := range t.Variables {
		if v.Name == name {
			return true
		}
	}
	return false
}

// Nest appends another template to this one, producing the combined
// route template. Variables keep template order; on a name collision the
// outer declaration wins.
func (t *Template) Nest(other *Template) *Template {
	nested := &Template{
		Path:      joinPaths(t.Path, other.Path),
		Variables: append([]types.PathVariable(nil), t.Variables...),
	}
	for _, v := range other.Variables {
		if !nested.hasVariable(v.Name) {
			nested.Variables = append(nested.Variables, v)
		}
	}
	return nested
}

// VariableMap returns the variables keyed by name.
func (t *Template) VariableMap() map[string]types.PathVariable {
	vars := make(map[string]types.PathVariable, len(t.Variables))
	for _, v := range t.Variables {
		vars[v.Name] = v
	}
	return vars
}

// normalize ensures a leading slash and collapses a trailing slash on
// non-root paths.
func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// joinPaths concatenates two normalized paths.
func joinPaths(base, path string) string {
	if base == "/" || base == "" {
		return normalize(path)
	}
	if path == "/" || path == "" {
		return normalize(base)
	}
	return normalize(strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/"))
}
