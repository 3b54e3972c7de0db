// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package placeholder resolves ${...}-style property placeholders inside
// path template strings against build-time properties.
package placeholder

import (
	"fmt"
	"strings"
)

// Resolver substitutes ${name} and ${name:default} placeholders. A
// placeholder with no property definition and no default is left intact,
// so unresolved templates pass through unchanged.
type Resolver struct {
	properties map[string]string
}

// NewResolver creates a resolver over the given build-time properties.
func NewResolver(properties map[string]string) *Resolver {
	return &Resolver{properties: properties}
}

// Resolve substitutes every placeholder in the input. It fails only on a
// malformed placeholder (unterminated "${").
func (r *Resolver) Resolve(input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var out strings.Builder
	for i := 0; i < len(input); {
		start := strings.Index(input[i:], "${")
		if start == -1 {
			out.WriteString(input[i:])
			break
		}
		out.WriteString(input[i : i+start])

		end := strings.IndexByte(input[i+start:], '}')
		if end == -1 {
			return "", fmt.Errorf("unterminated placeholder in %q", input)
		}

		expr := input[i+start+2 : i+start+end]
		name, def, hasDefault := strings.Cut(expr, ":")
		if value, ok := r.properties[name]; ok {
			out.WriteString(value)
		} else if hasDefault {
			out.WriteString(def)
		} else {
			// no definition, keep the placeholder as written
			out.WriteString(input[i+start : i+start+end+1])
		}
		i += start + end + 1
	}
	return out.String(), nil
}
