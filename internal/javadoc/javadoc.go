// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package javadoc parses javadoc-style documentation comments into a
// method description, per-parameter descriptions, and a return
// description.
package javadoc

import "strings"

// Comment is the parsed form of one documentation comment.
type Comment struct {
	// Description is the free text before the first block tag
	Description string

	// Params maps parameter names to their @param descriptions
	Params map[string]string

	// Return is the @return description
	Return string
}

// ParamDescription returns the description for a parameter name, or "".
func (c *Comment) ParamDescription(name string) string {
	if c == nil {
		return ""
	}
	return c.Params[name]
}

// Parser parses raw documentation comment text.
type Parser struct{}

// NewParser creates a javadoc parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw comment text. Comment delimiters and leading
// asterisks are stripped; block tags other than @param and @return are
// ignored. Returns nil for blank input.
func (p *Parser) Parse(raw string) *Comment {
	raw = stripDelimiters(raw)
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	comment := &Comment{Params: make(map[string]string)}

	// section tracks where continuation lines are appended: the main
	// description, a parameter, or the return text.
	var section func(text string)
	var description []string
	section = func(text string) {
		description = append(description, text)
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "@param"):
			rest := strings.TrimSpace(strings.TrimPrefix(line, "@param"))
			name, desc, _ := strings.Cut(rest, " ")
			if name == "" {
				section = func(string) {}
				continue
			}
			comment.Params[name] = strings.TrimSpace(desc)
			section = func(text string) {
				comment.Params[name] = joinText(comment.Params[name], text)
			}
		case strings.HasPrefix(line, "@return"):
			comment.Return = strings.TrimSpace(strings.TrimPrefix(line, "@return"))
			section = func(text string) {
				comment.Return = joinText(comment.Return, text)
			}
		case strings.HasPrefix(line, "@"):
			// unrelated block tag, swallow its continuation lines
			section = func(string) {}
		case line != "":
			section(line)
		}
	}

	comment.Description = strings.TrimSpace(strings.Join(description, " "))
	return comment
}

// stripDelimiters removes comment markers and leading asterisks.
func stripDelimiters(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "/**")
	raw = strings.TrimPrefix(raw, "/*")
	raw = strings.TrimSuffix(raw, "*/")

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func joinText(existing, text string) string {
	if existing == "" {
		return text
	}
	return existing + " " + text
}
