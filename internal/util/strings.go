// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides shared name-shaping helpers.
package util

import (
	"strings"
	"unicode"
)

// ToLowerCamelCase converts PascalCase to camelCase.
func ToLowerCamelCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ToUpperCamelCase converts camelCase to PascalCase.
func ToUpperCamelCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Hyphenate converts a camelCase name into hyphenated form:
// "authToken" becomes "auth-token".
func Hyphenate(s string) string {
	var out strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				out.WriteByte('-')
			}
			out.WriteRune(unicode.ToLower(r))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
