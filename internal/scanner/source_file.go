// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package scanner provides file discovery for controller source scanning.
package scanner

import (
	"path/filepath"
	"strings"
	"time"
)

// SourceFile represents a discovered source file.
type SourceFile struct {
	// Path is the absolute path to the file
	Path string

	// Content is the file content
	Content []byte

	// ModTime is the last modification time
	ModTime time.Time
}

// supportedExtensions lists the source extensions the pipeline parses.
var supportedExtensions = []string{".java"}

// SupportedExtensions returns the supported file extensions.
func SupportedExtensions() []string {
	return append([]string(nil), supportedExtensions...)
}

// IsSupportedFile checks if a file path has a supported extension.
func IsSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
