// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"fmt"
	"strconv"
)

// Fragment is an explicit, possibly partial, declarative specification
// override supplied alongside a route or parameter as a key/value tree.
// Key presence is significant: the engine's merge only overwrites fields
// whose keys are present in the fragment, so a nil or missing key never
// resets a derived value.
type Fragment map[string]interface{}

// Has reports whether the key is present.
func (f Fragment) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// String returns the string value for a key, or "" when absent or not a
// string-like value.
func (f Fragment) String(key string) string {
	v, ok := f[key]
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return ""
	}
}

// Bool returns the bool value for a key. Absent keys and non-bool values
// yield the provided default.
func (f Fragment) Bool(key string, def bool) bool {
	v, ok := f[key]
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

// Fragment returns the nested fragment for a key, or nil.
func (f Fragment) Fragment(key string) Fragment {
	switch v := f[key].(type) {
	case Fragment:
		return v
	case map[string]interface{}:
		return Fragment(v)
	default:
		return nil
	}
}

// List returns the list value for a key. A scalar value is wrapped into
// a one-element list, matching annotation attributes that accept either.
func (f Fragment) List(key string) []interface{} {
	v, ok := f[key]
	if !ok {
		return nil
	}
	if list, ok := v.([]interface{}); ok {
		return list
	}
	return []interface{}{v}
}

// StringList returns the string values held under a key, skipping
// entries that are not strings.
func (f Fragment) StringList(key string) []string {
	var out []string
	for _, v := range f.List(key) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Fragments returns the nested fragments held under a key, skipping
// entries that are not fragments.
func (f Fragment) Fragments(key string) []Fragment {
	var out []Fragment
	for _, v := range f.List(key) {
		switch nested := v.(type) {
		case Fragment:
			out = append(out, nested)
		case map[string]interface{}:
			out = append(out, Fragment(nested))
		}
	}
	return out
}
