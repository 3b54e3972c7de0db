// SPDX-FileCopyrightText: 2026 anno2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package engine

import "fmt"

// Location identifies the source element a diagnostic refers to.
type Location struct {
	// File is the source file path
	File string

	// Line is the 1-based line number; zero when unknown
	Line int

	// Element names the controller or handler, e.g. "UserController.list"
	Element string
}

func (l Location) String() string {
	switch {
	case l.File == "" && l.Element == "":
		return "<unknown>"
	case l.File == "":
		return l.Element
	case l.Line == 0:
		return fmt.Sprintf("%s (%s)", l.File, l.Element)
	default:
		return fmt.Sprintf("%s:%d (%s)", l.File, l.Line, l.Element)
	}
}

// Diagnostics is the sink the engine reports problems to. Warn records a
// non-fatal problem; Fail records a problem that aborted the current
// route. Neither stops the overall pass.
type Diagnostics interface {
	Warn(message string, loc Location)
	Fail(message string, loc Location)
}

// Diagnostic severities.
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Diagnostic is one recorded engine problem.
type Diagnostic struct {
	// Severity is SeverityWarning or SeverityError
	Severity string

	// Message describes the problem
	Message string

	// Location identifies the source element
	Location Location
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Location, d.Message)
}

// Collector is a Diagnostics implementation that records every entry for
// later reporting.
type Collector struct {
	diagnostics []Diagnostic
	failures    int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Warn records a non-fatal diagnostic.
func (c *Collector) Warn(message string, loc Location) {
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Message:  message,
		Location: loc,
	})
}

// Fail records a route-aborting diagnostic.
func (c *Collector) Fail(message string, loc Location) {
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityError,
		Message:  message,
		Location: loc,
	})
	c.failures++
}

// Diagnostics returns the recorded entries in order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// HasFailures reports whether any route failed.
func (c *Collector) HasFailures() bool {
	return c.failures > 0
}
