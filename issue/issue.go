// Package issue defines analysis findings, their fixes and sinks collecting them.
package issue

import (
	"strings"

	"github.com/viant/readonly/syntax"
)

// Severity represents issue severity
type Severity string

const (
	Hint       Severity = "hint"
	Suggestion Severity = "suggestion"
	Warning    Severity = "warning"
	Error      Severity = "error"
)

// ParseSeverity parses severity name, case insensitive
func ParseSeverity(name string) (Severity, bool) {
	switch s := Severity(strings.ToLower(strings.TrimSpace(name))); s {
	case Hint, Suggestion, Warning, Error:
		return s, true
	}
	return "", false
}

type (
	// Edit replaces source text within Span with NewText
	Edit struct {
		Span    syntax.Span
		NewText string
	}

	// Fix represents a titled set of source edits
	Fix struct {
		Title string
		Edits []Edit
	}

	// Issue represents a single finding
	Issue struct {
		ID       string          `yaml:"id,omitempty"`
		Rule     string          `yaml:"rule"`
		Message  string          `yaml:"message"`
		Severity Severity        `yaml:"severity"`
		Location syntax.Location `yaml:"location"`
		Symbol   string          `yaml:"symbol,omitempty"`
		Fix      *Fix            `yaml:"-"`
	}

	// Sink receives issues as they are emitted
	Sink interface {
		Report(issue Issue)
	}

	// SinkFunc adapts a function to Sink
	SinkFunc func(issue Issue)
)

// Report calls fn
func (fn SinkFunc) Report(issue Issue) {
	fn(issue)
}

// Collector accumulates reported issues in order
type Collector struct {
	Issues []Issue
}

// Report appends issue
func (c *Collector) Report(issue Issue) {
	c.Issues = append(c.Issues, issue)
}

// Edits returns all fix edits of collected issues
func (c *Collector) Edits() []Edit {
	var result []Edit
	for _, item := range c.Issues {
		if item.Fix != nil {
			result = append(result, item.Fix.Edits...)
		}
	}
	return result
}
