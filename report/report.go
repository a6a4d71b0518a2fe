// Package report renders analysis results.
package report

import (
	"fmt"
	"strings"

	"github.com/viant/readonly/config"
	"github.com/viant/readonly/inspector/repository"
	"github.com/viant/readonly/issue"
	"gopkg.in/yaml.v3"
)

// Report represents results of one run
type Report struct {
	Project *repository.Project `yaml:"project,omitempty"`
	Rule    string              `yaml:"rule"`
	Files   int                 `yaml:"files"`
	Issues  []issue.Issue       `yaml:"issues"`
	Fixed   []string            `yaml:"fixed,omitempty"`
}

// Emitter represents report generator
type Emitter interface {
	Emit(report *Report) ([]byte, error)
}

// NewEmitter returns an emitter for a config format
func NewEmitter(format string) (Emitter, error) {
	switch strings.ToLower(format) {
	case "", config.FormatText:
		return &Text{}, nil
	case config.FormatYAML:
		return &YAML{}, nil
	}
	return nil, fmt.Errorf("%w: %s", config.ErrInvalidFormat, format)
}

// Text renders one issue per line: path:line:col: severity: message [rule] (id)
type Text struct{}

func (t *Text) Emit(report *Report) ([]byte, error) {
	builder := &strings.Builder{}
	for _, item := range report.Issues {
		builder.WriteString(Line(item))
		builder.WriteByte('\n')
	}
	for _, fixed := range report.Fixed {
		builder.WriteString(fmt.Sprintf("fixed %s\n", fixed))
	}
	return []byte(builder.String()), nil
}

// Line formats a single issue
func Line(item issue.Issue) string {
	line := fmt.Sprintf("%s: %s: %s [%s]", item.Location, item.Severity, item.Message, item.Rule)
	if item.ID != "" {
		line += " (" + item.ID + ")"
	}
	return line
}

// YAML renders the whole report as a yaml document
type YAML struct{}

func (y *YAML) Emit(report *Report) ([]byte, error) {
	if report.Issues == nil {
		report.Issues = []issue.Issue{}
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}
