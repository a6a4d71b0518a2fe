package analyzer

import (
	"log/slog"

	"github.com/viant/readonly/issue"
)

// Option represents analyzer option
type Option func(*Analyzer)

// WithLogger sets logger, debug records trace collection and disqualification
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithSeverity sets reported issue severity
func WithSeverity(severity issue.Severity) Option {
	return func(a *Analyzer) {
		if severity != "" {
			a.severity = severity
		}
	}
}

// WithRule overrides the reported rule identifier
func WithRule(rule string) Option {
	return func(a *Analyzer) {
		if rule != "" {
			a.rule = rule
		}
	}
}
