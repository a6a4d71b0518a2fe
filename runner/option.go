package runner

import (
	"log/slog"

	"github.com/viant/afs"
)

// Option represents runner option
type Option func(*Runner)

// WithFS sets file system service
func WithFS(fs afs.Service) Option {
	return func(r *Runner) {
		r.fs = fs
	}
}

// WithLogger sets logger, also used by the analyzer
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}
