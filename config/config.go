// Package config defines readonly analyzer configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/readonly/issue"
	"gopkg.in/yaml.v3"
)

const (
	// FormatText renders one issue per line
	FormatText = "text"
	// FormatYAML renders a yaml report document
	FormatYAML = "yaml"
)

var (
	// ErrInvalidSeverity is returned for an unknown severity name
	ErrInvalidSeverity = errors.New("invalid severity")
	// ErrInvalidFormat is returned for an unknown report format
	ErrInvalidFormat = errors.New("invalid format")
)

// Config represents analyzer configuration
type Config struct {
	Enabled            bool     `yaml:"enabled"`
	Severity           string   `yaml:"severity"`
	Include            []string `yaml:"include,omitempty"`
	Exclude            []string `yaml:"exclude,omitempty"`
	SkipGenerated      bool     `yaml:"skipGenerated"`
	SuppressionKeyword string   `yaml:"suppressionKeyword"`
	Format             string   `yaml:"format"`
	Fix                bool     `yaml:"fix"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Enabled:            true,
		Severity:           string(issue.Suggestion),
		Include:            []string{"*.cs"},
		Exclude:            []string{"bin/*", "obj/*"},
		SkipGenerated:      true,
		SuppressionKeyword: "FieldCanBeMadeReadOnly.Local",
		Format:             FormatText,
	}
}

// Load loads configuration from URL, unset options keep their defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret := Default()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}

// Validate checks severity and format
func (c *Config) Validate() error {
	if _, ok := issue.ParseSeverity(c.Severity); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, c.Severity)
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// IssueSeverity returns configured severity
func (c *Config) IssueSeverity() issue.Severity {
	if severity, ok := issue.ParseSeverity(c.Severity); ok {
		return severity
	}
	return issue.Suggestion
}

// Matches reports whether a file, given by its path relative to the analysed root, is selected
func (c *Config) Matches(relative string) bool {
	relative = strings.TrimPrefix(relative, "/")
	if matchAny(c.Exclude, relative) {
		return false
	}
	if len(c.Include) == 0 {
		return true
	}
	return matchAny(c.Include, relative)
}

// matchAny matches patterns against the relative path, its base name and each leading directory prefix
func matchAny(patterns []string, relative string) bool {
	base := path.Base(relative)
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, relative); ok {
			return true
		}
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
		if strings.HasSuffix(pattern, "/*") {
			dir := strings.TrimSuffix(pattern, "/*")
			for _, segment := range strings.Split(path.Dir(relative), "/") {
				if ok, _ := path.Match(dir, segment); ok {
					return true
				}
			}
		}
	}
	return false
}
