package repository

import "golang.org/x/mod/modfile"

// Kind classifies a detected project
type Kind string

const (
	DotNet  Kind = "dotnet"
	Go      Kind = "go"
	Git     Kind = "git"
	Unknown Kind = "unknown"
)

// Project represents information about a detected project
type Project struct {
	RootURL      string          `yaml:"root"`
	Kind         Kind            `yaml:"kind"`
	Name         string          `yaml:"name,omitempty"`
	Origin       string          `yaml:"origin,omitempty"` // git remote origin, if any
	Marker       string          `yaml:"marker,omitempty"` // file that identified the root
	RelativePath string          `yaml:"-"`                // path from project root to the inspected location
	GoModule     *modfile.Module `yaml:"-"`
}
