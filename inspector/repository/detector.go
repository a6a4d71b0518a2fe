package repository

import (
	"bufio"
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"golang.org/x/mod/modfile"
)

const maxDepth = 64

// Detector identifies project root folders and provides project-related information
type Detector struct {
	fs afs.Service
	// marker file names or extensions, in priority order
	markers []string
}

// New creates a new project detector instance
func New(fs afs.Service) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	return &Detector{
		fs: fs,
		markers: []string{
			".sln",    // solution
			".csproj", // C# project
			"go.mod",  // Go module hosting C# fixtures or tools
			".git",    // generic VCS marker
		},
	}
}

// DetectProject identifies the project root for the given location and returns project info.
// Locations without any marker above them are reported as Unknown rooted at the location itself.
func (d *Detector) DetectProject(ctx context.Context, URL string) (*Project, error) {
	URL = strings.TrimRight(URL, "/")
	dir := URL
	object, err := d.fs.Object(ctx, URL)
	if err != nil {
		return nil, err
	}
	if !object.IsDir() {
		dir, _ = url.Split(URL, file.Scheme)
	}
	project := &Project{RootURL: dir, Kind: Unknown, Name: path.Base(url.Path(dir))}
	for i := 0; i < maxDepth; i++ {
		marker, kind, err := d.marker(ctx, dir)
		if err != nil {
			break // above the file system root
		}
		if marker != "" {
			project.RootURL, project.Kind, project.Marker = dir, kind, marker
			d.describe(ctx, project)
			break
		}
		parent, _ := url.Split(dir, file.Scheme)
		parent = strings.TrimRight(parent, "/")
		if parent == "" || parent == dir || len(parent) >= len(dir) {
			break
		}
		dir = parent
	}
	project.RelativePath = strings.TrimPrefix(strings.TrimPrefix(URL, project.RootURL), "/")
	return project, nil
}

// marker returns the first marker found directly in dir
func (d *Detector) marker(ctx context.Context, dir string) (string, Kind, error) {
	objects, err := d.fs.List(ctx, dir)
	if err != nil {
		return "", "", err
	}
	var found []string
	for _, object := range objects {
		found = append(found, object.Name())
	}
	for _, marker := range d.markers {
		for _, name := range found {
			if !matchMarker(name, marker) {
				continue
			}
			return name, determineProjectKind(marker), nil
		}
	}
	return "", "", nil
}

func matchMarker(name, marker string) bool {
	if strings.HasPrefix(marker, ".") && marker != ".git" {
		return strings.HasSuffix(name, marker) && len(name) > len(marker)
	}
	return name == marker
}

// describe extracts project name and origin from the marker file
func (d *Detector) describe(ctx context.Context, project *Project) {
	switch {
	case strings.HasSuffix(project.Marker, ".sln"), strings.HasSuffix(project.Marker, ".csproj"):
		project.Name = strings.TrimSuffix(project.Marker, path.Ext(project.Marker))
	case project.Kind == Go:
		if mod := d.goModule(ctx, url.Join(project.RootURL, project.Marker)); mod != nil {
			project.GoModule = mod
			project.Name = mod.Mod.Path
		}
	}
	project.Origin = d.gitOrigin(ctx, project.RootURL)
	if project.Kind == Git && project.Origin != "" {
		project.Name = strings.TrimSuffix(path.Base(project.Origin), ".git")
	}
}

func (d *Detector) goModule(ctx context.Context, URL string) *modfile.Module {
	content, err := d.fs.DownloadWithURL(ctx, URL)
	if err != nil || len(content) == 0 {
		return nil
	}
	mod, err := modfile.ParseLax(URL, content, nil)
	if err != nil || mod.Module == nil {
		return nil
	}
	return mod.Module
}

// gitOrigin extracts the origin URL from git config
func (d *Detector) gitOrigin(ctx context.Context, root string) string {
	content, err := d.fs.DownloadWithURL(ctx, url.Join(root, ".git", "config"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(content))
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			foundRemote = strings.Contains(line, `[remote "origin"]`)
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url") {
			if index := strings.Index(line, "="); index != -1 {
				return strings.TrimSpace(line[index+1:])
			}
		}
	}
	return ""
}

// determineProjectKind identifies the type of project based on the marker
func determineProjectKind(marker string) Kind {
	switch marker {
	case ".sln", ".csproj":
		return DotNet
	case "go.mod":
		return Go
	case ".git":
		return Git
	default:
		return Unknown
	}
}
