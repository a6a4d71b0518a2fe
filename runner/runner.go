// Package runner analyzes C# sources found under file system locations.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/readonly/analyzer"
	"github.com/viant/readonly/config"
	"github.com/viant/readonly/inspector"
	"github.com/viant/readonly/inspector/repository"
	"github.com/viant/readonly/inspector/resolver"
	"github.com/viant/readonly/issue"
	"github.com/viant/readonly/report"
	"github.com/viant/readonly/suppress"
)

// Runner walks locations and analyzes every selected source file
type Runner struct {
	cfg       *config.Config
	fs        afs.Service
	logger    *slog.Logger
	inspector *inspector.Factory
	analyzer  *analyzer.Analyzer
	detector  *repository.Detector
	mux       sync.Mutex
	cache     map[uint64][]issue.Issue
}

// Result represents outcome of a run
type Result struct {
	Project *repository.Project
	Files   []string
	Issues  []issue.Issue
	Fixed   []string
}

// Report converts result to a report
func (r *Result) Report() *report.Report {
	return &report.Report{
		Project: r.Project,
		Rule:    analyzer.RuleID,
		Files:   len(r.Files),
		Issues:  r.Issues,
		Fixed:   r.Fixed,
	}
}

// source represents a selected file
type source struct {
	URL      string
	relative string
	content  []byte
}

// Run analyzes roots, each root is either a directory or a single file
func (r *Runner) Run(ctx context.Context, roots ...string) (*Result, error) {
	result := &Result{}
	if !r.cfg.Enabled {
		return result, nil
	}
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sources, err := r.sources(ctx, root)
		if err != nil {
			return nil, err
		}
		for _, src := range sources {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			issues, err := r.AnalyzeSource(ctx, src.relative, src.content)
			if err != nil {
				return nil, err
			}
			result.Files = append(result.Files, src.relative)
			result.Issues = append(result.Issues, issues...)
			if !r.cfg.Fix || len(issues) == 0 {
				continue
			}
			fixed, err := r.fix(ctx, src, issues)
			if err != nil {
				return nil, err
			}
			if fixed {
				result.Fixed = append(result.Fixed, src.relative)
			}
		}
	}
	if len(roots) > 0 {
		project, err := r.detector.DetectProject(ctx, roots[0])
		if err != nil {
			r.logger.Debug("project not detected", "root", roots[0], "error", err)
		}
		result.Project = project
	}
	sort.Strings(result.Files)
	sort.Strings(result.Fixed)
	sort.SliceStable(result.Issues, func(i, j int) bool {
		left, right := result.Issues[i].Location, result.Issues[j].Location
		if left.File != right.File {
			return left.File < right.File
		}
		return left.Offset < right.Offset
	})
	return result, nil
}

// AnalyzeSource analyzes a single source, results are cached by name and content digest
func (r *Runner) AnalyzeSource(ctx context.Context, filename string, content []byte) ([]issue.Issue, error) {
	key, err := issue.Hash(append([]byte(filename+"\x00"), content...))
	if err != nil {
		return nil, err
	}
	r.mux.Lock()
	cached, ok := r.cache[key]
	r.mux.Unlock()
	if ok {
		r.logger.Debug("cached", "file", filename, "issues", len(cached))
		return cached, nil
	}
	unit, err := r.inspector.InspectSource(ctx, filename, content)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Warn("failed to parse", "file", filename, "error", err)
		return nil, nil
	}
	if unit.Incomplete {
		r.logger.Warn("source has syntax errors", "file", filename)
	}
	collector := &issue.Collector{}
	err = r.analyzer.Analyze(ctx, unit, resolver.New(unit), suppress.New(unit, r.cfg.SuppressionKeyword), collector)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", filename, err)
	}
	for i := range collector.Issues {
		if collector.Issues[i].ID, err = issue.Fingerprint(collector.Issues[i]); err != nil {
			return nil, err
		}
	}
	r.logger.Debug("analyzed", "file", filename, "types", len(unit.Types), "issues", len(collector.Issues))
	r.mux.Lock()
	r.cache[key] = collector.Issues
	r.mux.Unlock()
	return collector.Issues, nil
}

// sources lists selected C# files under root
func (r *Runner) sources(ctx context.Context, root string) ([]*source, error) {
	object, err := r.fs.Object(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s: %w", root, err)
	}
	if !object.IsDir() {
		content, err := r.fs.DownloadWithURL(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", root, err)
		}
		_, name := url.Split(root, file.Scheme)
		if !r.selected(name, content) {
			return nil, nil
		}
		return []*source{{URL: root, relative: name, content: content}}, nil
	}
	var result []*source
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		relative := path.Join(parent, info.Name())
		if !r.inspector.IsSupported(relative) || !r.cfg.Matches(relative) {
			return true, nil
		}
		URL := url.Join(url.Join(baseURL, parent), info.Name())
		var content []byte
		if reader != nil {
			if content, err = io.ReadAll(reader); err != nil {
				return false, fmt.Errorf("failed to read file %s: %w", URL, err)
			}
		} else if content, err = r.fs.DownloadWithURL(ctx, URL); err != nil {
			return false, fmt.Errorf("failed to read file %s: %w", URL, err)
		}
		if !r.selected(relative, content) {
			return true, nil
		}
		result = append(result, &source{URL: URL, relative: relative, content: content})
		return true, nil
	}
	if err := r.fs.Walk(ctx, root, visitor); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) selected(name string, content []byte) bool {
	if !r.inspector.IsSupported(name) {
		return false
	}
	if r.cfg.SkipGenerated && suppress.IsGenerated(name, content) {
		r.logger.Debug("skipped generated", "file", name)
		return false
	}
	return true
}

// fix applies issue fixes and writes the source back
func (r *Runner) fix(ctx context.Context, src *source, issues []issue.Issue) (bool, error) {
	collector := &issue.Collector{Issues: issues}
	edits := collector.Edits()
	if len(edits) == 0 {
		return false, nil
	}
	fixed, err := issue.ApplyEdits(src.content, edits)
	if err != nil {
		return false, fmt.Errorf("failed to fix %s: %w", src.relative, err)
	}
	if bytes.Equal(fixed, src.content) {
		return false, nil
	}
	if err = r.fs.Upload(ctx, src.URL, 0644, bytes.NewReader(fixed)); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", src.URL, err)
	}
	r.logger.Debug("fixed", "file", src.relative, "edits", len(edits))
	return true, nil
}

// New creates a runner
func New(cfg *config.Config, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	ret := &Runner{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
		cache:  map[uint64][]issue.Issue{},
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	ret.inspector = inspector.NewFactory(ret.fs)
	ret.detector = repository.New(ret.fs)
	ret.analyzer = analyzer.New(analyzer.WithLogger(ret.logger), analyzer.WithSeverity(cfg.IssueSeverity()))
	return ret
}
