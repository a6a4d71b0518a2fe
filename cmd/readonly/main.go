// Command readonly reports private fields of C# types that could be declared readonly.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/readonly/config"
	"github.com/viant/readonly/report"
	"github.com/viant/readonly/runner"
)

const (
	exitOK     = 0
	exitIssues = 1
	exitError  = 2
)

const usage = `readonly - find C# fields that can be made readonly

Usage:
  readonly [options] <path>...

Options:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, afs.New(), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, fs afs.Service, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("readonly", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configURL := flags.String("config", "", "yaml configuration location")
	format := flags.String("format", "", "report format: text or yaml")
	fix := flags.Bool("fix", false, "rewrite sources applying fixes")
	verbose := flags.Bool("v", false, "verbose logging")
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitError
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configURL != "" {
		loaded, err := config.Load(ctx, fs, location(*configURL))
		if err != nil {
			logger.Error("invalid configuration", "error", err)
			return exitError
		}
		cfg = loaded
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *fix {
		cfg.Fix = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return exitError
	}
	emitter, err := report.NewEmitter(cfg.Format)
	if err != nil {
		logger.Error("invalid format", "error", err)
		return exitError
	}

	roots := flags.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}
	for i, root := range roots {
		roots[i] = location(root)
	}
	result, err := runner.New(cfg, runner.WithFS(fs), runner.WithLogger(logger)).Run(ctx, roots...)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		return exitError
	}
	data, err := emitter.Emit(result.Report())
	if err != nil {
		logger.Error("failed to render report", "error", err)
		return exitError
	}
	if _, err = stdout.Write(data); err != nil {
		return exitError
	}
	if len(result.Issues) > 0 && !cfg.Fix {
		return exitIssues
	}
	return exitOK
}

// location turns local paths into absolute ones, URLs are kept
func location(target string) string {
	if strings.Contains(target, "://") {
		return target
	}
	if abs, err := filepath.Abs(target); err == nil {
		return abs
	}
	return target
}
