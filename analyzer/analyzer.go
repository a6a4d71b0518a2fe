// Package analyzer finds private fields that are assigned only at initialization and
// could be declared readonly.
//
// The analysis works per type declaration. Candidate fields are collected from the
// member list, every non-constructor body is run through definite assignment analysis,
// and fields written on every path of some body are disqualified. Survivors are
// reported with a fix adding the readonly modifier.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/readonly/issue"
	"github.com/viant/readonly/syntax"
)

const (
	// RuleID identifies the rule in reports and suppression comments
	RuleID = "FieldCanBeMadeReadOnly.Local"
	// Message is the issue text
	Message = "Convert to readonly"
	// FixTitle is the title of the readonly fix
	FixTitle = "To readonly"
)

type (
	// Resolver provides semantic information for syntax references
	Resolver interface {
		// ResolveMember returns the symbol ref denotes, or syntax.Unresolved
		ResolveMember(ref syntax.Expr) syntax.Symbol
		// IsValueType reports whether typ is a value type, known is false when undecidable
		IsValueType(typ *syntax.TypeRef) (value bool, known bool)
	}

	// Suppressor reports whether the rule is disabled at a location
	Suppressor interface {
		IsSuppressed(loc syntax.Location) bool
	}

	// Analyzer represents readonly field analyzer
	Analyzer struct {
		logger   *slog.Logger
		severity issue.Severity
		rule     string
	}
)

// Analyze analyzes all types declared in unit, issues are flushed to sink once per type
func (a *Analyzer) Analyze(ctx context.Context, unit *syntax.Unit, resolver Resolver, suppressor Suppressor, sink issue.Sink) error {
	if unit == nil {
		return nil
	}
	w := a.newWalker(unit, resolver, suppressor, sink)
	for _, typ := range unit.Types {
		if err := w.typeDecl(ctx, typ); err != nil {
			return err
		}
	}
	return nil
}

// AnalyzeType analyzes a single type declaration of unit, including its nested types
func (a *Analyzer) AnalyzeType(ctx context.Context, unit *syntax.Unit, typ *syntax.TypeDecl, resolver Resolver, suppressor Suppressor, sink issue.Sink) error {
	return a.newWalker(unit, resolver, suppressor, sink).typeDecl(ctx, typ)
}

func (a *Analyzer) newWalker(unit *syntax.Unit, resolver Resolver, suppressor Suppressor, sink issue.Sink) *walker {
	if resolver == nil {
		resolver = unresolved{}
	}
	if suppressor == nil {
		suppressor = noSuppression{}
	}
	if sink == nil {
		sink = issue.SinkFunc(func(issue.Issue) {})
	}
	return &walker{
		Analyzer:   a,
		unit:       unit,
		resolver:   resolver,
		suppressor: suppressor,
		sink:       sink,
	}
}

// New creates an analyzer
func New(opts ...Option) *Analyzer {
	ret := &Analyzer{
		logger:   slog.New(slog.DiscardHandler),
		severity: issue.Suggestion,
		rule:     RuleID,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

type unresolved struct{}

func (unresolved) ResolveMember(syntax.Expr) syntax.Symbol { return syntax.Unresolved }

func (unresolved) IsValueType(*syntax.TypeRef) (bool, bool) { return false, false }

type noSuppression struct{}

func (noSuppression) IsSuppressed(syntax.Location) bool { return false }

func typeError(typ *syntax.TypeDecl, err error) error {
	return fmt.Errorf("failed to analyze type %s: %w", typ.QualifiedName(), err)
}
