package analyzer

import (
	"log/slog"

	"github.com/viant/readonly/issue"
	"github.com/viant/readonly/syntax"
)

// emit reports surviving candidates of a session in declaration order
func (w *walker) emit(s *session) {
	for _, c := range s.candidates {
		w.sink.Report(w.newIssue(c))
	}
	w.logger.Debug("emitted issues",
		slog.String("type", s.typ.QualifiedName()),
		slog.Int("issues", len(s.candidates)))
}

func (w *walker) newIssue(c *FieldCandidate) issue.Issue {
	return issue.Issue{
		Rule:     w.rule,
		Message:  Message,
		Severity: w.severity,
		Location: c.Var.NameLoc,
		Symbol:   c.Symbol(),
		Fix:      readonlyFix(c.Field, w.unit),
	}
}

// readonlyFix replaces the field declaration with a copy carrying the readonly modifier
func readonlyFix(field *syntax.FieldDecl, unit *syntax.Unit) *issue.Fix {
	clone := syntax.CloneField(field)
	clone.Modifiers = clone.Modifiers.With(syntax.Readonly)
	return &issue.Fix{
		Title: FixTitle,
		Edits: []issue.Edit{{Span: field.Span, NewText: syntax.FormatField(clone, unit)}},
	}
}
