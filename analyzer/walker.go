package analyzer

import (
	"context"
	"log/slog"

	"github.com/viant/readonly/analyzer/flow"
	"github.com/viant/readonly/issue"
	"github.com/viant/readonly/syntax"
)

// walker traverses type declarations of one unit, sessions stack with nested types
type walker struct {
	*Analyzer
	unit       *syntax.Unit
	resolver   Resolver
	suppressor Suppressor
	sink       issue.Sink
	sessions   []*session
}

func (w *walker) current() *session {
	return w.sessions[len(w.sessions)-1]
}

func (w *walker) typeDecl(ctx context.Context, typ *syntax.TypeDecl) error {
	if typ == nil {
		return nil
	}
	s := &session{typ: typ, candidates: collectCandidates(typ, w.resolver, w.suppressor)}
	w.logger.Debug("collected candidates",
		slog.String("type", typ.QualifiedName()),
		slog.Any("fields", s.names()))
	w.sessions = append(w.sessions, s)
	defer func() { w.sessions = w.sessions[:len(w.sessions)-1] }()
	for _, m := range typ.Members {
		if err := w.member(ctx, m); err != nil {
			s.reset()
			if _, nested := m.(*syntax.TypeDecl); nested {
				return err
			}
			return typeError(typ, err)
		}
	}
	w.emit(s)
	s.reset()
	return nil
}

func (w *walker) member(ctx context.Context, m syntax.Member) error {
	scope := &w.current().scope
	switch actual := m.(type) {
	case *syntax.TypeDecl:
		return w.typeDecl(ctx, actual)
	case *syntax.ConstructorDecl:
		// constructor writes are initialization
		return nil
	case *syntax.FieldDecl:
		return scope.replace(nil, func() error {
			for _, v := range actual.Variables {
				if err := w.closures(ctx, "field "+v.Name, v.Initializer); err != nil {
					return err
				}
			}
			return nil
		})
	case *syntax.MethodDecl:
		return scope.replace(syntax.ParamNames(actual.Params), func() error {
			return w.body(ctx, actual.Name, actual.Body)
		})
	case *syntax.DestructorDecl:
		return scope.replace(nil, func() error {
			return w.body(ctx, "~"+actual.Name, actual.Body)
		})
	case *syntax.OperatorDecl:
		return scope.replace(syntax.ParamNames(actual.Params), func() error {
			return w.body(ctx, "operator "+actual.Operator, actual.Body)
		})
	case *syntax.IndexerDecl:
		return scope.replace(syntax.ParamNames(actual.Params), func() error {
			return w.accessors(ctx, "this[]", actual.Accessors)
		})
	case *syntax.PropertyDecl:
		return scope.replace(nil, func() error {
			if err := w.accessors(ctx, actual.Name, actual.Accessors); err != nil {
				return err
			}
			return w.closures(ctx, actual.Name, actual.Initializer)
		})
	case *syntax.EventDecl:
		return scope.replace(nil, func() error {
			name := "event"
			if len(actual.Names) > 0 {
				name = actual.Names[0]
			}
			if err := w.accessors(ctx, name, actual.Accessors); err != nil {
				return err
			}
			for _, value := range actual.Values {
				if err := w.closures(ctx, name, value); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return nil
}

func (w *walker) accessors(ctx context.Context, owner string, accessors []*syntax.Accessor) error {
	for _, accessor := range accessors {
		if err := w.body(ctx, owner+"."+accessor.Kind, accessor.Body); err != nil {
			return err
		}
	}
	return nil
}

// body analyzes a member or nested function body, then the closures it declares
func (w *walker) body(ctx context.Context, owner string, body *syntax.Block) error {
	if body == nil {
		return nil
	}
	if err := w.analyzeBlock(ctx, owner, body); err != nil {
		return err
	}
	return w.closures(ctx, owner, body)
}

// closures analyzes lambdas, anonymous methods and local functions found in node as bodies of their own
func (w *walker) closures(ctx context.Context, owner string, node syntax.Node) error {
	if node == nil {
		return nil
	}
	scope := &w.current().scope
	var err error
	syntax.Inspect(node, func(n syntax.Node) bool {
		if err != nil {
			return false
		}
		switch actual := n.(type) {
		case *syntax.Lambda:
			err = scope.enter(syntax.ParamNames(actual.Params), func() error {
				return w.body(ctx, owner+".lambda", actual.Body)
			})
			return false
		case *syntax.LocalFuncStmt:
			err = scope.enter(syntax.ParamNames(actual.Params), func() error {
				return w.body(ctx, owner+"."+actual.Name, actual.Body)
			})
			return false
		}
		return true
	})
	return err
}

// analyzeBlock disqualifies every unshadowed candidate the block assigns on all paths
func (w *walker) analyzeBlock(ctx context.Context, owner string, block *syntax.Block) error {
	analysis := flow.New(block)
	scope := &w.current().scope
	for _, s := range w.sessions {
		kept := make([]*FieldCandidate, 0, len(s.candidates))
		for _, c := range s.candidates {
			if scope.shadows(c.Name()) {
				kept = append(kept, c)
				continue
			}
			status, err := analysis.Analyze(ctx, w.writesTo(c), flow.PotentiallyAssigned)
			if err != nil {
				return err
			}
			if status == flow.DefinitelyAssigned {
				w.logger.Debug("disqualified field",
					slog.String("field", c.Symbol()),
					slog.String("member", owner))
				continue
			}
			kept = append(kept, c)
		}
		s.candidates = kept
	}
	return nil
}

func (w *walker) writesTo(c *FieldCandidate) flow.Target {
	return func(ref syntax.Expr) bool {
		return w.resolver.ResolveMember(ref).IsField(c.Var)
	}
}
