package tagname

import (
	"context"
	"path/filepath"

	"github.com/UILens-hq/uilens/internal/program"
	"github.com/UILens-hq/uilens/internal/syntax"
)

// resolution carries the state of one identifier-to-value resolution:
// the visited set guarantees termination on cyclic re-export graphs and
// is local to this call, never shared or reused.
type resolution struct {
	resolver     *Resolver
	ctx          context.Context
	componentDir string
	visited      map[string]bool
}

// lookupLocal resolves an identifier within one file: top-level variable
// declarations first, then named imports. Only relative module
// specifiers are followed. The file itself must already be marked
// visited by the caller, so same-file recursion never trips the guard.
func (s *resolution) lookupLocal(facts *syntax.FileFacts, name string) (string, bool) {
	if v, ok := facts.Var(name); ok {
		return s.varValue(v)
	}

	for _, imp := range facts.Imports {
		for _, n := range imp.Named {
			if n.Local != name {
				continue
			}
			target, ok := program.ResolveModule(s.resolver.prog.FS(), filepath.Dir(facts.Path), imp.Specifier)
			if !ok {
				return "", false // package specifiers are unsupported
			}
			return s.resolveExported(target, n.Imported)
		}
	}
	return "", false
}

// varValue interprets a variable initializer: a literal directly, or the
// tag-construction helper with namespace prefixing applied. Anything
// else is unresolvable.
func (s *resolution) varValue(v syntax.VarDecl) (string, bool) {
	switch v.Init.Kind {
	case syntax.ExprString:
		return v.Init.Value, true
	case syntax.ExprCall:
		if v.Init.Callee == syntax.TagHelperName &&
			len(v.Init.Args) > 0 && v.Init.Args[0].Kind == syntax.ExprString {
			return Prefix(s.resolver.prog.FS(), s.componentDir, v.Init.Args[0].Value), true
		}
	}
	return "", false
}

// resolveExported resolves an exported name inside the file at path.
// A previously visited file immediately fails the branch; read and parse
// failures are treated as "candidate absent".
func (s *resolution) resolveExported(path, name string) (string, bool) {
	canonical := program.Canonical(path)
	if s.visited[canonical] {
		return "", false
	}
	s.visited[canonical] = true

	facts, err := s.resolver.prog.Facts(s.ctx, canonical)
	if err != nil {
		return "", false
	}
	return s.exportedIn(facts, name)
}

// exportedIn searches a file for the exported name: a matching top-level
// declaration wins, else its export declarations are scanned in order.
func (s *resolution) exportedIn(facts *syntax.FileFacts, name string) (string, bool) {
	if v, ok := facts.Var(name); ok {
		if value, ok := s.varValue(v); ok {
			return value, true
		}
	}

	fromDir := filepath.Dir(facts.Path)
	for _, exp := range facts.Exports {
		if exp.Star {
			// export * from './x' forwards the same name transitively;
			// a failed branch falls through to later exports.
			target, ok := program.ResolveModule(s.resolver.prog.FS(), fromDir, exp.Specifier)
			if !ok {
				continue
			}
			if value, ok := s.resolveExported(target, name); ok {
				return value, true
			}
			continue
		}

		for _, n := range exp.Named {
			if n.Exported != name {
				continue
			}
			if exp.Specifier == "" {
				// same-file re-export: recurse on the local name here
				if value, ok := s.lookupLocal(facts, n.Local); ok {
					return value, true
				}
				continue
			}
			target, ok := program.ResolveModule(s.resolver.prog.FS(), fromDir, exp.Specifier)
			if !ok {
				continue
			}
			if value, ok := s.resolveExported(target, n.Local); ok {
				return value, true
			}
		}
	}
	return "", false
}
