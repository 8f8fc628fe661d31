// Package tagname resolves a component's public tag name through three
// tiers: a doc tag on the class, the registration call in the sibling
// index file (with cross-module symbol resolution), and a filename
// fallback that always succeeds.
package tagname

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/UILens-hq/uilens/internal/parser"
	"github.com/UILens-hq/uilens/internal/program"
	"github.com/UILens-hq/uilens/internal/syntax"
	"github.com/UILens-hq/uilens/pkg/model"
)

// DefaultComponentSuffix is stripped from file base names by the
// filename fallback.
const DefaultComponentSuffix = ".component"

// Resolver resolves tag names against a program. The zero suffix means
// DefaultComponentSuffix.
type Resolver struct {
	prog   *program.Program
	suffix string
}

// NewResolver creates a resolver over the given program.
func NewResolver(prog *program.Program, componentSuffix string) *Resolver {
	if componentSuffix == "" {
		componentSuffix = DefaultComponentSuffix
	}
	return &Resolver{prog: prog, suffix: componentSuffix}
}

// Resolve tries the tiers in order, first success wins. It never fails:
// the filename tier is total.
func (r *Resolver) Resolve(ctx context.Context, facts *syntax.FileFacts, cls *syntax.ClassDecl) model.TagNameResolution {
	var warnings []string

	// Tier 1: doc tag, taken verbatim. Empty content falls through.
	if text, ok := cls.Doc.Tag(syntax.TagNameDocTag); ok {
		if tag := strings.TrimSpace(text); tag != "" {
			return model.TagNameResolution{Tag: tag, Tier: model.TierDocTag, Warnings: warnings}
		}
	}

	// Tier 2: registration call in the sibling index file.
	if tag, ok := r.fromRegistrationFile(ctx, facts, cls, &warnings); ok {
		return model.TagNameResolution{Tag: tag, Tier: model.TierRegistrationFile, Warnings: warnings}
	}

	// Tier 3: filename fallback, always succeeds.
	return model.TagNameResolution{
		Tag:      r.fromFilename(facts.Path),
		Tier:     model.TierFilenameFallback,
		Warnings: warnings,
	}
}

// fromRegistrationFile scans the component directory's index file for
// registration calls. A missing or unreadable index file fails the tier
// silently; malformed call shapes fail it with a warning.
func (r *Resolver) fromRegistrationFile(ctx context.Context, facts *syntax.FileFacts, cls *syntax.ClassDecl, warnings *[]string) (string, bool) {
	dir := filepath.Dir(facts.Path)

	indexPath := ""
	for _, ext := range parser.SourceExtensions {
		candidate := filepath.Join(dir, "index"+ext)
		if r.prog.FS().Exists(candidate) {
			indexPath = candidate
			break
		}
	}
	if indexPath == "" {
		return "", false
	}

	indexFacts, err := r.prog.Facts(ctx, indexPath)
	if err != nil {
		return "", false
	}

	site, ok := pickRegistration(indexFacts, cls.Name)
	if !ok {
		return "", false
	}

	if site.Arg == nil {
		*warnings = append(*warnings, fmt.Sprintf(
			"registration call in %s has no tag argument", indexPath))
		return "", false
	}

	switch site.Arg.Kind {
	case syntax.ExprString:
		return site.Arg.Value, true

	case syntax.ExprCall:
		if site.Arg.Callee == syntax.TagHelperName &&
			len(site.Arg.Args) > 0 && site.Arg.Args[0].Kind == syntax.ExprString {
			return Prefix(r.prog.FS(), dir, site.Arg.Args[0].Value), true
		}
		*warnings = append(*warnings, fmt.Sprintf(
			"unsupported registration argument %q in %s", site.Arg.Raw, indexPath))
		return "", false

	case syntax.ExprIdentifier:
		res := &resolution{resolver: r, ctx: ctx, componentDir: dir, visited: make(map[string]bool)}
		res.visited[program.Canonical(indexPath)] = true
		if value, ok := res.lookupLocal(indexFacts, site.Arg.Value); ok {
			return value, true
		}
		*warnings = append(*warnings, fmt.Sprintf(
			"could not resolve tag identifier %q referenced in %s", site.Arg.Value, indexPath))
		return "", false

	default:
		*warnings = append(*warnings, fmt.Sprintf(
			"unsupported registration argument %q in %s", site.Arg.Raw, indexPath))
		return "", false
	}
}

// pickRegistration prefers the call whose receiver matches the component
// class name, else the first call in file order. The first-in-file
// choice also serves index files with no discoverable class name.
func pickRegistration(facts *syntax.FileFacts, className string) (syntax.RegisterSite, bool) {
	for _, site := range facts.Registrations {
		if site.Receiver == className {
			return site, true
		}
	}
	if len(facts.Registrations) > 0 {
		return facts.Registrations[0], true
	}
	return syntax.RegisterSite{}, false
}

// fromFilename strips the extension and component suffix from the file
// base name, kebab-cases it, and applies namespace prefixing.
func (r *Resolver) fromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if stripped := strings.TrimSuffix(base, r.suffix); stripped != "" {
		base = stripped
	}
	return Prefix(r.prog.FS(), filepath.Dir(path), base)
}
