// Package program maintains the lazily parsed set of files an analysis
// touches and resolves names across them. It is the type-resolution
// capability behind inheritance-chain walking and symbol resolution.
package program

import (
	"context"
	"fmt"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/UILens-hq/uilens/internal/fsys"
	"github.com/UILens-hq/uilens/internal/parser"
	"github.com/UILens-hq/uilens/internal/syntax"
)

const factsCacheSize = 256

// Program parses files on demand through the file-access capability and
// caches their collected facts. Facts are immutable, so the cache is only
// a parse-avoidance layer; resolution outcomes are never memoized.
type Program struct {
	parser *parser.Parser
	fs     fsys.FS
	cache  *lru.Cache[string, *syntax.FileFacts]
}

// New creates a program over the given file access.
func New(p *parser.Parser, fs fsys.FS) *Program {
	cache, _ := lru.New[string, *syntax.FileFacts](factsCacheSize)
	return &Program{parser: p, fs: fs, cache: cache}
}

// FS returns the file-access capability the program reads through.
func (pr *Program) FS() fsys.FS {
	return pr.fs
}

// Facts returns the collected facts for a file, parsing it at most once
// per cache lifetime. Read and parse failures are returned as errors;
// resolution callers treat a failed file as a candidate that is absent.
func (pr *Program) Facts(ctx context.Context, path string) (*syntax.FileFacts, error) {
	canonical := Canonical(path)
	if facts, ok := pr.cache.Get(canonical); ok {
		return facts, nil
	}

	content, err := pr.fs.Read(canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", canonical, err)
	}

	src, err := pr.parser.Parse(ctx, canonical, content)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	facts := syntax.Collect(src)
	pr.cache.Add(canonical, facts)
	return facts, nil
}

// CollectSource parses in-memory content without touching the file
// access, for callers that already hold the text.
func (pr *Program) CollectSource(ctx context.Context, path string, content []byte) (*syntax.FileFacts, error) {
	canonical := Canonical(path)
	src, err := pr.parser.Parse(ctx, canonical, content)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	facts := syntax.Collect(src)
	pr.cache.Add(canonical, facts)
	return facts, nil
}

// ResolveClass resolves an identifier to a class declaration: first among
// the file's own classes, then through relative named or default imports.
// Library imports (non-relative specifiers) do not resolve; those bases
// terminate inheritance chains.
func (pr *Program) ResolveClass(ctx context.Context, from *syntax.FileFacts, name string) (*syntax.ClassDecl, *syntax.FileFacts, bool) {
	if cls, ok := from.Class(name); ok {
		return cls, from, true
	}

	for _, imp := range from.Imports {
		imported, isDefault, ok := importBinding(imp, name)
		if !ok {
			continue
		}
		target, ok := ResolveModule(pr.fs, filepath.Dir(from.Path), imp.Specifier)
		if !ok {
			continue
		}
		facts, err := pr.Facts(ctx, target)
		if err != nil {
			continue
		}
		if isDefault {
			for _, cls := range facts.Classes {
				if cls.DefaultExported {
					return cls, facts, true
				}
			}
			continue
		}
		if cls, ok := facts.Class(imported); ok {
			return cls, facts, true
		}
	}
	return nil, nil, false
}

// importBinding reports how an import declaration binds the given local
// name: the original exported name, or default-import marker.
func importBinding(imp syntax.ImportDecl, local string) (imported string, isDefault, ok bool) {
	if imp.Default == local {
		return "", true, true
	}
	for _, n := range imp.Named {
		if n.Local == local {
			return n.Imported, false, true
		}
	}
	return "", false, false
}

// Canonical cleans a path for use as a cache and visited-set key.
func Canonical(path string) string {
	return filepath.Clean(path)
}
