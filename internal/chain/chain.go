// Package chain builds the base-first inheritance chain of a component
// class and provides the generic per-chain extraction and merge used by
// the property and event extractors.
package chain

import (
	"context"

	"github.com/UILens-hq/uilens/internal/program"
	"github.com/UILens-hq/uilens/internal/syntax"
)

// Link is one class in a chain together with the facts of the file it
// was declared in.
type Link struct {
	Class *syntax.ClassDecl
	Facts *syntax.FileFacts
}

// Chain is a base-first ordered class sequence. Unresolved lists the
// base names the chain terminated on (library bases, typically).
type Chain struct {
	Links      []Link
	Unresolved []string
}

// Resolve walks extends clauses upward from the discovered class,
// resolving each named base through the program. The chain stops at the
// first base that does not resolve to a declaration in the analyzed
// files and records its name.
func Resolve(ctx context.Context, prog *program.Program, facts *syntax.FileFacts, cls *syntax.ClassDecl) *Chain {
	// derived-first while walking, reversed below
	var links []Link
	var unresolved []string

	seen := make(map[*syntax.ClassDecl]bool)
	current, currentFacts := cls, facts
	for current != nil && !seen[current] {
		seen[current] = true
		links = append(links, Link{Class: current, Facts: currentFacts})

		if current.Extends == "" {
			break
		}
		if !current.ExtendsIdent {
			unresolved = append(unresolved, current.Extends)
			break
		}
		base, baseFacts, ok := prog.ResolveClass(ctx, currentFacts, current.Extends)
		if !ok {
			unresolved = append(unresolved, current.Extends)
			break
		}
		current, currentFacts = base, baseFacts
	}

	for i, j := 0, len(links)-1; i < j; i, j = i+1, j-1 {
		links[i], links[j] = links[j], links[i]
	}
	return &Chain{Links: links, Unresolved: unresolved}
}

// Extractor produces items and warnings for one class of a chain.
type Extractor[T any] func(Link) ([]T, []string)

// Merge applies an extractor to every chain link base-first and merges
// the items by key. On a key collision the later item replaces the
// stored value but keeps the position of its first occurrence, so an
// override changes a member's value, not its order. A non-nil combine
// function replaces that default policy.
func Merge[T any](links []Link, extract Extractor[T], key func(T) string, combine func(old, new T) T) ([]T, []string) {
	var items []T
	var warnings []string
	index := make(map[string]int)

	for _, link := range links {
		extracted, warns := extract(link)
		warnings = append(warnings, warns...)
		for _, item := range extracted {
			k := key(item)
			if at, ok := index[k]; ok {
				if combine != nil {
					items[at] = combine(items[at], item)
				} else {
					items[at] = item
				}
				continue
			}
			index[k] = len(items)
			items = append(items, item)
		}
	}
	return items, warnings
}
