// Package analyzer orchestrates the extraction pipeline: visit, discover,
// chain, extract, resolve tag name, assemble the component model.
package analyzer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/UILens-hq/uilens/internal/chain"
	"github.com/UILens-hq/uilens/internal/discovery"
	"github.com/UILens-hq/uilens/internal/extract"
	"github.com/UILens-hq/uilens/internal/fsys"
	"github.com/UILens-hq/uilens/internal/parser"
	"github.com/UILens-hq/uilens/internal/program"
	"github.com/UILens-hq/uilens/internal/syntax"
	"github.com/UILens-hq/uilens/internal/tagname"
	"github.com/UILens-hq/uilens/pkg/model"
)

// Analyzer runs the pipeline over one file at a time. All evaluation is
// synchronous; an Analyzer must not be shared across goroutines.
type Analyzer struct {
	prog   *program.Program
	tags   *tagname.Resolver
	strict bool
	suffix string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStrict makes unresolved inheritance bases fatal instead of
// silently accepted.
func WithStrict(strict bool) Option {
	return func(a *Analyzer) { a.strict = strict }
}

// WithComponentSuffix overrides the component file suffix used by the
// filename fallback tier.
func WithComponentSuffix(suffix string) Option {
	return func(a *Analyzer) { a.suffix = suffix }
}

// New creates an analyzer over the given file access.
func New(fs fsys.FS, opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	a.prog = program.New(parser.NewParser(), fs)
	a.tags = tagname.NewResolver(a.prog, a.suffix)
	return a
}

// Result is the outcome of analyzing one file. A hard error suppresses
// the model but warnings and errors are always reported.
type Result struct {
	Model    *model.ComponentModel `json:"model,omitempty"`
	Warnings []string              `json:"warnings,omitempty"`
	Errors   []string              `json:"errors,omitempty"`
}

// AnalyzeFile reads, parses and analyzes the file at path.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) *Result {
	facts, err := a.prog.Facts(ctx, path)
	if err != nil {
		return &Result{Errors: []string{err.Error()}}
	}
	return a.analyze(ctx, facts)
}

// AnalyzeSource analyzes in-memory content under the given path. Tag
// resolution still probes sibling files through the file access.
func (a *Analyzer) AnalyzeSource(ctx context.Context, path string, content []byte) *Result {
	facts, err := a.prog.CollectSource(ctx, path, content)
	if err != nil {
		return &Result{Errors: []string{err.Error()}}
	}
	return a.analyze(ctx, facts)
}

func (a *Analyzer) analyze(ctx context.Context, facts *syntax.FileFacts) *Result {
	result := &Result{}

	cls, method, ok := discovery.Discover(facts)
	if !ok {
		result.Errors = append(result.Errors,
			fmt.Sprintf("no class declaration found in %s", facts.Path))
		return result
	}

	ch := chain.Resolve(ctx, a.prog, facts, cls)
	if a.strict && len(ch.Unresolved) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"unresolved base class %s of %s",
			strings.Join(ch.Unresolved, ", "), cls.Name))
		return result
	}

	properties, propWarnings := chain.Merge(ch.Links, extract.Properties,
		func(p model.PropertyDescriptor) string { return p.Name }, nil)
	result.Warnings = append(result.Warnings, propWarnings...)

	events, eventWarnings := chain.Merge(ch.Links, extract.Events,
		func(e model.EventDescriptor) string { return e.Name }, nil)
	result.Warnings = append(result.Warnings, eventWarnings...)

	tag := a.tags.Resolve(ctx, facts, cls)
	result.Warnings = append(result.Warnings, tag.Warnings...)

	if properties == nil {
		properties = []model.PropertyDescriptor{}
	}
	if events == nil {
		events = []model.EventDescriptor{}
	}

	result.Model = &model.ComponentModel{
		ClassName:       cls.Name,
		TagName:         tag.Tag,
		TagTier:         tag.Tier,
		DiscoveryMethod: string(method),
		Properties:      properties,
		Events:          events,
		FilePath:        facts.Path,
		ImportPath:      strings.TrimSuffix(facts.Path, filepath.Ext(facts.Path)),
	}

	log.Debug().
		Str("file", facts.Path).
		Str("class", cls.Name).
		Str("tag", tag.Tag).
		Str("tier", string(tag.Tier)).
		Int("properties", len(properties)).
		Int("events", len(events)).
		Msg("component analyzed")

	return result
}
