package chain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UILens-hq/uilens/internal/fsys"
	"github.com/UILens-hq/uilens/internal/parser"
	"github.com/UILens-hq/uilens/internal/program"
	"github.com/UILens-hq/uilens/internal/syntax"
)

func resolveChain(t *testing.T, files map[string]string, entry string) *Chain {
	t.Helper()
	ctx := context.Background()
	prog := program.New(parser.NewParser(), fsys.NewMem(files))

	facts, err := prog.Facts(ctx, entry)
	require.NoError(t, err)
	require.NotEmpty(t, facts.Classes)

	return Resolve(ctx, prog, facts, facts.Classes[0])
}

func TestResolveAcrossFiles(t *testing.T) {
	ch := resolveChain(t, map[string]string{
		"/src/button/button.component.ts": `
import Base from '../base/base.component';
export default class Button extends Base {}
`,
		"/src/base/base.component.ts": `
import { LitElement } from 'lit';
export default class Base extends LitElement {}
`,
	}, "/src/button/button.component.ts")

	require.Len(t, ch.Links, 2)
	assert.Equal(t, "Base", ch.Links[0].Class.Name)
	assert.Equal(t, "Button", ch.Links[1].Class.Name)
	assert.Equal(t, []string{"LitElement"}, ch.Unresolved)
}

func TestResolveRootClass(t *testing.T) {
	ch := resolveChain(t, map[string]string{
		"/src/widget.component.ts": `export default class Widget {}`,
	}, "/src/widget.component.ts")

	require.Len(t, ch.Links, 1)
	assert.Equal(t, "Widget", ch.Links[0].Class.Name)
	assert.Empty(t, ch.Unresolved)
}

func TestResolveCycleTerminates(t *testing.T) {
	ch := resolveChain(t, map[string]string{
		"/src/widget.component.ts": `
export default class A extends B {}
class B extends A {}
`,
	}, "/src/widget.component.ts")

	require.Len(t, ch.Links, 2)
	assert.Equal(t, "B", ch.Links[0].Class.Name)
	assert.Equal(t, "A", ch.Links[1].Class.Name)
	assert.Empty(t, ch.Unresolved)
}

func TestResolveNonIdentifierBase(t *testing.T) {
	ch := resolveChain(t, map[string]string{
		"/src/widget.component.ts": `export default class Widget extends mixin(Base) {}`,
	}, "/src/widget.component.ts")

	require.Len(t, ch.Links, 1)
	assert.Equal(t, []string{"mixin(Base)"}, ch.Unresolved)
}

func TestMergeReplaceKeepsOrder(t *testing.T) {
	links := []Link{
		{Class: &syntax.ClassDecl{Name: "Base"}},
		{Class: &syntax.ClassDecl{Name: "Derived"}},
	}

	type prop struct {
		name  string
		value string
	}
	extract := func(l Link) ([]prop, []string) {
		if l.Class.Name == "Base" {
			return []prop{{"size", "base"}, {"disabled", "base"}}, []string{"base-warning"}
		}
		return []prop{{"disabled", "derived"}, {"variant", "derived"}}, nil
	}

	items, warnings := Merge(links, extract, func(p prop) string { return p.name }, nil)

	require.Len(t, items, 3)
	assert.Equal(t, prop{"size", "base"}, items[0])
	assert.Equal(t, prop{"disabled", "derived"}, items[1], "override replaces value in place")
	assert.Equal(t, prop{"variant", "derived"}, items[2])
	assert.Equal(t, []string{"base-warning"}, warnings)
}

func TestMergeIdempotent(t *testing.T) {
	links := []Link{
		{Class: &syntax.ClassDecl{Name: "Base"}},
		{Class: &syntax.ClassDecl{Name: "Derived"}},
	}
	extract := func(l Link) ([]string, []string) {
		if l.Class.Name == "Base" {
			return []string{"ready", "focus"}, nil
		}
		return []string{"ready"}, nil
	}
	key := func(s string) string { return s }

	first, _ := Merge(links, extract, key, nil)
	second, _ := Merge(links, extract, key, nil)
	assert.Equal(t, first, second, "merging an unchanged chain is deterministic")
	assert.Equal(t, []string{"ready", "focus"}, first)
}

func TestMergeCombine(t *testing.T) {
	links := []Link{
		{Class: &syntax.ClassDecl{Name: "Base"}},
		{Class: &syntax.ClassDecl{Name: "Derived"}},
	}

	extract := func(l Link) ([]string, []string) {
		return []string{"ready"}, nil
	}
	combine := func(old, new string) string { return old + "+" + new }

	items, _ := Merge(links, extract, func(s string) string { return s }, combine)
	assert.Equal(t, []string{"ready+ready"}, items)
}
