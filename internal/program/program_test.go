package program

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UILens-hq/uilens/internal/fsys"
	"github.com/UILens-hq/uilens/internal/parser"
)

func newProgram(files map[string]string) *Program {
	return New(parser.NewParser(), fsys.NewMem(files))
}

func TestFactsCaching(t *testing.T) {
	ctx := context.Background()
	prog := newProgram(map[string]string{
		"/src/widget.ts": `export default class Widget {}`,
	})

	first, err := prog.Facts(ctx, "/src/widget.ts")
	require.NoError(t, err)

	second, err := prog.Facts(ctx, "/src/widget/../widget.ts")
	require.NoError(t, err)
	assert.Same(t, first, second, "cleaned paths share one cache entry")
}

func TestFactsReadFailure(t *testing.T) {
	_, err := newProgram(nil).Facts(context.Background(), "/src/missing.ts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/src/missing.ts")
}

func TestResolveClassOwnFile(t *testing.T) {
	ctx := context.Background()
	prog := newProgram(map[string]string{
		"/src/widget.ts": `
class Base {}
export default class Widget extends Base {}
`,
	})

	facts, err := prog.Facts(ctx, "/src/widget.ts")
	require.NoError(t, err)

	cls, clsFacts, ok := prog.ResolveClass(ctx, facts, "Base")
	require.True(t, ok)
	assert.Equal(t, "Base", cls.Name)
	assert.Same(t, facts, clsFacts)
}

func TestResolveClassThroughImports(t *testing.T) {
	ctx := context.Background()
	prog := newProgram(map[string]string{
		"/src/widget.ts": `
import Base from './base';
import { Mixin as LocalMixin } from './mixins';
export default class Widget extends Base {}
`,
		"/src/base.ts":   `export default class Base {}`,
		"/src/mixins.ts": `export class Mixin {}`,
	})

	facts, err := prog.Facts(ctx, "/src/widget.ts")
	require.NoError(t, err)

	t.Run("default import", func(t *testing.T) {
		cls, _, ok := prog.ResolveClass(ctx, facts, "Base")
		require.True(t, ok)
		assert.Equal(t, "Base", cls.Name)
	})

	t.Run("aliased named import", func(t *testing.T) {
		cls, _, ok := prog.ResolveClass(ctx, facts, "LocalMixin")
		require.True(t, ok)
		assert.Equal(t, "Mixin", cls.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, _, ok := prog.ResolveClass(ctx, facts, "Nothing")
		assert.False(t, ok)
	})
}

func TestResolveClassLibraryImport(t *testing.T) {
	ctx := context.Background()
	prog := newProgram(map[string]string{
		"/src/widget.ts": `
import { LitElement } from 'lit';
export default class Widget extends LitElement {}
`,
	})

	facts, err := prog.Facts(ctx, "/src/widget.ts")
	require.NoError(t, err)

	_, _, ok := prog.ResolveClass(ctx, facts, "LitElement")
	assert.False(t, ok, "package imports terminate resolution")
}
