package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UILens-hq/uilens/internal/fsys"
	"github.com/UILens-hq/uilens/pkg/model"
)

func TestAnalyzeFileEndToEnd(t *testing.T) {
	fs := fsys.NewMem(map[string]string{
		"/proj/src/components/button/button.component.ts": `
import Base from '../base/base.component';

/**
 * A clickable button.
 * @event click-through - React: onClickThrough
 */
export default class Button extends Base {
  @property({ type: Boolean, reflect: true })
  disabled = false;

  @property()
  size: 'sm' | 'md' | 'lg' = 'md';

  notify() {
    this.dispatchEvent(new CustomEvent('button-ready'));
  }
}
`,
		"/proj/src/components/base/base.component.ts": `
/**
 * @event focus-change
 */
export default class Base {
  @property({ type: Boolean })
  disabled = true;

  @property()
  tabIndex = 0;
}
`,
		"/proj/src/components/button/index.ts": `
import Button from './button.component';
import { TAG_NAME } from './constants';

Button.register(TAG_NAME);
`,
		"/proj/src/components/button/button.constants.ts": `
export const TAG_NAME = constructTagName('button');
`,
		"/proj/src/utils/tag-name.constants.ts": `
export const TAG_NAME_PREFIX = 'mdc';
export const TAG_NAME_SEPARATOR = '-';
`,
	})

	a := New(fs)
	result := a.AnalyzeFile(context.Background(), "/proj/src/components/button/button.component.ts")

	require.Empty(t, result.Errors)
	require.Empty(t, result.Warnings)
	require.NotNil(t, result.Model)
	m := result.Model

	assert.Equal(t, "Button", m.ClassName)
	assert.Equal(t, "mdc-button", m.TagName)
	assert.Equal(t, model.TierRegistrationFile, m.TagTier)
	assert.Equal(t, "exported-default", m.DiscoveryMethod)
	assert.Equal(t, "/proj/src/components/button/button.component", m.ImportPath)

	// base-first merge: base members first, the derived override keeps
	// the base position but carries the derived value
	require.Len(t, m.Properties, 3)
	assert.Equal(t, "disabled", m.Properties[0].Name)
	require.NotNil(t, m.Properties[0].Default)
	assert.Equal(t, "false", *m.Properties[0].Default)
	assert.True(t, m.Properties[0].Reflect)
	assert.Equal(t, "tabIndex", m.Properties[1].Name)
	assert.Equal(t, "size", m.Properties[2].Name)
	assert.Equal(t, model.TypeEnum, m.Properties[2].Type)

	require.Len(t, m.Events, 3)
	assert.Equal(t, "focus-change", m.Events[0].Name)
	assert.Equal(t, "click-through", m.Events[1].Name)
	assert.Equal(t, "onClickThrough", m.Events[1].HandlerName)
	assert.Equal(t, "button-ready", m.Events[2].Name)
	assert.Equal(t, "CustomEvent", m.Events[2].DetailType)
}

func TestAnalyzeFileNoClass(t *testing.T) {
	fs := fsys.NewMem(map[string]string{
		"/proj/src/util.ts": `export const helper = () => {};`,
	})

	result := New(fs).AnalyzeFile(context.Background(), "/proj/src/util.ts")
	assert.Nil(t, result.Model)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "no class declaration found")
}

func TestAnalyzeFileMissing(t *testing.T) {
	result := New(fsys.NewMem(nil)).AnalyzeFile(context.Background(), "/proj/nope.ts")
	assert.Nil(t, result.Model)
	require.NotEmpty(t, result.Errors)
}

func TestAnalyzeStrictUnresolvedBase(t *testing.T) {
	files := map[string]string{
		"/proj/src/widget.component.ts": `
import { LitElement } from 'lit';
export default class Widget extends LitElement {}
`,
	}

	t.Run("strict fails", func(t *testing.T) {
		result := New(fsys.NewMem(files), WithStrict(true)).
			AnalyzeFile(context.Background(), "/proj/src/widget.component.ts")
		assert.Nil(t, result.Model)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "LitElement")
	})

	t.Run("lenient succeeds", func(t *testing.T) {
		result := New(fsys.NewMem(files)).
			AnalyzeFile(context.Background(), "/proj/src/widget.component.ts")
		require.Empty(t, result.Errors)
		require.NotNil(t, result.Model)
		assert.Equal(t, "Widget", result.Model.ClassName)
	})
}

func TestAnalyzeSourceProbesSiblings(t *testing.T) {
	// the analyzed content is in-memory, but tag resolution still reads
	// the sibling index file through the file access
	fs := fsys.NewMem(map[string]string{
		"/proj/src/chip/index.ts": `Chip.register('mdc-chip');`,
	})

	result := New(fs).AnalyzeSource(context.Background(),
		"/proj/src/chip/chip.component.ts",
		[]byte(`export default class Chip {}`))

	require.NotNil(t, result.Model)
	assert.Equal(t, "mdc-chip", result.Model.TagName)
	assert.Equal(t, model.TierRegistrationFile, result.Model.TagTier)
}

func TestAnalyzeEmptyCollectionsAreNonNil(t *testing.T) {
	fs := fsys.NewMem(map[string]string{
		"/proj/src/bare.component.ts": `export default class Bare {}`,
	})

	result := New(fs).AnalyzeFile(context.Background(), "/proj/src/bare.component.ts")
	require.NotNil(t, result.Model)
	assert.NotNil(t, result.Model.Properties)
	assert.NotNil(t, result.Model.Events)
	assert.Empty(t, result.Model.Properties)
	assert.Empty(t, result.Model.Events)
}

func TestAnalyzeDuplicateEventAcrossChain(t *testing.T) {
	fs := fsys.NewMem(map[string]string{
		"/proj/src/derived.component.ts": `
import Base from './base.component';

/**
 * @event ready
 */
export default class Derived extends Base {}
`,
		"/proj/src/base.component.ts": `
/**
 * @event ready
 */
export default class Base {}
`,
	})

	result := New(fs).AnalyzeFile(context.Background(), "/proj/src/derived.component.ts")
	require.NotNil(t, result.Model)
	require.Len(t, result.Model.Events, 1)
	assert.Equal(t, "ready", result.Model.Events[0].Name)
}

func TestAnalyzeComputedPropertyWarning(t *testing.T) {
	fs := fsys.NewMem(map[string]string{
		"/proj/src/widget.component.ts": `
export default class Widget {
  @property() [dynamicKey] = 1;
}
`,
	})

	result := New(fs).AnalyzeFile(context.Background(), "/proj/src/widget.component.ts")
	require.NotNil(t, result.Model)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "computed name")
}
