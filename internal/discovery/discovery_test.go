package discovery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UILens-hq/uilens/internal/parser"
	"github.com/UILens-hq/uilens/internal/syntax"
)

func factsOf(t *testing.T, source string) *syntax.FileFacts {
	t.Helper()
	src, err := parser.NewParser().Parse(context.Background(), "/src/widget.component.ts", []byte(source))
	require.NoError(t, err)
	defer src.Close()
	return syntax.Collect(src)
}

func TestDiscoverPriority(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantClass string
		wantBy    Method
	}{
		{
			name: "exported default beats everything",
			source: `
@customElement('mdc-helper')
class Helper {}
export default class Widget {}
`,
			wantClass: "Widget",
			wantBy:    MethodExportedDefault,
		},
		{
			name: "default export assignment",
			source: `
class Helper {}
class Widget {}
export default Widget;
`,
			wantClass: "Widget",
			wantBy:    MethodDefaultAssignment,
		},
		{
			name: "registration decorator",
			source: `
class Helper {}
@customElement('mdc-widget')
class Widget {}
`,
			wantClass: "Widget",
			wantBy:    MethodDecorator,
		},
		{
			name: "tag name doc tag",
			source: `
class Helper {}
/**
 * @tagname mdc-widget
 */
class Widget {}
`,
			wantClass: "Widget",
			wantBy:    MethodDocTag,
		},
		{
			name: "first class fallback",
			source: `
class Helper {}
class Widget {}
`,
			wantClass: "Helper",
			wantBy:    MethodFirstClass,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cls, method, ok := Discover(factsOf(t, tc.source))
			require.True(t, ok)
			assert.Equal(t, tc.wantClass, cls.Name)
			assert.Equal(t, tc.wantBy, method)
		})
	}
}

func TestDiscoverNoClasses(t *testing.T) {
	facts := factsOf(t, `export const TAG_NAME = 'mdc-widget';`)
	_, _, ok := Discover(facts)
	assert.False(t, ok)
}

func TestDiscoverDanglingDefaultExport(t *testing.T) {
	// export default names a non-class; fall through to later strategies.
	facts := factsOf(t, `
const helper = () => {};
class Widget {}
export default helper;
`)
	cls, method, ok := Discover(facts)
	require.True(t, ok)
	assert.Equal(t, "Widget", cls.Name)
	assert.Equal(t, MethodFirstClass, method)
}
