package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UILens-hq/uilens/internal/fsys"
)

func TestResolveModuleProbing(t *testing.T) {
	fs := fsys.NewMem(map[string]string{
		"/src/widget/widget.constants.ts": "",
		"/src/widget/index.ts":            "",
		"/src/utils/helpers.tsx":          "",
		"/src/exact/file.ts":              "",
	})

	tests := []struct {
		name      string
		fromDir   string
		specifier string
		want      string
		ok        bool
	}{
		{"literal path", "/src/exact", "./file.ts", "/src/exact/file.ts", true},
		{"extension appended", "/src/exact", "./file", "/src/exact/file.ts", true},
		{"tsx extension", "/src", "./utils/helpers", "/src/utils/helpers.tsx", true},
		{"directory index", "/src", "./widget", "/src/widget/index.ts", true},
		{"parent traversal", "/src/widget", "../utils/helpers", "/src/utils/helpers.tsx", true},
		{"package specifier", "/src", "lit", "", false},
		{"missing module", "/src", "./nothing", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveModule(fs, tc.fromDir, tc.specifier)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveModuleConstantsFallback(t *testing.T) {
	t.Run("directory-named constants file", func(t *testing.T) {
		fs := fsys.NewMem(map[string]string{
			"/src/button/button.constants.ts": "",
			"/src/button/button.component.ts": "",
		})
		got, ok := ResolveModule(fs, "/src/button", "./constants")
		require.True(t, ok)
		assert.Equal(t, "/src/button/button.constants.ts", got)
	})

	t.Run("unique glob match", func(t *testing.T) {
		fs := fsys.NewMem(map[string]string{
			"/src/button/legacy.constants.ts": "",
			"/src/button/button.component.ts": "",
		})
		got, ok := ResolveModule(fs, "/src/button", "./constants")
		require.True(t, ok)
		assert.Equal(t, "/src/button/legacy.constants.ts", got)
	})

	t.Run("ambiguous glob fails", func(t *testing.T) {
		fs := fsys.NewMem(map[string]string{
			"/src/button/a.constants.ts": "",
			"/src/button/b.constants.ts": "",
		})
		_, ok := ResolveModule(fs, "/src/button", "./constants")
		assert.False(t, ok)
	})

	t.Run("no fallback for non-constants specifier", func(t *testing.T) {
		fs := fsys.NewMem(map[string]string{
			"/src/button/button.constants.ts": "",
		})
		_, ok := ResolveModule(fs, "/src/button", "./other")
		assert.False(t, ok)
	})
}
