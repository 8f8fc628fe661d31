package tagname

import (
	"path/filepath"
	"regexp"

	"github.com/UILens-hq/uilens/internal/fsys"
	"github.com/UILens-hq/uilens/internal/strutil"
)

// conventionsRelPath is the fixed location of the project conventions
// file, two levels above the component directory.
var conventionsRelPath = filepath.Join("..", "..", "utils", "tag-name.constants.ts")

var (
	prefixPattern    = regexp.MustCompile(`TAG_NAME_PREFIX\s*=\s*['"` + "`" + `]([^'"` + "`" + `]+)['"` + "`" + `]`)
	separatorPattern = regexp.MustCompile(`TAG_NAME_SEPARATOR\s*=\s*['"` + "`" + `]([^'"` + "`" + `]+)['"` + "`" + `]`)
)

// Prefix applies the project namespace convention to a raw tag value.
// The conventions file is matched textually, not evaluated; any read
// failure or missing assignment silently yields the unprefixed kebab
// form.
func Prefix(fs fsys.FS, componentDir, raw string) string {
	tag := strutil.KebabCase(raw)

	content, err := fs.Read(filepath.Join(componentDir, conventionsRelPath))
	if err != nil {
		return tag
	}

	prefix := prefixPattern.FindSubmatch(content)
	separator := separatorPattern.FindSubmatch(content)
	if prefix == nil || separator == nil {
		return tag
	}
	return string(prefix[1]) + string(separator[1]) + tag
}
