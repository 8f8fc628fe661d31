package program

import (
	"path/filepath"
	"strings"

	"github.com/UILens-hq/uilens/internal/fsys"
	"github.com/UILens-hq/uilens/internal/parser"
)

// constantsSegment is the generic specifier segment that triggers the
// component-specific constants fallback.
const constantsSegment = "constants"

// ResolveModule resolves a relative module specifier to a concrete file.
// Non-relative (package) specifiers never resolve. The probe order is:
// the literal path, the path with each source extension appended, an
// index file with each extension inside the path, and finally the
// constants fallback for specifiers ending in the generic constants
// segment.
func ResolveModule(fs fsys.FS, fromDir, specifier string) (string, bool) {
	if !strings.HasPrefix(specifier, ".") {
		return "", false
	}

	base := filepath.Clean(filepath.Join(fromDir, specifier))

	if fs.Exists(base) {
		return base, true
	}
	for _, ext := range parser.SourceExtensions {
		if candidate := base + ext; fs.Exists(candidate) {
			return candidate, true
		}
	}
	for _, ext := range parser.SourceExtensions {
		if candidate := filepath.Join(base, "index"+ext); fs.Exists(candidate) {
			return candidate, true
		}
	}

	if filepath.Base(base) == constantsSegment {
		return resolveConstantsFallback(fs, filepath.Dir(base))
	}
	return "", false
}

// resolveConstantsFallback looks for `<dirName>.constants.<ext>` in the
// directory, then for exactly one `*.constants.<ext>` file. Zero or more
// than one glob match fails the fallback.
func resolveConstantsFallback(fs fsys.FS, dir string) (string, bool) {
	dirName := filepath.Base(dir)
	for _, ext := range parser.SourceExtensions {
		candidate := filepath.Join(dir, dirName+".constants"+ext)
		if fs.Exists(candidate) {
			return candidate, true
		}
	}

	names, err := fs.List(dir)
	if err != nil {
		return "", false
	}
	var matches []string
	for _, name := range names {
		for _, ext := range parser.SourceExtensions {
			if strings.HasSuffix(name, ".constants"+ext) {
				matches = append(matches, name)
				break
			}
		}
	}
	if len(matches) != 1 {
		return "", false
	}
	return filepath.Join(dir, matches[0]), true
}
