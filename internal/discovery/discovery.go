// Package discovery selects the primary component class of a file using
// a fixed-priority heuristic.
package discovery

import (
	"github.com/UILens-hq/uilens/internal/syntax"
)

// Method records which strategy selected the component class.
type Method string

const (
	MethodExportedDefault   Method = "exported-default"
	MethodDefaultAssignment Method = "default-export-assignment"
	MethodDecorator         Method = "decorator"
	MethodDocTag            Method = "doc-tag"
	MethodFirstClass        Method = "first-class"
)

// Discover returns the primary component class and the strategy that
// matched, first match wins:
//
//  1. a class declared both exported and default
//  2. `export default X` where X names a declared class
//  3. a class carrying the registration decorator
//  4. a class carrying the tag name doc tag
//  5. the first declared class
//
// A file without classes yields ok=false; that is absence, not an error.
func Discover(facts *syntax.FileFacts) (*syntax.ClassDecl, Method, bool) {
	if len(facts.Classes) == 0 {
		return nil, "", false
	}

	for _, cls := range facts.Classes {
		if cls.Exported && cls.DefaultExported {
			return cls, MethodExportedDefault, true
		}
	}

	if facts.DefaultExport != "" {
		if cls, ok := facts.Class(facts.DefaultExport); ok {
			return cls, MethodDefaultAssignment, true
		}
	}

	for _, cls := range facts.Classes {
		if _, ok := cls.Decorator(syntax.RegistrationDecName); ok {
			return cls, MethodDecorator, true
		}
	}

	for _, cls := range facts.Classes {
		if _, ok := cls.Doc.Tag(syntax.TagNameDocTag); ok {
			return cls, MethodDocTag, true
		}
	}

	return facts.Classes[0], MethodFirstClass, true
}
