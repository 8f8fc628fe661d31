package extract

import (
	"regexp"

	"github.com/UILens-hq/uilens/internal/chain"
	"github.com/UILens-hq/uilens/internal/strutil"
	"github.com/UILens-hq/uilens/internal/syntax"
	"github.com/UILens-hq/uilens/pkg/model"
)

var (
	// eventNamePattern accepts identifier or kebab-case names at the
	// start of an @event tag. Tags with no recoverable name are skipped.
	eventNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(?:-[A-Za-z0-9]+)*`)

	// reactOverridePattern captures an explicit handler name override.
	reactOverridePattern = regexp.MustCompile(`React:\s*([A-Za-z_$][A-Za-z0-9_$]*)`)
)

// Events extracts the events of one class from two sources: @event doc
// tags on the class and dispatch call sites attributed to it by the
// visitor. The two sources are deduplicated by event name within the
// class; the chain merger deduplicates across classes.
func Events(link chain.Link) ([]model.EventDescriptor, []string) {
	var events []model.EventDescriptor
	seen := make(map[string]bool)

	for _, tag := range link.Class.Doc.Tags {
		if tag.Name != syntax.EventDocTag {
			continue
		}
		name := eventNamePattern.FindString(tag.Text)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		events = append(events, model.EventDescriptor{
			Name:        name,
			HandlerName: handlerName(name, tag.Text),
		})
	}

	for _, site := range link.Facts.Dispatches {
		if site.ClassName != link.Class.Name || seen[site.EventName] {
			continue
		}
		seen[site.EventName] = true
		events = append(events, model.EventDescriptor{
			Name:        site.EventName,
			HandlerName: handlerName(site.EventName, ""),
			DetailType:  syntax.EventCtorName,
		})
	}

	return events, nil
}

// handlerName derives the React-style handler: an explicit `React: X`
// override wins, otherwise on + PascalCase(name).
func handlerName(event, docText string) string {
	if m := reactOverridePattern.FindStringSubmatch(docText); m != nil {
		return m[1]
	}
	return "on" + strutil.PascalCase(event)
}
