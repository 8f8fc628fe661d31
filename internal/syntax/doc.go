package syntax

import (
	"strings"
)

// DocTag is one @tag of a documentation comment. Text is the tag content
// with leading/trailing whitespace trimmed, continuation lines joined.
type DocTag struct {
	Name string
	Text string
}

// DocComment is a parsed /** ... */ block.
type DocComment struct {
	Summary string
	Tags    []DocTag
}

// Tag returns the text of the first tag with the given name and whether
// one was present.
func (d DocComment) Tag(name string) (string, bool) {
	for _, t := range d.Tags {
		if t.Name == name {
			return t.Text, true
		}
	}
	return "", false
}

// ParseDoc parses the raw text of a JSDoc-style comment. Non-doc comments
// (not starting with /**) yield an empty DocComment.
func ParseDoc(raw string) DocComment {
	if !strings.HasPrefix(raw, "/**") {
		return DocComment{}
	}
	body := strings.TrimPrefix(raw, "/**")
	body = strings.TrimSuffix(body, "*/")

	var doc DocComment
	var summary []string
	var current *DocTag

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "@") {
			name := line[1:]
			text := ""
			if i := strings.IndexAny(name, " \t"); i >= 0 {
				text = strings.TrimSpace(name[i+1:])
				name = name[:i]
			}
			doc.Tags = append(doc.Tags, DocTag{Name: name, Text: text})
			current = &doc.Tags[len(doc.Tags)-1]
			continue
		}

		if current != nil {
			if line != "" {
				if current.Text != "" {
					current.Text += " "
				}
				current.Text += line
			}
			continue
		}
		if line != "" {
			summary = append(summary, line)
		}
	}

	doc.Summary = strings.Join(summary, " ")
	return doc
}
