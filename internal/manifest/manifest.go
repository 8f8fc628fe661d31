// Package manifest assembles and serializes the document handed to the
// downstream design-tool pipeline.
package manifest

import (
	"encoding/json"
	"io"
	"time"

	"github.com/UILens-hq/uilens/pkg/model"
)

// SchemaVersion identifies the manifest document layout.
const SchemaVersion = "1.0"

// Manifest is the aggregate of all analyzed components of one run.
type Manifest struct {
	SchemaVersion string                 `json:"schema_version"`
	GeneratedAt   time.Time              `json:"generated_at"`
	Commit        string                 `json:"commit,omitempty"`
	Components    []model.ComponentModel `json:"components"`
}

// Build assembles a manifest. The repository HEAD commit is stamped in
// when repoPath sits inside a git repository; absence is not an error.
func Build(components []model.ComponentModel, repoPath string) *Manifest {
	m := &Manifest{
		SchemaVersion: SchemaVersion,
		GeneratedAt:   time.Now().UTC(),
		Components:    components,
	}
	if m.Components == nil {
		m.Components = []model.ComponentModel{}
	}
	if sha, ok := HeadSHA(repoPath); ok {
		m.Commit = sha
	}
	return m
}

// Encode writes the manifest as indented JSON.
func (m *Manifest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
