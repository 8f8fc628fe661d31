// Package fsys defines the read-only file-access capability used by the
// resolution engine. Implementations may be backed by the real filesystem
// or by an in-memory fixture.
package fsys

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FS is the capability required from collaborators: existence check,
// read, and directory listing. No writes ever happen through it.
type FS interface {
	Exists(path string) bool
	Read(path string) ([]byte, error)
	List(dir string) ([]string, error)
}

// OS is an FS backed by the operating system.
type OS struct{}

func (OS) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (OS) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OS) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Mem is an in-memory FS fixture keyed by cleaned absolute paths.
type Mem struct {
	files map[string][]byte
}

// NewMem builds an in-memory FS from path -> content pairs.
func NewMem(files map[string]string) *Mem {
	m := &Mem{files: make(map[string][]byte, len(files))}
	for p, c := range files {
		m.files[filepath.Clean(p)] = []byte(c)
	}
	return m
}

func (m *Mem) Exists(path string) bool {
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

func (m *Mem) Read(path string) ([]byte, error) {
	c, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return c, nil
}

func (m *Mem) List(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	seen := make(map[string]bool)
	for p := range m.files {
		if filepath.Dir(p) == dir {
			seen[filepath.Base(p)] = true
		}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("directory not found or empty: %s", dir)
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
