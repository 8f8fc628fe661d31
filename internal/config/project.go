package config

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ProjectConfig represents a .uilens.yaml file in a repository.
type ProjectConfig struct {
	Version string `yaml:"version"`

	// File patterns for directory analysis
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`

	// ComponentSuffix is stripped from file base names when falling back
	// to the filename tier (default ".component").
	ComponentSuffix string `yaml:"component_suffix,omitempty"`

	// Strict makes unresolved inheritance bases fatal.
	Strict bool `yaml:"strict,omitempty"`
}

// DefaultProjectConfig returns sensible defaults.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Version: "1.0",
		Include: []string{"**/*.component.ts", "**/*.component.tsx"},
		Exclude: []string{
			"**/node_modules/**",
			"**/*.test.ts",
			"**/*.spec.ts",
		},
		ComponentSuffix: ".component",
	}
}

// LoadProjectConfig loads a .uilens.yaml from the given directory,
// falling back to defaults when none exists.
func LoadProjectConfig(repoPath string) (*ProjectConfig, error) {
	configPath := filepath.Join(repoPath, ".uilens.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = filepath.Join(repoPath, ".uilens.yml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return DefaultProjectConfig(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Matches reports whether a root-relative slash path is selected for
// analysis: no exclude pattern may match it, and at least one include
// pattern must. An empty include list selects every path. Invalid
// patterns never match.
func (c *ProjectConfig) Matches(rel string) bool {
	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	if len(c.Include) == 0 {
		return true
	}
	for _, pattern := range c.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Merge applies overrides from another config (e.g. CLI flags).
func (c *ProjectConfig) Merge(other *ProjectConfig) {
	if other == nil {
		return
	}
	if len(other.Include) > 0 {
		c.Include = other.Include
	}
	if len(other.Exclude) > 0 {
		c.Exclude = other.Exclude
	}
	if other.ComponentSuffix != "" {
		c.ComponentSuffix = other.ComponentSuffix
	}
	if other.Strict {
		c.Strict = true
	}
}
