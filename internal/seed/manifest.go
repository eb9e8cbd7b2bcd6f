package seed

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const manifestVersion = 1

//go:embed manifest.yaml
var manifestFS embed.FS

// Source is one file in the manifest.
type Source struct {
	Kind      Kind   `yaml:"kind"`
	Path      string `yaml:"path"`
	DependsOn []Kind `yaml:"depends_on"`
	Enabled   *bool  `yaml:"enabled"`
}

// Manifest is the ordered list of seed sources.
type Manifest struct {
	Version int      `yaml:"version"`
	Sources []Source `yaml:"sources"`
}

// DefaultManifest returns the embedded manifest.
func DefaultManifest() (*Manifest, error) {
	data, err := manifestFS.ReadFile("manifest.yaml")
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// LoadManifest reads path, or the embedded manifest when path is empty.
func LoadManifest(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultManifest()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates a manifest, dropping disabled sources.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse seed manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed manifest: %w", err)
	}
	enabled := m.Sources[:0]
	for _, src := range m.Sources {
		if src.Enabled != nil && !*src.Enabled {
			continue
		}
		enabled = append(enabled, src)
	}
	m.Sources = enabled
	return &m, nil
}

// Validate checks that every kind is known, paths are unique, and every
// declared or intrinsic dependency of a source is provided by an earlier one.
func (m *Manifest) Validate() error {
	if m == nil {
		return errors.New("missing manifest")
	}
	if m.Version != manifestVersion {
		return fmt.Errorf("unsupported version %d", m.Version)
	}
	if len(m.Sources) == 0 {
		return errors.New("no sources defined")
	}

	provided := map[Kind]bool{}
	paths := map[string]bool{}
	for i, src := range m.Sources {
		if !src.Kind.Valid() {
			return fmt.Errorf("source %d: unknown kind %q", i, src.Kind)
		}
		path := strings.TrimSpace(src.Path)
		if path == "" {
			return fmt.Errorf("source %d (%s): path is required", i, src.Kind)
		}
		if paths[path] {
			return fmt.Errorf("source %d: duplicate path %s", i, path)
		}
		paths[path] = true
		if src.Enabled != nil && !*src.Enabled {
			continue
		}

		deps := append(append([]Kind{}, src.Kind.References()...), src.DependsOn...)
		for _, dep := range deps {
			if dep == src.Kind {
				continue
			}
			if !dep.Valid() {
				return fmt.Errorf("source %s: unknown dependency %q", path, dep)
			}
			if !provided[dep] {
				return fmt.Errorf("source %s: dependency %s is not seeded before it", path, dep)
			}
		}
		provided[src.Kind] = true
	}
	return nil
}
