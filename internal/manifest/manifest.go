// Package manifest renders the project layout as a YAML document for
// tooling outside the Go tree (frontend build scripts, compose wrappers).
package manifest

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/gridfall/backend/internal/shared/paths"
)

// Manifest is the serialized form of a resolved layout.
type Manifest struct {
	Root    string                `yaml:"root"`
	Entries map[paths.Name]string `yaml:"entries"`
}

// FromLayout captures every entry of layout into a Manifest.
func FromLayout(layout *paths.Layout) *Manifest {
	return &Manifest{
		Root:    layout.Root(),
		Entries: layout.Entries(),
	}
}

// Layout reconstructs the layout anchored at the manifest's root. Entry
// values are derived, not read back, so a stale manifest cannot inject
// locations outside the current table.
func (m *Manifest) Layout() *paths.Layout {
	return paths.New(m.Root)
}

// Write marshals the manifest to path.
func (m *Manifest) Write(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// Load reads a manifest previously written by Write.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}
