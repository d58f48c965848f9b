package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExportYAML writes a developer-facing copy of the manifest alongside
// the host-facing JSON file: the same schema, easier to hand-edit
// when sketching a new instrument's parameter list before wiring it
// into pkg/param.
func (m *Manifest) ExportYAML(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest to yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing yaml manifest: %w", err)
	}
	return nil
}

// LoadFromYAMLFile reads a manifest previously written by ExportYAML.
// The host-facing manifest format stays JSON (LoadFromFile); this is
// for round-tripping the YAML sidecar itself.
func LoadFromYAMLFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading yaml manifest file: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error parsing yaml manifest file: %w", err)
	}
	return &m, nil
}
