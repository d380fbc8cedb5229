package emitter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/choicegen/internal/fsutil"
)

// Manifest lists the artifacts of one run.
type Manifest struct {
	OutputDir string   `yaml:"output_dir"`
	Artifacts []Record `yaml:"artifacts"`
}

// WriteManifest serializes m as YAML to path.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}
	return &m, nil
}
