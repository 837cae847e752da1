// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Manifest is the on-disk record of an export run, written next to the
// document. It lists every input URL with its outcome so a reader can see
// which pages the document contains and why anything is missing.
type Manifest struct {
	GeneratedAt time.Time    `yaml:"generated_at"`
	Document    string       `yaml:"document"`
	Pages       []PageResult `yaml:"pages"`
	Summary     Summary      `yaml:"summary"`
}

// Summary holds the run counts.
type Summary struct {
	Exported int `yaml:"exported"`
	Skipped  int `yaml:"skipped"`
	Total    int `yaml:"total"`
}

// NewManifest builds a Manifest for a completed run.
func NewManifest(documentPath string, result BatchResult, now time.Time) Manifest {
	return Manifest{
		GeneratedAt: now,
		Document:    documentPath,
		Pages:       result.Results,
		Summary: Summary{
			Exported: result.Exported,
			Skipped:  result.Skipped,
			Total:    result.Total(),
		},
	}
}

// WriteManifest saves the manifest as YAML.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a previously written run manifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
