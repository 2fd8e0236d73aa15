package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Manifest records what one pipeline run produced.
type Manifest struct {
	RunID     string          `yaml:"run_id"`
	CreatedAt string          `yaml:"created_at"`
	Seed      int64           `yaml:"seed"`
	Plant     string          `yaml:"plant"`
	Tables    []ManifestTable `yaml:"tables"`
}

// ManifestTable is one output table entry in the manifest.
type ManifestTable struct {
	Name string `yaml:"name"`
	Rows int    `yaml:"rows"`
	File string `yaml:"file"`
}

// WriteManifest writes the run manifest as "<plant>_manifest.yaml" in
// dir and returns its path. Table entries are sorted by name to keep
// manifests diffable across runs.
func (d Dataset) WriteManifest(dir, plant string, seed int64) (string, error) {
	m := Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Seed:      seed,
		Plant:     plant,
	}

	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m.Tables = append(m.Tables, ManifestTable{
			Name: name,
			Rows: d[name].Len(),
			File: fmt.Sprintf("%s_%s.csv", plant, name),
		})
	}

	raw, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("pipeline: marshal manifest: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_manifest.yaml", plant))
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("pipeline: write manifest: %w", err)
	}

	return path, nil
}
