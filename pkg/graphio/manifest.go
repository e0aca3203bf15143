package graphio

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Manifest records one generation run: the configuration that produced a
// batch of open graphs and the files they were written to. It is written
// next to the graph files so a batch stays self-describing.
type Manifest struct {
	RunID     uuid.UUID `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`

	Pool       []string `json:"pool"`
	StepCounts []int    `json:"step_counts,omitempty"`
	MergeWidth int      `json:"merge_width,omitempty"`
	InputCaps  []int    `json:"input_caps,omitempty"`
	Randomized bool     `json:"randomized,omitempty"`
	Seed       int64    `json:"seed,omitempty"`

	Entries []ManifestEntry `json:"entries"`
}

// ManifestEntry describes one emitted open graph.
type ManifestEntry struct {
	Step    int    `json:"step"`
	Order   int    `json:"order"`
	Inputs  int    `json:"inputs"`
	Outputs int    `json:"outputs"`
	File    string `json:"file"`
}

// NewManifest creates a manifest with a fresh run ID and timestamp.
func NewManifest() *Manifest {
	return &Manifest{
		RunID:     uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// WriteManifest writes the manifest as indented JSON to path.
func WriteManifest(m *Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// ReadManifest reads a manifest previously written with [WriteManifest].
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}
