// ABOUTME: Asset manifest written next to the generated clips
// ABOUTME: Lets the UI discover which file format each clip ended up in
package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bni-lottery/soundgen/internal/version"
)

// ManifestFile is the manifest's name inside the output directory
const ManifestFile = "manifest.json"

// Manifest describes one generation run
type Manifest struct {
	RunID      string          `json:"run_id"`
	Generator  string          `json:"generator"`
	CreatedAt  time.Time       `json:"created_at"`
	SampleRate int             `json:"sample_rate"`
	Seed       uint64          `json:"seed"`
	Clips      []ManifestEntry `json:"clips"`
}

// ManifestEntry describes one clip file
type ManifestEntry struct {
	Name     string  `json:"name"`
	File     string  `json:"file"`
	Format   string  `json:"format"`
	Duration float64 `json:"duration"`
	Peak     float64 `json:"peak"`
	Bytes    int64   `json:"bytes"`
}

func buildManifest(report *Report, sampleRate int, now time.Time) (*Manifest, error) {
	m := &Manifest{
		RunID:      report.RunID,
		Generator:  version.String(),
		CreatedAt:  now.UTC(),
		SampleRate: sampleRate,
		Seed:       report.Seed,
		Clips:      make([]ManifestEntry, 0, len(report.Clips)),
	}

	for _, c := range report.Clips {
		info, err := os.Stat(c.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", c.Path, err)
		}
		m.Clips = append(m.Clips, ManifestEntry{
			Name:     c.Clip.Name,
			File:     filepath.Base(c.Path),
			Format:   c.Format,
			Duration: c.Clip.Duration,
			Peak:     c.Clip.Peak,
			Bytes:    info.Size(),
		})
	}

	return m, nil
}

func writeManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadManifest loads a manifest written by a previous run
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
