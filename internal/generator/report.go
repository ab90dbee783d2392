// ABOUTME: Run report types
// ABOUTME: Per-clip outcomes, advisories and the output directory listing
package generator

import (
	"os"
	"sort"

	"github.com/bni-lottery/soundgen/internal/compose"
	"github.com/bni-lottery/soundgen/internal/transcode"
)

// ClipResult is the outcome for one clip
type ClipResult struct {
	Clip    compose.Clip
	Path    string // final artifact
	Format  string // wav, mp3, flac or opus
	Samples int
	Dropped int // placements rejected by the overrun guard

	// nil when no transcode was attempted
	Transcode *transcode.Result
}

// FileEntry is one file in the output directory
type FileEntry struct {
	Name string
	Size int64
}

// Report summarizes one run
type Report struct {
	RunID        string
	OutputDir    string
	Format       string // requested format
	Seed         uint64
	Clips        []ClipResult
	Advisories   []string
	ManifestPath string
	Files        []FileEntry
}

// Fallback reports whether any clip was left as WAV although another
// format was requested
func (r *Report) Fallback() bool {
	for _, c := range r.Clips {
		if c.Transcode != nil && !c.Transcode.OK() {
			return true
		}
	}
	return false
}

func listDir(dir string) ([]FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, FileEntry{Name: e.Name(), Size: info.Size()})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
