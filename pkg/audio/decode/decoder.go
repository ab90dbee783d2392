// ABOUTME: Probe dispatch and result type
// ABOUTME: Selects a probe by file extension
package decode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bni-lottery/soundgen/pkg/audio"
)

// Info describes a decoded audio file
type Info struct {
	Format   audio.Format
	Frames   int64 // samples per channel
	Duration time.Duration
}

func newInfo(format audio.Format, frames int64) Info {
	return Info{
		Format:   format,
		Frames:   frames,
		Duration: audio.Duration(format.SampleRate, int(frames)),
	}
}

// ProbeFile opens path and probes it with the decoder matching its extension
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		return ProbeWAV(f)
	case ".mp3":
		return ProbeMP3(f)
	case ".flac":
		return ProbeFLAC(f)
	case ".opus", ".ogg":
		return ProbeOpus(f)
	default:
		return Info{}, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .flac, .opus)", ext)
	}
}
