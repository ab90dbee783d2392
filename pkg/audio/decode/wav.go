// ABOUTME: WAV audio decoder
// ABOUTME: Reads 16-bit PCM WAV files back into int samples
package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/bni-lottery/soundgen/pkg/audio"
	"github.com/go-audio/wav"
)

// ProbeWAV reads the WAV header and counts its frames
func ProbeWAV(r io.ReadSeeker) (Info, error) {
	_, info, err := decodeWAV(r)
	return info, err
}

// ReadWAV returns the PCM samples stored in a WAV file
func ReadWAV(path string) ([]int, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer f.Close()

	return decodeWAV(f)
}

func decodeWAV(r io.ReadSeeker) ([]int, Info, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, Info{}, fmt.Errorf("invalid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, Info{}, fmt.Errorf("wav decode error: %w", err)
	}

	format := audio.Format{
		Codec:      "wav",
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
	}
	if format.Channels == 0 {
		return nil, Info{}, fmt.Errorf("invalid WAV file: zero channels")
	}

	return buf.Data, newInfo(format, int64(len(buf.Data)/format.Channels)), nil
}
