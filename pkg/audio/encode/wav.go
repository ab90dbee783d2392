// ABOUTME: WAV audio encoder
// ABOUTME: Clips, quantizes and writes float samples as 16-bit PCM WAV
package encode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bni-lottery/soundgen/pkg/audio"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag
const wavFormatPCM = 1

// WAVEncoder encodes WAV audio
type WAVEncoder struct {
	encoder *wav.Encoder
	format  audio.Format
}

// NewWAV creates a new WAV encoder writing to w
func NewWAV(w io.WriteSeeker, format audio.Format) (Encoder, error) {
	if format.Codec != "wav" {
		return nil, fmt.Errorf("invalid codec for WAV encoder: %s", format.Codec)
	}

	if format.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}

	if format.SampleRate <= 0 || format.Channels <= 0 {
		return nil, fmt.Errorf("invalid format: %d Hz, %d channels", format.SampleRate, format.Channels)
	}

	return &WAVEncoder{
		encoder: wav.NewEncoder(w, format.SampleRate, format.BitDepth, format.Channels, wavFormatPCM),
		format:  format,
	}, nil
}

// Encode quantizes float samples and writes them
func (e *WAVEncoder) Encode(samples []float64) error {
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: e.format.Channels,
			SampleRate:  e.format.SampleRate,
		},
		Data:           Quantize(samples),
		SourceBitDepth: e.format.BitDepth,
	}

	if err := e.encoder.Write(buf); err != nil {
		return fmt.Errorf("wav encode error: %w", err)
	}
	return nil
}

// Close writes the final chunk sizes
func (e *WAVEncoder) Close() error {
	return e.encoder.Close()
}

// Quantize clips samples to [-1, 1] and scales them to the 16-bit range
func Quantize(samples []float64) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = int(audio.SampleToInt16(s))
	}
	return out
}

// WriteWAV writes samples to path, creating the parent directory if needed
func WriteWAV(path string, samples []float64, format audio.Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer f.Close()

	encoder, err := NewWAV(f, format)
	if err != nil {
		return err
	}

	if err := encoder.Encode(samples); err != nil {
		return err
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	return f.Close()
}
