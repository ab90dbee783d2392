// ABOUTME: ffmpeg-based transcoder for generated WAV clips
// ABOUTME: Converts, verifies and replaces WAVs with compressed files
package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/bni-lottery/soundgen/pkg/audio/decode"
)

// DefaultBitrate matches the quality the lottery UI was tuned with
const DefaultBitrate = "192k"

// codec holds the ffmpeg arguments and extension of a target format
type codec struct {
	ext  string
	args func(bitrate string) []string
}

var codecs = map[string]codec{
	"mp3": {
		ext:  ".mp3",
		args: func(bitrate string) []string {
			return []string{"-codec:a", "libmp3lame", "-b:a", bitrate}
		},
	},
	"flac": {
		ext:  ".flac",
		args: func(string) []string {
			return []string{"-codec:a", "flac"}
		},
	},
	"opus": {
		ext:  ".opus",
		args: func(bitrate string) []string {
			return []string{"-codec:a", "libopus", "-b:a", bitrate}
		},
	},
}

// Formats lists the supported target formats
func Formats() []string {
	return []string{"mp3", "flac", "opus"}
}

// Extension returns the file extension for format, including the dot
func Extension(format string) (string, error) {
	c, ok := codecs[format]
	if !ok {
		return "", fmt.Errorf("unsupported transcode format: %s (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	return c.ext, nil
}

// Config holds transcoder settings
type Config struct {
	FFmpeg  string // binary name or path
	Format  string // mp3, flac or opus
	Bitrate string // e.g. 192k; ignored for flac
	KeepWAV bool
}

// Transcoder converts WAV files with an external ffmpeg binary
type Transcoder struct {
	config Config
	codec  codec

	// replaced in tests
	lookPath func(string) (string, error)
	verify   func(string) error
}

// New creates a transcoder for the configured format
func New(config Config) (*Transcoder, error) {
	c, ok := codecs[config.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported transcode format: %s (supported: %s)", config.Format, strings.Join(Formats(), ", "))
	}
	if config.FFmpeg == "" {
		config.FFmpeg = "ffmpeg"
	}
	if config.Bitrate == "" {
		config.Bitrate = DefaultBitrate
	}

	return &Transcoder{
		config:   config,
		codec:    c,
		lookPath: exec.LookPath,
		verify:   verifyFile,
	}, nil
}

// Available reports whether the ffmpeg binary can be found
func (t *Transcoder) Available() bool {
	_, err := t.lookPath(t.config.FFmpeg)
	return err == nil
}

// Transcode converts one WAV file. It never returns an error; failures are
// reported through the Result and leave the WAV in place.
func (t *Transcoder) Transcode(ctx context.Context, wavPath string) Result {
	bin, err := t.lookPath(t.config.FFmpeg)
	if err != nil {
		return Result{
			Kind:   Unavailable,
			Source: wavPath,
			Err:    fmt.Errorf("%w: %v", ErrUnavailable, err),
		}
	}

	outPath := strings.TrimSuffix(wavPath, ".wav") + t.codec.ext

	args := []string{"-y", "-loglevel", "error", "-i", wavPath}
	args = append(args, t.codec.args(t.config.Bitrate)...)
	args = append(args, outPath)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(outPath)
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = err.Error()
		}
		return t.failed(wavPath, fmt.Errorf("ffmpeg %s: %s", t.config.Format, reason))
	}

	if err := t.verify(outPath); err != nil {
		os.Remove(outPath)
		return t.failed(wavPath, fmt.Errorf("verify %s: %w", outPath, err))
	}

	if !t.config.KeepWAV {
		if err := os.Remove(wavPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: failed to remove %s: %v", wavPath, err)
		}
	}

	return Result{Kind: Converted, Source: wavPath, Path: outPath}
}

// TranscodeAll converts each file in order. Once ffmpeg is found to be
// unavailable the remaining files are reported unavailable without retrying.
func (t *Transcoder) TranscodeAll(ctx context.Context, wavPaths []string) []Result {
	results := make([]Result, 0, len(wavPaths))
	var unavailable error

	for _, p := range wavPaths {
		if unavailable != nil {
			results = append(results, Result{Kind: Unavailable, Source: p, Err: unavailable})
			continue
		}

		res := t.Transcode(ctx, p)
		if res.Kind == Unavailable {
			unavailable = res.Err
		}
		results = append(results, res)
	}

	return results
}

func (t *Transcoder) failed(source string, err error) Result {
	return Result{Kind: Failed, Source: source, Err: err}
}

func verifyFile(path string) error {
	info, err := decode.ProbeFile(path)
	if err != nil {
		return err
	}
	if info.Frames == 0 {
		return fmt.Errorf("no audio frames")
	}
	return nil
}
