// ABOUTME: Generator configuration
// ABOUTME: Defaults, optional YAML file, flag overrides and validation
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bni-lottery/soundgen/internal/transcode"
	"github.com/bni-lottery/soundgen/pkg/audio"
	"gopkg.in/yaml.v3"
)

// FormatWAV disables transcoding and keeps the uncompressed clips
const FormatWAV = "wav"

// MinSampleRate keeps the highest partials (sparkles up to 4 kHz) below Nyquist
const MinSampleRate = 8000

var bitratePattern = regexp.MustCompile(`^[1-9][0-9]*k$`)

// Config holds all settings for one generation run
type Config struct {
	OutputDir  string `yaml:"output_dir"`
	SampleRate int    `yaml:"sample_rate"`
	Format     string `yaml:"format"`  // wav, mp3, flac, opus
	Bitrate    string `yaml:"bitrate"` // ffmpeg bitrate, e.g. 192k
	FFmpeg     string `yaml:"ffmpeg"`
	KeepWAV    bool   `yaml:"keep_wav"`
	Manifest   bool   `yaml:"manifest"`

	// Seed for noise and sparkle pitches; 0 picks one from the clock
	Seed uint64 `yaml:"seed"`
}

// Default returns the settings the lottery UI expects
func Default() *Config {
	return &Config{
		OutputDir:  "public/sounds",
		SampleRate: audio.DefaultSampleRate,
		Format:     "mp3",
		Bitrate:    transcode.DefaultBitrate,
		FFmpeg:     "ffmpeg",
		Manifest:   true,
	}
}

// Load reads a YAML config file over the defaults.
// Returns Default() when path is empty or the file doesn't exist (no error).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Transcodes reports whether the run converts WAVs to another format
func (c *Config) Transcodes() bool {
	return c.Format != FormatWAV
}

// Validate checks the config for values the generator cannot use
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output directory must not be empty"))
	}
	if c.SampleRate < MinSampleRate {
		errs = append(errs, fmt.Errorf("sample rate must be at least %d, got %d", MinSampleRate, c.SampleRate))
	}
	if c.Transcodes() {
		if _, err := transcode.Extension(c.Format); err != nil {
			errs = append(errs, err)
		}
		if !bitratePattern.MatchString(c.Bitrate) {
			errs = append(errs, fmt.Errorf("invalid bitrate %q (expected e.g. 192k)", c.Bitrate))
		}
		if c.FFmpeg == "" {
			errs = append(errs, errors.New("ffmpeg binary must not be empty"))
		}
	}

	return errors.Join(errs...)
}
