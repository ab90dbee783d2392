// ABOUTME: Tests for generator orchestration
// ABOUTME: Runs full generations into temp dirs with and without ffmpeg
package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bni-lottery/soundgen/internal/compose"
	"github.com/bni-lottery/soundgen/internal/config"
	"github.com/bni-lottery/soundgen/internal/transcode"
	"github.com/bni-lottery/soundgen/pkg/audio"
	"github.com/bni-lottery/soundgen/pkg/audio/decode"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func testConfig(t *testing.T, format string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = filepath.Join(t.TempDir(), "public", "sounds")
	cfg.Format = format
	cfg.Seed = 99
	return cfg
}

func runGenerator(t *testing.T, cfg *config.Config, opts Options) *Report {
	t.Helper()
	g, err := New(cfg, opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	report, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return report
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.SampleRate = 0

	if _, err := New(cfg, Options{}); err == nil {
		t.Fatal("expected error for invalid config, got nil")
	}
}

func TestNewRandomSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Format = config.FormatWAV

	g, err := New(cfg, Options{Now: func() time.Time { return time.Unix(0, 12345) }})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if g.Seed() != 12345 {
		t.Errorf("expected clock-derived seed 12345, got %d", g.Seed())
	}
}

func TestRunWAV(t *testing.T) {
	cfg := testConfig(t, config.FormatWAV)

	var events []Event
	report := runGenerator(t, cfg, Options{OnEvent: func(e Event) { events = append(events, e) }})

	if report.Fallback() {
		t.Error("wav output should not be reported as a fallback")
	}
	// the page still loads .mp3, so WAV output always needs the advisory
	wantAdvisories := []string{
		"/sounds/rolling.mp3 -> /sounds/rolling.wav",
		"/sounds/win.mp3 -> /sounds/win.wav",
		"/sounds/bgm.mp3 -> /sounds/bgm.wav",
	}
	if diff := cmp.Diff(wantAdvisories, report.Advisories); diff != "" {
		t.Errorf("advisories mismatch (-want +got):\n%s", diff)
	}
	if len(report.Clips) != 3 {
		t.Fatalf("expected 3 clips, got %d", len(report.Clips))
	}

	for _, c := range report.Clips {
		samples, info, err := decode.ReadWAV(c.Path)
		if err != nil {
			t.Fatalf("%s: ReadWAV() failed: %v", c.Clip.Name, err)
		}

		wantLen := audio.Samples(cfg.SampleRate, c.Clip.Duration)
		if len(samples) != wantLen || c.Samples != wantLen {
			t.Errorf("%s: expected %d samples, got %d (report %d)", c.Clip.Name, wantLen, len(samples), c.Samples)
		}
		if info.Format.SampleRate != cfg.SampleRate || info.Format.Channels != 1 {
			t.Errorf("%s: unexpected format %+v", c.Clip.Name, info.Format)
		}

		var peak int
		for _, s := range samples {
			if s < audio.Min16Bit || s > audio.Max16Bit {
				t.Fatalf("%s: sample %d out of 16-bit range", c.Clip.Name, s)
			}
			peak = max(peak, s, -s)
		}

		// quantized peak within one step of the normalization target
		want := c.Clip.Peak * audio.Max16Bit
		if diff := float64(peak) - want; diff > 1 || diff < -1 {
			t.Errorf("%s: expected peak ~%.0f, got %d", c.Clip.Name, want, peak)
		}
	}

	var stages []Stage
	for _, e := range events {
		stages = append(stages, e.Stage)
	}
	wantStages := []Stage{
		StageComposing, StageWritten,
		StageComposing, StageWritten,
		StageComposing, StageWritten,
		StageDone,
	}
	if diff := cmp.Diff(wantStages, stages); diff != "" {
		t.Errorf("event stages mismatch (-want +got):\n%s", diff)
	}
}

func TestRunManifest(t *testing.T) {
	cfg := testConfig(t, config.FormatWAV)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	report := runGenerator(t, cfg, Options{Now: func() time.Time { return now }})

	m, err := ReadManifest(report.ManifestPath)
	if err != nil {
		t.Fatalf("ReadManifest() failed: %v", err)
	}

	if _, err := uuid.Parse(m.RunID); err != nil {
		t.Errorf("expected run id to be a UUID, got %q", m.RunID)
	}
	if m.RunID != report.RunID {
		t.Errorf("manifest run id %s does not match report %s", m.RunID, report.RunID)
	}
	if !m.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, m.CreatedAt)
	}
	if m.Seed != 99 {
		t.Errorf("expected seed 99, got %d", m.Seed)
	}

	var names []string
	for _, c := range m.Clips {
		names = append(names, c.File)
		if c.Format != "wav" || c.Bytes <= 44 {
			t.Errorf("%s: unexpected entry %+v", c.Name, c)
		}
	}
	if diff := cmp.Diff([]string{"rolling.wav", "win.wav", "bgm.wav"}, names); diff != "" {
		t.Errorf("manifest files mismatch (-want +got):\n%s", diff)
	}

	var listed []string
	for _, f := range report.Files {
		listed = append(listed, f.Name)
	}
	if diff := cmp.Diff([]string{"bgm.wav", "manifest.json", "rolling.wav", "win.wav"}, listed); diff != "" {
		t.Errorf("directory listing mismatch (-want +got):\n%s", diff)
	}
}

func TestRunNoManifest(t *testing.T) {
	cfg := testConfig(t, config.FormatWAV)
	cfg.Manifest = false

	report := runGenerator(t, cfg, Options{})

	if report.ManifestPath != "" {
		t.Errorf("expected no manifest, got %s", report.ManifestPath)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, ManifestFile)); !os.IsNotExist(err) {
		t.Errorf("manifest should not exist, stat err = %v", err)
	}
}

func TestRunTranscoderUnavailable(t *testing.T) {
	cfg := testConfig(t, "mp3")
	cfg.FFmpeg = "soundgen-test-no-such-ffmpeg"

	var fallbacks int
	report := runGenerator(t, cfg, Options{OnEvent: func(e Event) {
		if e.Stage == StageFallback {
			fallbacks++
		}
	}})

	if !report.Fallback() {
		t.Fatal("expected fallback when ffmpeg is missing")
	}
	if fallbacks != 3 {
		t.Errorf("expected 3 fallback events, got %d", fallbacks)
	}

	for _, c := range report.Clips {
		if c.Transcode == nil || c.Transcode.Kind != transcode.Unavailable {
			t.Errorf("%s: expected Unavailable result, got %+v", c.Clip.Name, c.Transcode)
		}
		if c.Format != "wav" || filepath.Ext(c.Path) != ".wav" {
			t.Errorf("%s: expected WAV artifact, got %s", c.Clip.Name, c.Path)
		}
		if _, err := os.Stat(c.Path); err != nil {
			t.Errorf("%s: WAV should remain: %v", c.Clip.Name, err)
		}
	}

	want := []string{
		"/sounds/rolling.mp3 -> /sounds/rolling.wav",
		"/sounds/win.mp3 -> /sounds/win.wav",
		"/sounds/bgm.mp3 -> /sounds/bgm.wav",
	}
	if diff := cmp.Diff(want, report.Advisories); diff != "" {
		t.Errorf("advisories mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvisoriesReferenceUIExtension(t *testing.T) {
	for _, format := range []string{"flac", "opus"} {
		t.Run(format, func(t *testing.T) {
			cfg := testConfig(t, format)
			cfg.FFmpeg = "soundgen-test-no-such-ffmpeg"
			cfg.Manifest = false

			report := runGenerator(t, cfg, Options{})

			want := []string{
				"/sounds/rolling.mp3 -> /sounds/rolling.wav",
				"/sounds/win.mp3 -> /sounds/win.wav",
				"/sounds/bgm.mp3 -> /sounds/bgm.wav",
			}
			if diff := cmp.Diff(want, report.Advisories); diff != "" {
				t.Errorf("advisories mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdvisoriesSkipConvertedClips(t *testing.T) {
	converted := transcode.Result{Kind: transcode.Converted, Source: "out/win.wav", Path: "out/win.mp3"}
	report := &Report{
		Clips: []ClipResult{
			{Clip: compose.RollingClip, Path: "out/rolling.wav", Format: config.FormatWAV},
			{Clip: compose.WinClip, Path: "out/win.mp3", Format: "mp3", Transcode: &converted},
		},
	}

	want := []string{"/sounds/rolling.mp3 -> /sounds/rolling.wav"}
	if diff := cmp.Diff(want, advisories(report)); diff != "" {
		t.Errorf("advisories mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSameSeedSameFiles(t *testing.T) {
	a := runGenerator(t, testConfig(t, config.FormatWAV), Options{})
	b := runGenerator(t, testConfig(t, config.FormatWAV), Options{})

	for i := range a.Clips {
		da, err := os.ReadFile(a.Clips[i].Path)
		if err != nil {
			t.Fatalf("failed to read %s: %v", a.Clips[i].Path, err)
		}
		db, err := os.ReadFile(b.Clips[i].Path)
		if err != nil {
			t.Fatalf("failed to read %s: %v", b.Clips[i].Path, err)
		}
		if !bytes.Equal(da, db) {
			t.Errorf("%s differs between runs with the same seed", a.Clips[i].Clip.Name)
		}
	}
}
