// ABOUTME: Orchestrates one generation run
// ABOUTME: Compose, write, transcode, advise and list the output directory
package generator

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/bni-lottery/soundgen/internal/compose"
	"github.com/bni-lottery/soundgen/internal/config"
	"github.com/bni-lottery/soundgen/internal/transcode"
	"github.com/bni-lottery/soundgen/pkg/audio"
	"github.com/bni-lottery/soundgen/pkg/audio/encode"
	"github.com/google/uuid"
)

// UIPath is where the lottery page loads clips from
const UIPath = "/sounds/"

// UIExtension is the extension the lottery page references for every clip
const UIExtension = ".mp3"

// Options configures optional generator behavior
type Options struct {
	// OnEvent receives progress events; may be nil
	OnEvent func(Event)

	// Debug logs every dropped placement
	Debug bool

	// Now is used for the manifest timestamp; defaults to time.Now
	Now func() time.Time
}

// Generator produces the lottery sound set
type Generator struct {
	config     *config.Config
	options    Options
	seed       uint64
	composer   *compose.Composer
	transcoder *transcode.Transcoder // nil when the format is wav
}

// New creates a generator for a validated config
func New(cfg *config.Config, opts Options) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(opts.Now().UnixNano())
	}

	g := &Generator{
		config:   cfg,
		options:  opts,
		seed:     seed,
		composer: compose.NewComposer(cfg.SampleRate, rand.New(rand.NewPCG(seed, seed))),
	}

	if cfg.Transcodes() {
		tr, err := transcode.New(transcode.Config{
			FFmpeg:  cfg.FFmpeg,
			Format:  cfg.Format,
			Bitrate: cfg.Bitrate,
			KeepWAV: cfg.KeepWAV,
		})
		if err != nil {
			return nil, err
		}
		g.transcoder = tr
	}

	return g, nil
}

// Seed returns the seed driving noise and sparkle pitches
func (g *Generator) Seed() uint64 {
	return g.seed
}

func (g *Generator) emit(clip string, stage Stage, detail string) {
	if g.options.OnEvent != nil {
		g.options.OnEvent(Event{Clip: clip, Stage: stage, Detail: detail})
	}
}

// Run generates all clips. Transcoding problems never fail the run; they
// are reported per clip and turned into advisories.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	dir := g.config.OutputDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	log.Printf("Output directory: %s", dir)

	report := &Report{
		RunID:     uuid.NewString(),
		OutputDir: dir,
		Format:    g.config.Format,
		Seed:      g.seed,
	}

	for _, clip := range compose.Clips() {
		res, err := g.generate(clip)
		if err != nil {
			return nil, err
		}
		report.Clips = append(report.Clips, res)
	}

	if g.transcoder != nil {
		g.transcode(ctx, report)
	}

	report.Advisories = advisories(report)
	if len(report.Advisories) > 0 {
		log.Printf("Update the sound paths in the lottery page to use WAV:")
		for _, a := range report.Advisories {
			log.Print(a)
		}
	}

	if g.config.Manifest {
		m, err := buildManifest(report, g.config.SampleRate, g.options.Now())
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, ManifestFile)
		if err := writeManifest(path, m); err != nil {
			return nil, fmt.Errorf("failed to write manifest: %w", err)
		}
		report.ManifestPath = path
		log.Printf("Wrote manifest: %s", path)
	}

	files, err := listDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list output directory: %w", err)
	}
	report.Files = files

	g.emit("", StageDone, "")
	return report, nil
}

func (g *Generator) generate(clip compose.Clip) (ClipResult, error) {
	log.Printf("Generating %s sound...", clip.Name)
	g.emit(clip.Name, StageComposing, "")

	track, err := g.composer.Compose(clip)
	if err != nil {
		return ClipResult{}, err
	}

	if g.options.Debug {
		for _, p := range track.Placements {
			if !p.Placed {
				log.Printf("[DEBUG] %s: dropped %s at sample %d (%d samples)", clip.Name, p.Layer, p.Start, p.Length)
			}
		}
	}
	if !track.Normalized {
		log.Printf("Warning: %s mix is silent, skipped normalization", clip.Name)
	}

	path := filepath.Join(g.config.OutputDir, clip.Name+".wav")
	if err := encode.WriteWAV(path, track.Samples, audio.PCM16Mono(g.config.SampleRate)); err != nil {
		return ClipResult{}, fmt.Errorf("failed to write %s: %w", clip.Name, err)
	}
	log.Printf("Generated: %s", path)
	g.emit(clip.Name, StageWritten, path)

	return ClipResult{
		Clip:    clip,
		Path:    path,
		Format:  config.FormatWAV,
		Samples: len(track.Samples),
		Dropped: track.Dropped(),
	}, nil
}

func (g *Generator) transcode(ctx context.Context, report *Report) {
	log.Printf("Converting to %s...", g.config.Format)

	if !g.transcoder.Available() {
		log.Printf("Notice: %s not found, keeping WAV files (browsers play WAV natively)", g.config.FFmpeg)
	}

	paths := make([]string, len(report.Clips))
	for i, c := range report.Clips {
		paths[i] = c.Path
		g.emit(c.Clip.Name, StageConverting, "")
	}

	for i, res := range g.transcoder.TranscodeAll(ctx, paths) {
		clip := &report.Clips[i]
		clip.Transcode = &res

		switch res.Kind {
		case transcode.Converted:
			clip.Path = res.Path
			clip.Format = g.config.Format
			log.Printf("Converted to %s: %s", g.config.Format, res.Path)
			if !g.config.KeepWAV {
				log.Printf("Removed WAV: %s", res.Source)
			}
			g.emit(clip.Clip.Name, StageConverted, res.Path)
		case transcode.Unavailable:
			g.emit(clip.Clip.Name, StageFallback, "ffmpeg unavailable")
		case transcode.Failed:
			log.Printf("%s conversion failed: %v", g.config.Format, res.Err)
			log.Printf("WAV file kept: %s", res.Source)
			g.emit(clip.Clip.Name, StageFallback, res.Err.Error())
		}
	}
}

// advisories lists the UI references to switch for clips left as WAV
func advisories(report *Report) []string {
	var out []string
	for _, c := range report.Clips {
		if c.Format != config.FormatWAV {
			continue
		}
		out = append(out, fmt.Sprintf("%s%s%s -> %s%s.wav", UIPath, c.Clip.Name, UIExtension, UIPath, c.Clip.Name))
	}
	return out
}
