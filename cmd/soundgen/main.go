// ABOUTME: Entry point for the lottery sound generator
// ABOUTME: Parses CLI flags, runs the generator and prints the summary
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bni-lottery/soundgen/internal/compose"
	"github.com/bni-lottery/soundgen/internal/config"
	"github.com/bni-lottery/soundgen/internal/generator"
	"github.com/bni-lottery/soundgen/internal/ui"
	"github.com/bni-lottery/soundgen/internal/version"
)

var (
	configPath = flag.String("config", "", "YAML config file (optional)")
	outputDir  = flag.String("out", "", "Output directory (default: public/sounds)")
	format     = flag.String("format", "", "Output format: wav, mp3, flac or opus (default: mp3)")
	bitrate    = flag.String("bitrate", "", "Encoder bitrate, e.g. 192k")
	ffmpegPath = flag.String("ffmpeg", "", "Path to the ffmpeg binary")
	seed       = flag.Uint64("seed", 0, "Random seed for noise and sparkles (0 = from clock)")
	keepWAV    = flag.Bool("keep-wav", false, "Keep WAV files after conversion")
	noManifest = flag.Bool("no-manifest", false, "Do not write manifest.json")
	useTUI     = flag.Bool("tui", false, "Show progress in a TUI")
	debug      = flag.Bool("debug", false, "Log dropped placements")
	logFile    = flag.String("log-file", "", "Also write logs to this file")
	showVer    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(version.String())
		return
	}

	// Set up logging
	var out io.Writer = os.Stdout
	if *useTUI {
		// TUI mode: log only to file
		out = io.Discard
	}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer func() { _ = f.Close() }()

		if *useTUI {
			out = f
		} else {
			out = io.MultiWriter(os.Stdout, f)
		}
	}
	log.SetOutput(out)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var report *generator.Report
	if *useTUI {
		report, err = runTUI(ctx, cfg)
	} else {
		report, err = run(ctx, cfg, generator.Options{Debug: *debug})
	}
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	fmt.Print(ui.RenderSummary(report))
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = *outputDir
		case "format":
			cfg.Format = *format
		case "bitrate":
			cfg.Bitrate = *bitrate
		case "ffmpeg":
			cfg.FFmpeg = *ffmpegPath
		case "seed":
			cfg.Seed = *seed
		case "keep-wav":
			cfg.KeepWAV = *keepWAV
		case "no-manifest":
			cfg.Manifest = !*noManifest
		}
	})
}

func run(ctx context.Context, cfg *config.Config, opts generator.Options) (*generator.Report, error) {
	gen, err := generator.New(cfg, opts)
	if err != nil {
		return nil, err
	}
	log.Printf("Starting %s (seed %d)", version.String(), gen.Seed())
	return gen.Run(ctx)
}

func runTUI(ctx context.Context, cfg *config.Config) (*generator.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	clips := compose.Clips()
	names := make([]string, len(clips))
	for i, c := range clips {
		names[i] = c.Name
	}

	prog := ui.NewProgram(names)

	type outcome struct {
		report *generator.Report
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		report, err := run(ctx, cfg, generator.Options{
			Debug: *debug,
			OnEvent: func(e generator.Event) {
				prog.Send(ui.EventMsg(e))
			},
		})
		if err != nil {
			prog.Send(ui.ErrMsg{Err: err})
		}
		done <- outcome{report, err}
	}()

	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	// Quitting the TUI early stops any running ffmpeg process
	cancel()
	res := <-done
	return res.report, res.err
}
