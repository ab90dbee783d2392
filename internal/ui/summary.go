// ABOUTME: Final report rendering
// ABOUTME: Lists clip outcomes, advisories and generated files
package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bni-lottery/soundgen/internal/generator"
	"github.com/bni-lottery/soundgen/internal/transcode"
)

// RenderSummary renders a completed run for the console
func RenderSummary(r *generator.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sound generation complete"))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Output: "))
	b.WriteString(valueStyle.Render(r.OutputDir))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Seed: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", r.Seed)))
	b.WriteString("\n\n")

	for _, c := range r.Clips {
		b.WriteString(fmt.Sprintf("  %-8s %s", c.Clip.Name, filepath.Base(c.Path)))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" (%.1fs, %s)", c.Clip.Duration, transcodeStatus(c))))
		b.WriteString("\n")
	}

	if len(r.Advisories) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("Note: some clips are WAV files"))
		b.WriteString("\n")
		b.WriteString("Update the sound paths in the lottery page to use WAV:\n")
		for _, a := range r.Advisories {
			b.WriteString("  " + a + "\n")
		}
	}

	if len(r.Files) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Generated files:"))
		b.WriteString("\n")
		for _, f := range r.Files {
			b.WriteString(fmt.Sprintf("  - %s (%.1f KB)\n", f.Name, float64(f.Size)/1024))
		}
	}

	return b.String()
}

func transcodeStatus(c generator.ClipResult) string {
	if c.Transcode == nil {
		return c.Format
	}
	switch c.Transcode.Kind {
	case transcode.Converted:
		return c.Format
	case transcode.Unavailable:
		return "wav, ffmpeg unavailable"
	default:
		return "wav, conversion failed"
	}
}
