// ABOUTME: Clip descriptors and composed tracks
// ABOUTME: Defines the three lottery clips and the placement log
package compose

import (
	"fmt"
	"math/rand/v2"

	"github.com/bni-lottery/soundgen/pkg/audio"
	"github.com/bni-lottery/soundgen/pkg/audio/synth"
)

// Clip describes one generated sound
type Clip struct {
	Name     string  // base file name
	Duration float64 // seconds
	Peak     float64 // normalization target
}

// The clips referenced by the lottery UI
var (
	RollingClip = Clip{Name: "rolling", Duration: 3.0, Peak: 0.8}
	WinClip     = Clip{Name: "win", Duration: 2.5, Peak: 0.85}
	BGMClip     = Clip{Name: "bgm", Duration: 8.0, Peak: 0.7}
)

// Clips returns the clips in generation order
func Clips() []Clip {
	return []Clip{RollingClip, WinClip, BGMClip}
}

// Placement records one attempt to mix a segment into a track
type Placement struct {
	Layer  string
	Start  int
	Length int
	Placed bool
}

// Track is a composed clip and its placement log
type Track struct {
	Clip       Clip
	SampleRate int
	Samples    []float64
	Placements []Placement

	// Normalized is false when the mix was silent and left unscaled
	Normalized bool
}

func newTrack(clip Clip, sampleRate int) *Track {
	return &Track{
		Clip:       clip,
		SampleRate: sampleRate,
		Samples:    make([]float64, audio.Samples(sampleRate, clip.Duration)),
	}
}

// mix adds seg at start if it fits and records the attempt
func (t *Track) mix(layer string, seg []float64, start int) {
	placed := synth.MixAt(t.Samples, seg, start)
	t.Placements = append(t.Placements, Placement{
		Layer:  layer,
		Start:  start,
		Length: len(seg),
		Placed: placed,
	})
}

func (t *Track) normalize() {
	t.Normalized = synth.Normalize(t.Samples, t.Clip.Peak)
}

// fadeAndNormalize fades both edges over n samples, then normalizes so the
// faded mix still reaches the clip's peak
func (t *Track) fadeAndNormalize(n int) {
	synth.FadeIn(t.Samples, n)
	synth.FadeOut(t.Samples, n)
	t.normalize()
}

// Layer returns the placements recorded for one layer
func (t *Track) Layer(name string) []Placement {
	var out []Placement
	for _, p := range t.Placements {
		if p.Layer == name {
			out = append(out, p)
		}
	}
	return out
}

// Dropped counts placements rejected by the overrun guard
func (t *Track) Dropped() int {
	var n int
	for _, p := range t.Placements {
		if !p.Placed {
			n++
		}
	}
	return n
}

// Composer builds the lottery clips at a given sample rate
type Composer struct {
	sampleRate int
	rng        *rand.Rand
}

// NewComposer creates a composer drawing noise and sparkle pitches from rng
func NewComposer(sampleRate int, rng *rand.Rand) *Composer {
	return &Composer{
		sampleRate: sampleRate,
		rng:        rng,
	}
}

// Compose builds the named clip
func (c *Composer) Compose(clip Clip) (*Track, error) {
	switch clip.Name {
	case RollingClip.Name:
		return c.Rolling(), nil
	case WinClip.Name:
		return c.Win(), nil
	case BGMClip.Name:
		return c.BGM(), nil
	default:
		return nil, fmt.Errorf("unknown clip: %s", clip.Name)
	}
}

// tones sums harmonics of equal duration into one segment
func (c *Composer) tones(duration float64, partials ...partial) []float64 {
	var out []float64
	for i, p := range partials {
		tone := synth.Tone(p.freq, duration, c.sampleRate, p.amp)
		if i == 0 {
			out = tone
			continue
		}
		synth.Sum(out, tone)
	}
	return out
}

type partial struct {
	freq float64
	amp  float64
}
