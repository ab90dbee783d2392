// ABOUTME: Rolling sound composer
// ABOUTME: Slot-machine style clicks over a low hum
package compose

import "github.com/bni-lottery/soundgen/pkg/audio/synth"

const (
	clicksPerSecond = 15
	clickDuration   = 0.02
	humFrequency    = 100
	humAmplitude    = 0.05
)

// click envelope lengths are fractions of the 20ms click itself
var clickEnvelope = synth.Envelope{Attack: 0.01, Decay: 0.3, Sustain: 0.1, Release: 0.5}

// Rolling composes the looping draw sound: metallic clicks at 15 per second
func (c *Composer) Rolling() *Track {
	track := newTrack(RollingClip, c.sampleRate)
	// rates below clicksPerSecond leave no room for clicks
	if interval := c.sampleRate / clicksPerSecond; interval > 0 {
		for start := 0; start < len(track.Samples); start += interval {
			track.mix("click", c.click(), start)
		}
	}

	synth.Sum(track.Samples, synth.Tone(humFrequency, RollingClip.Duration, c.sampleRate, humAmplitude))

	track.normalize()
	return track
}

func (c *Composer) click() []float64 {
	click := c.tones(clickDuration,
		partial{800, 0.4},
		partial{1200, 0.3},
		partial{2000, 0.2},
	)
	synth.Sum(click, synth.Noise(clickDuration, c.sampleRate, 0.1, c.rng))
	return clickEnvelope.Apply(click)
}
