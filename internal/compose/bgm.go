// ABOUTME: Background music composer
// ABOUTME: Bass, chord and melody layers at 120 BPM with edge fades
package compose

import "github.com/bni-lottery/soundgen/pkg/audio/synth"

const (
	bpm          = 120
	beatDuration = 60.0 / bpm
	fadeDuration = 0.5
)

// C3 D3 E3 D3
var bassPattern = []float64{130, 146, 164, 146}

// two beats per chord, played twice
var chordProgression = [][]float64{
	{261, 329, 392},
	{293, 369, 440},
	{329, 415, 493},
	{293, 369, 440},
}

type melodyNote struct {
	freq  float64
	beats float64
}

var melody = []melodyNote{
	{523, 0.5}, {587, 0.5}, {659, 0.5}, {587, 0.5},
	{523, 0.5}, {493, 0.5}, {523, 1.0},
	{659, 0.5}, {698, 0.5}, {784, 0.5}, {698, 0.5},
	{659, 0.5}, {587, 0.5}, {523, 1.0},
}

var (
	bassEnvelope   = synth.Envelope{Attack: 0.05, Decay: 0.2, Sustain: 0.6, Release: 0.2}
	padEnvelope    = synth.Envelope{Attack: 0.1, Decay: 0.2, Sustain: 0.5, Release: 0.3}
	melodyEnvelope = synth.Envelope{Attack: 0.08, Decay: 0.15, Sustain: 0.5, Release: 0.25}
)

// BGM composes the background loop
func (c *Composer) BGM() *Track {
	track := newTrack(BGMClip, c.sampleRate)

	c.bass(track)
	c.chords(track)
	c.melody(track)

	track.fadeAndNormalize(int(fadeDuration * float64(c.sampleRate)))
	return track
}

func (c *Composer) bass(track *Track) {
	beatSamples := int(beatDuration * float64(c.sampleRate))
	beats := int(BGMClip.Duration / beatDuration)

	for beat := 0; beat < beats; beat++ {
		freq := bassPattern[beat%len(bassPattern)]
		note := c.tones(beatDuration*0.8,
			partial{freq, 0.3},
			partial{freq * 0.5, 0.15},
		)
		track.mix("bass", bassEnvelope.Apply(note), beat*beatSamples)
	}
}

func (c *Composer) chords(track *Track) {
	span := beatDuration * 2
	sr := float64(c.sampleRate)

	for i := 0; i < 2*len(chordProgression); i++ {
		freqs := chordProgression[i%len(chordProgression)]
		start := int(float64(i) * span * sr)

		chord := make([]float64, synth.Length(span*0.9, c.sampleRate))
		for _, freq := range freqs {
			synth.Sum(chord, synth.Tone(freq, span*0.9, c.sampleRate, 0.12))
		}
		track.mix("chord", padEnvelope.Apply(chord), start)
	}
}

func (c *Composer) melody(track *Track) {
	var cursor float64 // seconds

	for _, n := range melody {
		noteDuration := n.beats * beatDuration
		start := int(cursor * float64(c.sampleRate))

		note := c.tones(noteDuration*0.9,
			partial{n.freq, 0.2},
			partial{n.freq * 2, 0.08},
		)
		track.mix("melody", melodyEnvelope.Apply(note), start)

		cursor += noteDuration
	}
}
