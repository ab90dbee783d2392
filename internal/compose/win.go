// ABOUTME: Win sound composer
// ABOUTME: Rising C major scale, sparkles and a closing chord
package compose

import "github.com/bni-lottery/soundgen/pkg/audio/synth"

const (
	scaleNoteDuration = 0.12
	scaleNoteSpacing  = 0.8 // fraction of a note between onsets

	sparkleDuration = 0.05
	sparkleMinFreq  = 2000
	sparkleMaxFreq  = 4000 // exclusive

	chordStart    = 1.5
	chordDuration = 1.0
)

// C5 to E6
var winScale = []float64{523, 587, 659, 784, 880, 988, 1047, 1175, 1319}

var sparkleTimes = []float64{0.3, 0.5, 0.7, 1.0, 1.2, 1.5, 1.8, 2.0}

// C E G C'
var winChord = []float64{523, 659, 784, 1047}

var (
	scaleEnvelope   = synth.Envelope{Attack: 0.05, Decay: 0.2, Sustain: 0.5, Release: 0.3}
	sparkleEnvelope = synth.Envelope{Attack: 0.1, Decay: 0.3, Sustain: 0.2, Release: 0.4}
	chordEnvelope   = synth.Envelope{Attack: 0.1, Decay: 0.2, Sustain: 0.6, Release: 0.3}
)

// Win composes the celebration sting
func (c *Composer) Win() *Track {
	track := newTrack(WinClip, c.sampleRate)
	sr := float64(c.sampleRate)

	for i, freq := range winScale {
		start := int(float64(i) * scaleNoteDuration * scaleNoteSpacing * sr)
		note := c.tones(scaleNoteDuration,
			partial{freq, 0.4},
			partial{freq * 2, 0.2},
			partial{freq * 3, 0.1},
		)
		track.mix("scale", scaleEnvelope.Apply(note), start)
	}

	for _, at := range sparkleTimes {
		freq := float64(sparkleMinFreq + c.rng.IntN(sparkleMaxFreq-sparkleMinFreq))
		sparkle := synth.Tone(freq, sparkleDuration, c.sampleRate, 0.2)
		track.mix("sparkle", sparkleEnvelope.Apply(sparkle), int(at*sr))
	}

	chord := make([]float64, synth.Length(chordDuration, c.sampleRate))
	for _, freq := range winChord {
		synth.Sum(chord, synth.Tone(freq, chordDuration, c.sampleRate, 0.25))
	}
	track.mix("chord", chordEnvelope.Apply(chord), int(chordStart*sr))

	track.normalize()
	return track
}
