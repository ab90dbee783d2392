// ABOUTME: Waveform synthesis package for procedural sound effects
// ABOUTME: Provides tone/noise generators, ADSR envelopes and additive mixing
// Package synth provides the building blocks used to compose clips.
//
// All buffers are []float64 at a caller-supplied sample rate. Generators
// are pure apart from Noise, which draws from an injected *rand.Rand.
//
// Example:
//
//	click := synth.Tone(800, 0.02, 44100, 0.4)
//	synth.Sum(click, synth.Noise(0.02, 44100, 0.1, rng))
//	click = synth.Envelope{Attack: 0.01, Decay: 0.3, Sustain: 0.1, Release: 0.5}.Apply(click)
//	placed := synth.MixAt(buf, click, start)
package synth
