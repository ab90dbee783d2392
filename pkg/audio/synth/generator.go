// ABOUTME: Tone and noise generators
// ABOUTME: Produces raw sine and uniform white noise sample buffers
package synth

import (
	"math"
	"math/rand/v2"
)

// Length returns the number of samples a generator produces for duration
// seconds. It truncates, so generated segments never exceed their slot.
func Length(duration float64, sampleRate int) int {
	if duration <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(float64(sampleRate) * duration)
}

// Tone generates amplitude*sin(2πft) sampled at 1/sampleRate over [0, duration)
func Tone(frequency, duration float64, sampleRate int, amplitude float64) []float64 {
	n := Length(duration, sampleRate)
	wave := make([]float64, n)
	for i := range wave {
		t := float64(i) / float64(sampleRate)
		wave[i] = amplitude * math.Sin(2*math.Pi*frequency*t)
	}
	return wave
}

// Noise generates uniform white noise in [-amplitude, amplitude]
func Noise(duration float64, sampleRate int, amplitude float64, rng *rand.Rand) []float64 {
	n := Length(duration, sampleRate)
	noise := make([]float64, n)
	for i := range noise {
		noise[i] = amplitude * (rng.Float64()*2 - 1)
	}
	return noise
}

// Linspace returns n evenly spaced values from start to end inclusive
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	// Pin the last value; accumulated rounding must not leave a tail above zero
	out[n-1] = end
	return out
}
