// ABOUTME: Audio type definitions
// ABOUTME: Defines clip formats and float-to-PCM sample conversions
package audio

import (
	"math"
	"time"
)

const (
	// DefaultSampleRate is CD quality, used for every generated clip.
	DefaultSampleRate = 44100

	// 16-bit PCM range constants
	Max16Bit = 32767
	Min16Bit = -32768
)

// Format describes an audio file format
type Format struct {
	Codec      string // wav, mp3, flac, opus
	SampleRate int
	Channels   int
	BitDepth   int
}

// PCM16Mono returns the format of the uncompressed clips written by the generator
func PCM16Mono(sampleRate int) Format {
	return Format{
		Codec:      "wav",
		SampleRate: sampleRate,
		Channels:   1,
		BitDepth:   16,
	}
}

// Samples returns the number of samples covering duration seconds, rounded
func Samples(sampleRate int, duration float64) int {
	if duration <= 0 {
		return 0
	}
	return int(math.Round(float64(sampleRate) * duration))
}

// Duration converts a sample count to a time.Duration
func Duration(sampleRate, samples int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

// Clamp limits a float sample to [-1, 1]
func Clamp(sample float64) float64 {
	if sample > 1 {
		return 1
	}
	if sample < -1 {
		return -1
	}
	return sample
}

// SampleToInt16 clamps a float sample and quantizes it to 16-bit PCM
func SampleToInt16(sample float64) int16 {
	return int16(math.Round(Clamp(sample) * Max16Bit))
}

// SampleFromInt16 converts a 16-bit PCM sample back to a float in [-1, 1]
func SampleFromInt16(sample int16) float64 {
	// -32768 maps slightly below -1; clamp keeps the range symmetric
	return Clamp(float64(sample) / Max16Bit)
}
