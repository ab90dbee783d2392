// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format and float/PCM sample conversion functions
// Package audio provides fundamental audio types and utilities for clip generation.
//
// This package defines core types used throughout soundgen:
//   - Format: Describes a file format (codec, sample rate, channels, bit depth)
//
// It also provides utilities for converting between sample representations:
//   - float64 in [-1, 1] ↔ 16-bit PCM
//   - seconds ↔ sample counts
//
// Example:
//
//	format := audio.PCM16Mono(audio.DefaultSampleRate)
//	n := audio.Samples(format.SampleRate, 2.5) // 110250
//	pcm := audio.SampleToInt16(0.5)            // 16384
package audio
