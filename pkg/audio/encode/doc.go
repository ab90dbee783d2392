// ABOUTME: Audio encoder package for writing generated clips
// ABOUTME: Provides Encoder interface and a 16-bit PCM WAV implementation
// Package encode provides audio encoders for generated clips.
//
// Supports: WAV (16-bit PCM)
//
// All encoders accept float64 samples in [-1, 1]; out-of-range values are
// clipped before quantization.
//
// Example:
//
//	err := encode.WriteWAV("public/sounds/win.wav", samples, audio.PCM16Mono(44100))
package encode
