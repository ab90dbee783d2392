// ABOUTME: Audio decoder package for verifying generated files
// ABOUTME: Provides probes for WAV, MP3, FLAC and Ogg Opus files
// Package decode inspects encoded audio files.
//
// Supports: WAV (16-bit PCM), MP3, FLAC, Ogg Opus
//
// Each probe parses the file far enough to report its format and length,
// which is how the transcoder confirms that an output is usable.
//
// Example:
//
//	info, err := decode.ProbeFile("public/sounds/win.mp3")
//	fmt.Println(info.Format.SampleRate, info.Duration)
package decode
