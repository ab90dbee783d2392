// ABOUTME: Ogg Opus audio decoder
// ABOUTME: Decodes an Ogg Opus stream to count its samples
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/bni-lottery/soundgen/pkg/audio"
	"gopkg.in/hraban/opus.v2"
)

// Opus always decodes at 48kHz
const opusSampleRate = 48000

// ProbeOpus decodes the whole stream and counts samples per channel
func ProbeOpus(r io.Reader) (Info, error) {
	stream, err := opus.NewStream(r)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open opus stream: %w", err)
	}
	defer stream.Close()

	// 120ms stereo, the largest frame libopusfile returns
	pcm := make([]int16, 5760*2)

	var frames int64
	for {
		n, err := stream.Read(pcm)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Info{}, fmt.Errorf("opus decode failed: %w", err)
		}
		frames += int64(n)
	}

	if frames == 0 {
		return Info{}, fmt.Errorf("opus stream has no samples")
	}

	format := audio.Format{
		Codec:      "opus",
		SampleRate: opusSampleRate,
		BitDepth:   16,
	}

	return newInfo(format, frames), nil
}
