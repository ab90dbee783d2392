// ABOUTME: MP3 audio decoder
// ABOUTME: Parses MP3 frames to report sample rate and length
package decode

import (
	"fmt"
	"io"

	"github.com/bni-lottery/soundgen/pkg/audio"
	"github.com/hajimehoshi/go-mp3"
)

// mp3 decoder output is always 16-bit stereo
const mp3BytesPerFrame = 4

// ProbeMP3 decodes the MP3 frame index and returns its length
func ProbeMP3(r io.ReadSeeker) (Info, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return Info{}, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	length := decoder.Length()
	if length <= 0 {
		return Info{}, fmt.Errorf("mp3 stream has no decodable frames")
	}

	format := audio.Format{
		Codec:      "mp3",
		SampleRate: decoder.SampleRate(),
		Channels:   2,
		BitDepth:   16,
	}

	return newInfo(format, length/mp3BytesPerFrame), nil
}
