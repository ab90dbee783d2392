// ABOUTME: FLAC audio decoder
// ABOUTME: Parses the FLAC stream info block
package decode

import (
	"fmt"
	"io"

	"github.com/bni-lottery/soundgen/pkg/audio"
	"github.com/mewkiz/flac"
)

// ProbeFLAC parses the StreamInfo metadata block
func ProbeFLAC(r io.Reader) (Info, error) {
	stream, err := flac.New(r)
	if err != nil {
		return Info{}, fmt.Errorf("failed to parse FLAC stream: %w", err)
	}
	defer stream.Close()

	if stream.Info.NSamples == 0 {
		return Info{}, fmt.Errorf("flac stream has no samples")
	}

	format := audio.Format{
		Codec:      "flac",
		SampleRate: int(stream.Info.SampleRate),
		Channels:   int(stream.Info.NChannels),
		BitDepth:   int(stream.Info.BitsPerSample),
	}

	return newInfo(format, int64(stream.Info.NSamples)), nil
}
