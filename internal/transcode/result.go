// ABOUTME: Transcode outcome types
// ABOUTME: A Result is Converted, Unavailable or Failed; callers branch on Kind
package transcode

import (
	"errors"
	"fmt"
)

// ErrUnavailable is reported when the ffmpeg binary cannot be found
var ErrUnavailable = errors.New("ffmpeg not available")

// Kind classifies a transcode attempt
type Kind int

const (
	Converted Kind = iota
	Unavailable
	Failed
)

func (k Kind) String() string {
	switch k {
	case Converted:
		return "converted"
	case Unavailable:
		return "unavailable"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of transcoding one file
type Result struct {
	Kind   Kind
	Source string // input WAV path
	Path   string // compressed file, set when Converted
	Err    error  // reason, set when Unavailable or Failed
}

// OK reports whether the file was converted
func (r Result) OK() bool {
	return r.Kind == Converted
}

func (r Result) String() string {
	switch r.Kind {
	case Converted:
		return fmt.Sprintf("%s -> %s", r.Source, r.Path)
	default:
		return fmt.Sprintf("%s: %s (%v)", r.Source, r.Kind, r.Err)
	}
}
