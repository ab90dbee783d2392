// ABOUTME: Progress events emitted while generating
// ABOUTME: Consumed by the TUI and by tests
package generator

// Stage identifies where a clip is in the pipeline
type Stage int

const (
	StageComposing Stage = iota
	StageWritten
	StageConverting
	StageConverted
	StageFallback // left as WAV after a transcode attempt
	StageDone     // whole run finished; Clip is empty
)

func (s Stage) String() string {
	switch s {
	case StageComposing:
		return "composing"
	case StageWritten:
		return "written"
	case StageConverting:
		return "converting"
	case StageConverted:
		return "converted"
	case StageFallback:
		return "wav fallback"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event reports progress for one clip
type Event struct {
	Clip   string
	Stage  Stage
	Detail string
}
