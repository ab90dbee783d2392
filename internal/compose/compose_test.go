// ABOUTME: Tests for the clip composers
// ABOUTME: Tests lengths, peaks, placement policy and determinism
package compose

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/bni-lottery/soundgen/pkg/audio"
	"github.com/bni-lottery/soundgen/pkg/audio/synth"
)

func newTestComposer(seed uint64) *Composer {
	return NewComposer(audio.DefaultSampleRate, rand.New(rand.NewPCG(seed, seed)))
}

func TestComposeLengthsAndPeaks(t *testing.T) {
	c := newTestComposer(1)

	tests := []struct {
		clip       Clip
		wantLength int
	}{
		{RollingClip, 132300},
		{WinClip, 110250},
		{BGMClip, 352800},
	}

	for _, tt := range tests {
		t.Run(tt.clip.Name, func(t *testing.T) {
			track, err := c.Compose(tt.clip)
			if err != nil {
				t.Fatalf("Compose() failed: %v", err)
			}

			if len(track.Samples) != tt.wantLength {
				t.Errorf("expected %d samples, got %d", tt.wantLength, len(track.Samples))
			}
			if len(track.Samples) != audio.Samples(audio.DefaultSampleRate, tt.clip.Duration) {
				t.Errorf("length does not match round(rate*duration)")
			}
			if !track.Normalized {
				t.Error("expected track to be normalized")
			}
			if peak := synth.Peak(track.Samples); math.Abs(peak-tt.clip.Peak) > 1e-9 {
				t.Errorf("expected peak %v, got %v", tt.clip.Peak, peak)
			}
		})
	}
}

func TestComposeUnknownClip(t *testing.T) {
	_, err := newTestComposer(1).Compose(Clip{Name: "jackpot", Duration: 1, Peak: 1})
	if err == nil {
		t.Fatal("expected error for unknown clip, got nil")
	}
}

func TestRollingClicks(t *testing.T) {
	track := newTestComposer(2).Rolling()
	clicks := track.Layer("click")

	// 3s at 15 clicks per second
	if len(clicks) != 45 {
		t.Fatalf("expected 45 click placements, got %d", len(clicks))
	}

	interval := audio.DefaultSampleRate / 15
	for i, p := range clicks {
		if !p.Placed {
			t.Errorf("click %d at %d was dropped", i, p.Start)
		}
		if p.Start != i*interval {
			t.Errorf("click %d: expected start %d, got %d", i, i*interval, p.Start)
		}
		if p.Length != 882 {
			t.Errorf("click %d: expected 20ms (882 samples), got %d", i, p.Length)
		}
		if p.Start+p.Length > len(track.Samples) {
			t.Errorf("click %d overruns the buffer", i)
		}
	}
}

func TestRollingSampleRateBelowClickRate(t *testing.T) {
	done := make(chan *Track, 1)
	go func() {
		done <- NewComposer(10, rand.New(rand.NewPCG(1, 1))).Rolling()
	}()

	select {
	case track := <-done:
		if len(track.Samples) != 30 {
			t.Errorf("expected 30 samples, got %d", len(track.Samples))
		}
		if n := len(track.Layer("click")); n != 0 {
			t.Errorf("expected no click placements, got %d", n)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Rolling() did not return at a 10 Hz sample rate")
	}
}

func TestRollingDeterministicWithSeed(t *testing.T) {
	a := newTestComposer(42).Rolling()
	b := newTestComposer(42).Rolling()

	if len(a.Samples) != len(b.Samples) {
		t.Fatalf("length mismatch: %d vs %d", len(a.Samples), len(b.Samples))
	}
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a.Samples[i], b.Samples[i])
		}
	}
}

func TestWinScaleAscending(t *testing.T) {
	track := newTestComposer(3).Win()
	scale := track.Layer("scale")

	if len(scale) != len(winScale) {
		t.Fatalf("expected %d scale notes, got %d", len(winScale), len(scale))
	}

	for i, p := range scale {
		if !p.Placed {
			t.Errorf("scale note %d dropped", i)
		}
		if i > 0 && p.Start <= scale[i-1].Start {
			t.Errorf("note %d starts at %d, not after %d", i, p.Start, scale[i-1].Start)
		}
		// 80% spacing: consecutive notes overlap
		if i > 0 && p.Start >= scale[i-1].Start+scale[i-1].Length {
			t.Errorf("note %d does not overlap the previous note", i)
		}
	}
}

func TestWinChordExactFit(t *testing.T) {
	track := newTestComposer(4).Win()
	chords := track.Layer("chord")

	if len(chords) != 1 {
		t.Fatalf("expected one chord placement, got %d", len(chords))
	}

	chord := chords[0]
	if chord.Start+chord.Length != len(track.Samples) {
		t.Errorf("expected chord to end exactly at %d, ends at %d", len(track.Samples), chord.Start+chord.Length)
	}
	if !chord.Placed {
		t.Error("chord ending exactly at the buffer end must be placed")
	}
}

func TestWinSparkles(t *testing.T) {
	track := newTestComposer(5).Win()
	sparkles := track.Layer("sparkle")

	if len(sparkles) != len(sparkleTimes) {
		t.Fatalf("expected %d sparkles, got %d", len(sparkleTimes), len(sparkles))
	}
	for i, p := range sparkles {
		if !p.Placed {
			t.Errorf("sparkle %d dropped", i)
		}
		if p.Length != 2205 {
			t.Errorf("sparkle %d: expected 50ms (2205 samples), got %d", i, p.Length)
		}
	}
	if track.Dropped() != 0 {
		t.Errorf("expected no dropped placements, got %d", track.Dropped())
	}
}

func TestBGMLayers(t *testing.T) {
	track := newTestComposer(6).BGM()

	if got := len(track.Layer("bass")); got != 16 {
		t.Errorf("expected 16 bass notes, got %d", got)
	}
	if got := len(track.Layer("chord")); got != 8 {
		t.Errorf("expected 8 chords, got %d", got)
	}
	if got := len(track.Layer("melody")); got != len(melody) {
		t.Errorf("expected %d melody notes, got %d", len(melody), got)
	}

	for _, p := range track.Placements {
		if p.Placed && p.Start+p.Length > len(track.Samples) {
			t.Errorf("%s placement at %d overruns the buffer", p.Layer, p.Start)
		}
	}
}

func TestBGMMelodySequential(t *testing.T) {
	track := newTestComposer(7).BGM()
	notes := track.Layer("melody")

	var cursor float64
	for i, p := range notes {
		want := int(cursor * audio.DefaultSampleRate)
		if p.Start != want {
			t.Errorf("note %d: expected start %d, got %d", i, want, p.Start)
		}
		// 90% of its own duration, so notes never overlap
		if i+1 < len(notes) && p.Start+p.Length > notes[i+1].Start {
			t.Errorf("note %d overlaps note %d", i, i+1)
		}
		cursor += melody[i].beats * beatDuration
	}

	// the melody is allowed to finish before the loop does
	if end := int(cursor * audio.DefaultSampleRate); end > len(track.Samples) {
		t.Errorf("melody cursor %d past buffer end %d", end, len(track.Samples))
	}
	if cursor != 4.0 {
		t.Errorf("expected melody to span 4s, got %v", cursor)
	}
}

func TestBGMFades(t *testing.T) {
	track := newTestComposer(8).BGM()

	if track.Samples[0] != 0 {
		t.Errorf("expected fade-in to start at 0, got %v", track.Samples[0])
	}
	if last := track.Samples[len(track.Samples)-1]; last != 0 {
		t.Errorf("expected fade-out to end at 0, got %v", last)
	}
}

func TestFadeBeforeNormalize(t *testing.T) {
	// fades overlap in the middle, so every sample is attenuated
	track := &Track{
		Clip:    BGMClip,
		Samples: []float64{1, 1, 1, 1, 1, 1, 1, 1},
	}

	track.fadeAndNormalize(5)

	if !track.Normalized {
		t.Fatal("expected track to be normalized")
	}
	if peak := synth.Peak(track.Samples); math.Abs(peak-BGMClip.Peak) > 1e-12 {
		t.Errorf("expected peak %v after fades, got %v", BGMClip.Peak, peak)
	}
	if track.Samples[0] != 0 || track.Samples[7] != 0 {
		t.Errorf("expected silent edges, got %v and %v", track.Samples[0], track.Samples[7])
	}
}
