// ABOUTME: Piecewise-linear ADSR envelope
// ABOUTME: Segment lengths are fractions of the shaped buffer's own length
package synth

// Envelope is an attack/decay/sustain/release amplitude shape.
//
// Attack, Decay and Release are fractions of the target buffer length;
// Sustain is the plateau level. Segments are written in order attack,
// decay, sustain, release, and the release ramp always owns the last
// Release*n samples even when that overlaps earlier segments.
type Envelope struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// Curve returns the amplitude multipliers for a buffer of n samples
func (e Envelope) Curve(n int) []float64 {
	if n <= 0 {
		return nil
	}

	curve := make([]float64, n)
	for i := range curve {
		curve[i] = 1
	}

	attack := int(e.Attack * float64(n))
	decay := int(e.Decay * float64(n))
	release := int(e.Release * float64(n))

	if attack > 0 {
		copy(curve[:min(attack, n)], Linspace(0, 1, attack))
	}

	decayEnd := attack + decay
	if decay > 0 && decayEnd < n {
		copy(curve[attack:decayEnd], Linspace(1, e.Sustain, decay))
	}

	sustainEnd := n - release
	if sustainEnd > decayEnd {
		for i := decayEnd; i < sustainEnd; i++ {
			curve[i] = e.Sustain
		}
	}

	if release > 0 {
		ramp := Linspace(e.Sustain, 0, release)
		if release > n {
			ramp = ramp[release-n:]
		}
		copy(curve[n-len(ramp):], ramp)
	}

	return curve
}

// Apply returns wave shaped by the envelope. The input is not modified.
func (e Envelope) Apply(wave []float64) []float64 {
	curve := e.Curve(len(wave))
	out := make([]float64, len(wave))
	for i, s := range wave {
		out[i] = s * curve[i]
	}
	return out
}
