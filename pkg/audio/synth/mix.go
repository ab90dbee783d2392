// ABOUTME: Additive mixing, placement guard and buffer post-processing
// ABOUTME: Segments that would overrun a buffer are dropped, never truncated
package synth

import "math"

// Fits reports whether a segment of n samples starting at start lies
// entirely inside a buffer of bufLen samples. A segment ending exactly at
// the buffer end fits.
func Fits(bufLen, start, n int) bool {
	return start >= 0 && n >= 0 && start+n <= bufLen
}

// MixAt adds src into dst at offset start. It returns false and leaves dst
// untouched when src does not fit.
func MixAt(dst, src []float64, start int) bool {
	if !Fits(len(dst), start, len(src)) {
		return false
	}
	seg := dst[start : start+len(src)]
	for i, s := range src {
		seg[i] += s
	}
	return true
}

// Sum adds each of srcs into dst in place and returns dst. Only the
// overlapping prefix of each source is added.
func Sum(dst []float64, srcs ...[]float64) []float64 {
	for _, src := range srcs {
		n := min(len(dst), len(src))
		for i := 0; i < n; i++ {
			dst[i] += src[i]
		}
	}
	return dst
}

// Peak returns the largest absolute sample value
func Peak(buf []float64) float64 {
	var peak float64
	for _, s := range buf {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// Normalize scales buf in place so its peak equals target. An all-zero
// buffer is left as is and Normalize reports false.
func Normalize(buf []float64, target float64) bool {
	peak := Peak(buf)
	if peak == 0 {
		return false
	}
	for i := range buf {
		buf[i] = buf[i] / peak * target
	}
	return true
}

// FadeIn multiplies the first n samples by a 0→1 linear ramp
func FadeIn(buf []float64, n int) {
	n = min(n, len(buf))
	for i, g := range Linspace(0, 1, n) {
		buf[i] *= g
	}
}

// FadeOut multiplies the last n samples by a 1→0 linear ramp
func FadeOut(buf []float64, n int) {
	n = min(n, len(buf))
	start := len(buf) - n
	for i, g := range Linspace(1, 0, n) {
		buf[start+i] *= g
	}
}
