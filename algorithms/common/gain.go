package common

import (
	"math"
)

// GainNormalizer rescales waveforms whose level is too low for reliable
// pitch detection. Signals with a healthy peak pass through untouched.
type GainNormalizer struct {
	// QuietPeak is the peak absolute amplitude below which the signal is
	// considered too quiet
	QuietPeak float64

	// Gain is the fixed factor applied to quiet signals. Boosted samples
	// are hard-clipped to [-1, 1], not soft-limited.
	Gain float64
}

// NewGainNormalizer creates a gain normalizer with explicit thresholds
func NewGainNormalizer(quietPeak, gain float64) *GainNormalizer {
	return &GainNormalizer{
		QuietPeak: quietPeak,
		Gain:      gain,
	}
}

// Normalize returns a waveform of identical length. applied reports whether
// the gain was used; when it is false the input slice is returned unchanged.
// Pure function, no error cases.
func (g *GainNormalizer) Normalize(signal []float64) (out []float64, applied bool) {
	if Peak(signal) >= g.QuietPeak {
		return signal, false
	}

	boosted := make([]float64, len(signal))
	for i, v := range signal {
		boosted[i] = Clamp(v*g.Gain, -1.0, 1.0)
	}
	return boosted, true
}

// Peak returns the maximum absolute sample value of the signal
func Peak(signal []float64) float64 {
	peak := 0.0
	for _, v := range signal {
		if abs := math.Abs(v); abs > peak {
			peak = abs
		}
	}
	return peak
}

// Clamp hard-limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
