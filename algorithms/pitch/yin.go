package pitch

import (
	"github.com/intona-audio/intona/algorithms/spectral"
)

// Estimator implements the YIN fundamental-frequency estimator for a single
// analysis window.
//
// References:
// - de Cheveigné, A., Kawahara, H. (2002). "YIN, a fundamental frequency estimator for speech and music"
//
// The difference function is evaluated over lags up to half the window, so a
// window of W samples can resolve periods down to sampleRate/(W/2) Hz. The
// estimator applies no frequency-band acceptance itself; a given window
// always yields the same candidate regardless of the band the caller filters
// with afterwards.
type Estimator struct {
	sampleRate int
	threshold  float64

	fft *spectral.FFT
}

// NewEstimator creates a YIN estimator for the given sample rate.
// threshold is the absolute CMNDF acceptance threshold (0.1-0.5 typical).
func NewEstimator(sampleRate int, threshold float64) *Estimator {
	return &Estimator{
		sampleRate: sampleRate,
		threshold:  threshold,
		fft:        spectral.NewFFT(),
	}
}

// Estimate returns the fundamental frequency of one analysis window in Hz.
// ok is false when the window is silent, unvoiced or aperiodic and no
// candidate dipped below the CMNDF threshold.
func (e *Estimator) Estimate(frame []float64) (freq float64, ok bool) {
	half := len(frame) / 2
	if half < 2 {
		return 0, false
	}

	diff := e.differenceFunction(frame, half)

	// Cumulative mean normalized difference function
	cmndf := make([]float64, half)
	cmndf[0] = 1.0

	runningSum := 0.0
	for tau := 1; tau < half; tau++ {
		runningSum += diff[tau]
		if runningSum > 0 {
			cmndf[tau] = diff[tau] * float64(tau) / runningSum
		} else {
			cmndf[tau] = 1.0
		}
	}

	// First local minimum below threshold
	minTau := -1
	for tau := 1; tau < half; tau++ {
		if cmndf[tau] < e.threshold {
			if tau+1 < half && cmndf[tau] < cmndf[tau+1] {
				minTau = tau
				break
			}
		}
	}

	if minTau <= 0 {
		return 0, false
	}

	// Parabolic interpolation for sub-sample period accuracy
	period := parabolicInterpolation(cmndf, minTau)
	if period <= 0 {
		return 0, false
	}

	return float64(e.sampleRate) / period, true
}

// differenceFunction computes the YIN difference function
//
//	d(tau) = sum_{j=0}^{half-1} (x[j] - x[j+tau])^2
//
// for tau in [0, half). Expanding the square gives
// d(tau) = p(0) + p(tau) - 2*corr(tau) where p(tau) is the energy of the
// half-window starting at tau and corr is the lagged cross-correlation,
// which lets the quadratic term run through one FFT instead of a nested loop.
func (e *Estimator) differenceFunction(frame []float64, half int) []float64 {
	// Prefix sums of squared samples for the energy terms
	prefix := make([]float64, len(frame)+1)
	for i, v := range frame {
		prefix[i+1] = prefix[i] + v*v
	}

	corr := e.fft.CrossCorrelate(frame[:half], frame, half)

	p0 := prefix[half]
	diff := make([]float64, half)
	for tau := range diff {
		pTau := prefix[tau+half] - prefix[tau]
		d := p0 + pTau - 2*corr[tau]
		if d < 0 {
			// Rounding noise from the FFT path; the exact value is >= 0
			d = 0
		}
		diff[tau] = d
	}
	return diff
}

// parabolicInterpolation refines a discrete minimum location by fitting a
// parabola through the point and its two neighbors
func parabolicInterpolation(data []float64, peakIdx int) float64 {
	if peakIdx <= 0 || peakIdx >= len(data)-1 {
		return float64(peakIdx)
	}

	y1 := data[peakIdx-1]
	y2 := data[peakIdx]
	y3 := data[peakIdx+1]

	a := (y1 - 2*y2 + y3) / 2
	b := (y3 - y1) / 2

	if a == 0 {
		return float64(peakIdx)
	}

	return float64(peakIdx) - b/(2*a)
}
