package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT provides Fast Fourier Transform functionality
type FFT struct {
	// No state needed for now
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the forward transform using mjibson/go-dsp.
// Takes []float64 input and returns []complex128 output.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2
	return fft.FFTReal(x)
}

// ComputeInverse computes the inverse transform
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.IFFT(x)
}

// CrossCorrelate computes the linear cross-correlation
//
//	corr[lag] = sum_{j=0}^{len(short)-1} short[j] * long[j+lag]
//
// for lag in [0, maxLag). Both signals are zero-padded to a power of two
// large enough to avoid circular wrap-around, so the result matches the
// direct time-domain sum up to floating-point error. The caller must
// guarantee len(short)+maxLag <= len(long)+1.
func (f *FFT) CrossCorrelate(short, long []float64, maxLag int) []float64 {
	if maxLag <= 0 || len(short) == 0 || len(long) == 0 {
		return []float64{}
	}

	size := nextPowerOfTwo(len(long) + len(short))

	paddedShort := make([]float64, size)
	copy(paddedShort, short)
	paddedLong := make([]float64, size)
	copy(paddedLong, long)

	specShort := fft.FFTReal(paddedShort)
	specLong := fft.FFTReal(paddedLong)

	// Correlation theorem: corr = IFFT(conj(FFT(short)) * FFT(long))
	product := make([]complex128, size)
	for i := range product {
		re := real(specShort[i])
		im := imag(specShort[i])
		product[i] = complex(re, -im) * specLong[i]
	}

	corrSpec := fft.IFFT(product)

	corr := make([]float64, maxLag)
	for lag := range corr {
		corr[lag] = real(corrSpec[lag])
	}
	return corr
}

// nextPowerOfTwo returns the smallest power of two >= n
func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
