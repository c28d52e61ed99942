package grid

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT wraps go-dsp's FFT routines with the zero-padding this module's
// correlator relies on to avoid circular wraparound.
type FFT struct{}

// NewFFT creates a new FFT calculator.
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the forward FFT of a real-valued signal.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.FFTReal(x)
}

// ComputeInverse computes the inverse FFT, returning the full complex result.
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.IFFT(x)
}

// ComputeInverseReal computes the inverse FFT and discards the imaginary part.
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}
	result := fft.IFFT(x)
	out := make([]float64, len(result))
	for i, v := range result {
		out[i] = real(v)
	}
	return out
}

// ComputePadded zero-pads x to padTo samples (padTo must be >= len(x)) before
// taking the forward FFT. This is how the correlator avoids circular wrap:
// both the input and every template are padded to at least 2N before their
// cross-power spectrum is formed.
func (f *FFT) ComputePadded(x []float64, padTo int) []complex128 {
	if padTo < len(x) {
		padTo = len(x)
	}
	padded := make([]float64, padTo)
	copy(padded, x)
	return f.Compute(padded)
}

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
