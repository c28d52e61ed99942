package preprocess

import (
	"gonum.org/v1/gonum/mat"
)

// savitzkyGolay smooths x with a Savitzky-Golay filter of the given odd
// window and polynomial order, solving the per-offset convolution
// coefficients as a Vandermonde least-squares fit, in the same spirit as
// the teacher's reach for gonum/mat whenever a small dense linear system
// needs solving.
func savitzkyGolay(x []float64, window, order int) []float64 {
	n := len(x)
	if window < 3 {
		window++
	}
	if window%2 == 0 {
		window++
	}
	if order >= window {
		order = window - 1
	}
	half := window / 2

	coeffs := savgolCoefficients(half, order)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := -half; j <= half; j++ {
			idx := i + j
			if idx < 0 {
				idx = 0
			}
			if idx >= n {
				idx = n - 1
			}
			sum += coeffs[j+half] * x[idx]
		}
		out[i] = sum
	}
	return out
}

// savgolCoefficients solves for the central-point smoothing coefficients of
// a Savitzky-Golay filter with the given half-window and polynomial order
// via the normal equations of a Vandermonde design matrix.
func savgolCoefficients(half, order int) []float64 {
	window := 2*half + 1
	// Vandermonde design: A[i][k] = i_offset^k
	a := mat.NewDense(window, order+1, nil)
	for i := -half; i <= half; i++ {
		row := i + half
		p := 1.0
		for k := 0; k <= order; k++ {
			a.Set(row, k, p)
			p *= float64(i)
		}
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)

	var ataInv mat.Dense
	if err := ataInv.Inverse(&ata); err != nil {
		// Degenerate design (window too small for order): fall back to a
		// plain moving average.
		coeffs := make([]float64, window)
		for i := range coeffs {
			coeffs[i] = 1.0 / float64(window)
		}
		return coeffs
	}

	var pinv mat.Dense
	pinv.Mul(&ataInv, a.T())

	// The smoothed value at the center point is row 0 of (A^T A)^-1 A^T
	// applied to the coefficient vector for evaluating the fitted
	// polynomial at offset 0, which is simply e_0 (the constant term).
	coeffs := make([]float64, window)
	for j := 0; j < window; j++ {
		coeffs[j] = pinv.At(0, j)
	}
	return coeffs
}
