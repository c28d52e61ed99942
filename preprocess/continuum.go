package preprocess

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// continuumWindow is the running-median window used for the primary
// continuum fit, wide enough to track broad spectral shape without
// following narrow absorption/emission features.
const continuumWindow = 151

// fitContinuum fits a smooth continuum to logFlux over [left, right] via an
// iterative running-median low-pass (the same order-statistic family as the
// spike baseline), returning degraded=true when the result would be
// non-finite or non-positive anywhere in the active region, in which case
// callers fall back to fitContinuumLinear.
func fitContinuum(logFlux []float64, left, right int) (continuum []float64, degraded bool) {
	n := len(logFlux)
	continuum = make([]float64, n)

	active := logFlux[left : right+1]
	baseline := runningMedian(active, continuumWindow)
	// A second smoothing pass removes residual jaggedness from the first
	// median pass, the same two-pass pattern the teacher's statistics
	// helpers use for robust baselines.
	baseline = runningMedian(baseline, continuumWindow/2|1)

	for i, v := range baseline {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return continuum, true
		}
		continuum[left+i] = v
	}

	return continuum, false
}

// fitContinuumLinear is the BadContinuum fallback: an ordinary
// least-squares line through the active region, guaranteed positive as
// long as the input itself is (clamped otherwise), mirroring the teacher's
// "use gonum's linear regression" trend-line helper in
// algorithms/common/math.go.
func fitContinuumLinear(logFlux []float64, left, right int) []float64 {
	n := len(logFlux)
	continuum := make([]float64, n)

	m := right - left + 1
	xs := make([]float64, m)
	ys := make([]float64, m)
	for i := 0; i < m; i++ {
		xs[i] = float64(i)
		ys[i] = logFlux[left+i]
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	for i := 0; i < m; i++ {
		v := alpha + beta*float64(i)
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			v = 1
		}
		continuum[left+i] = v
	}
	return continuum
}

// flatten divides logFlux by continuum over [left,right] and subtracts 1,
// then removes the active-region mean so the result is zero-mean there;
// zero everywhere outside.
func flatten(logFlux, continuum []float64, left, right int) []float64 {
	n := len(logFlux)
	out := make([]float64, n)

	for i := left; i <= right; i++ {
		out[i] = logFlux[i]/continuum[i] - 1
	}

	mean := stat.Mean(out[left:right+1], nil)
	for i := left; i <= right; i++ {
		out[i] -= mean
	}

	return out
}
