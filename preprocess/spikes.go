package preprocess

import (
	"math"
	"sort"
)

// removeSpikes replaces narrow positive or negative outliers with a running
// median baseline. A point is flagged a spike when its residual exceeds
// floorZ robust sigma (sigma from the median absolute deviation, scaled by
// the usual 1.4826 normal-consistency factor) and its residual exceeds both
// immediate neighbors by relEdgeRatio. Flagged points are replaced by the
// baseline; at most one spike is removed per minSeparation window so a
// genuine narrow emission feature a few pixels wide isn't eaten one point at
// a time.
//
// Grounded in the teacher's sliding-window order-statistic approach
// (algorithms/stats/percentiles.go), generalized from a single static sample
// to a moving baseline.
func removeSpikes(flux []float64, window int, floorZ, relEdgeRatio float64, minSeparation int) ([]float64, int) {
	n := len(flux)
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}

	baseline := runningMedian(flux, window)

	resid := make([]float64, n)
	for i := range flux {
		resid[i] = flux[i] - baseline[i]
	}
	sigma := madSigma(resid)

	out := make([]float64, n)
	copy(out, flux)

	lastRemoved := -minSeparation - 1
	removed := 0
	for i := 1; i < n-1; i++ {
		if i-lastRemoved <= minSeparation {
			continue
		}
		r := math.Abs(resid[i])
		if r <= floorZ*sigma {
			continue
		}
		rPrev := math.Abs(resid[i-1])
		rNext := math.Abs(resid[i+1])
		if r < relEdgeRatio*rPrev || r < relEdgeRatio*rNext {
			continue
		}
		out[i] = baseline[i]
		lastRemoved = i
		removed++
	}

	return out, removed
}

// runningMedian computes a centered sliding-window median, widening the
// window near the array edges so every index gets a baseline.
func runningMedian(x []float64, window int) []float64 {
	n := len(x)
	half := window / 2
	out := make([]float64, n)

	buf := make([]float64, 0, window)
	for i := 0; i < n; i++ {
		lo := i - half
		hi := i + half
		if lo < 0 {
			lo = 0
		}
		if hi >= n {
			hi = n - 1
		}
		buf = buf[:0]
		for j := lo; j <= hi; j++ {
			buf = append(buf, x[j])
		}
		out[i] = median(buf)
	}
	return out
}

func median(x []float64) float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return 0.5 * (sorted[n/2-1] + sorted[n/2])
}

// madSigma estimates a robust standard deviation from the median absolute
// deviation, using the factor that makes it consistent for normal data.
func madSigma(x []float64) float64 {
	m := median(x)
	dev := make([]float64, len(x))
	for i, v := range x {
		dev[i] = math.Abs(v - m)
	}
	return 1.4826 * median(dev)
}
