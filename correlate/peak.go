package correlate

import (
	"math"
	"sort"

	"github.com/astrosnid/snid/grid"
)

// findPeakInWindow finds local maxima of correlation within lag in [lo, hi]
// at least windowSize grid points apart, then returns the FFT-circular
// index of the tallest one — grounded in vectorized_peak_finder.py's
// `distance` argument to scipy.signal.find_peaks, which enforces the same
// minimum-separation rule before ranking candidate peaks.
func findPeakInWindow(correlation []float64, lo, hi, windowSize int) int {
	n := len(correlation)
	if windowSize < 1 {
		windowSize = 1
	}

	type candidate struct {
		lag int
		val float64
	}
	var peaks []candidate

	for lag := lo; lag <= hi; lag++ {
		v := correlation[circularIndex(lag, n)]
		vPrev := correlation[circularIndex(lag-1, n)]
		vNext := correlation[circularIndex(lag+1, n)]
		if v >= vPrev && v >= vNext {
			peaks = append(peaks, candidate{lag: lag, val: v})
		}
	}
	if len(peaks) == 0 {
		// Flat or monotone window: fall back to a plain argmax.
		bestIdx := lo
		bestVal := correlation[circularIndex(lo, n)]
		for lag := lo + 1; lag <= hi; lag++ {
			v := correlation[circularIndex(lag, n)]
			if v > bestVal {
				bestVal = v
				bestIdx = lag
			}
		}
		return bestIdx
	}

	// Enforce minimum separation: scan peaks in descending height order,
	// keeping a peak only if it's at least windowSize away from every
	// peak already kept.
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].val > peaks[j].val })
	var kept []candidate
	for _, p := range peaks {
		tooClose := false
		for _, k := range kept {
			d := p.lag - k.lag
			if d < 0 {
				d = -d
			}
			if d < windowSize {
				tooClose = true
				break
			}
		}
		if !tooClose {
			kept = append(kept, p)
		}
	}

	return kept[0].lag
}

func circularIndex(lag, n int) int {
	idx := lag % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// refinePeak returns the correlation value at lagIdx and the fractional
// sub-pixel offset from it, via a three-point parabolic fit.
func refinePeak(correlation []float64, lagIdx int) (peakVal float64, subpixel float64) {
	n := len(correlation)
	i0 := circularIndex(lagIdx-1, n)
	i1 := circularIndex(lagIdx, n)
	i2 := circularIndex(lagIdx+1, n)

	peakVal = correlation[i1]
	subpixel = grid.ParabolicVertex(correlation[i0], correlation[i1], correlation[i2])
	return peakVal, subpixel
}

// offPeakSigma estimates the correlation function's noise level from an
// off-peak region, excluding a window of half-width 5*windowSize around the
// peak, mirroring calculateSNR's peak-exclusion radius generalized to the
// configured peak window.
func offPeakSigma(correlation []float64, peakIdx, windowSize int) float64 {
	n := len(correlation)
	exclude := 5 * windowSize
	if exclude < 1 {
		exclude = 1
	}

	var sum float64
	var count int
	for i, v := range correlation {
		d := i - circularIndex(peakIdx, n)
		if d < 0 {
			d = -d
		}
		if n-d < d {
			d = n - d
		}
		if d <= exclude {
			continue
		}
		sum += v * v
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(count))
}

// zErrFromHalfWidth estimates the redshift uncertainty from the half-width
// of the correlation peak where it drops to peakVal - sigma, converted to
// redshift units via the grid's lag-to-redshift conversion.
func zErrFromHalfWidth(correlation []float64, peakIdx int, peakVal, sigma float64, g grid.Grid) float64 {
	if sigma <= 0 {
		return 0
	}
	n := len(correlation)
	threshold := peakVal - sigma

	halfWidth := 0
	for halfWidth < n/2 {
		idx := circularIndex(peakIdx+halfWidth, n)
		if correlation[idx] < threshold {
			break
		}
		halfWidth++
	}

	zAtEdge := g.RedshiftForLag(float64(peakIdx + halfWidth))
	zAtPeak := g.RedshiftForLag(float64(peakIdx))
	return math.Abs(zAtEdge - zAtPeak)
}

// fractionalOverlap computes the fractional wavelength overlap between the
// input's active region and the template's active region shifted by lag
// grid points, in [0, 1].
func fractionalOverlap(g grid.Grid, inLeft, inRight, tmplLeft, tmplRight int, lag float64) float64 {
	shift := int(math.Round(lag))
	shiftedLeft := tmplLeft + shift
	shiftedRight := tmplRight + shift

	lo := inLeft
	if shiftedLeft > lo {
		lo = shiftedLeft
	}
	hi := inRight
	if shiftedRight < hi {
		hi = shiftedRight
	}
	if hi < lo {
		return 0
	}

	overlapLen := hi - lo + 1
	inLen := inRight - inLeft + 1
	tmplLen := shiftedRight - shiftedLeft + 1
	denom := math.Min(float64(inLen), float64(tmplLen))
	if denom <= 0 {
		return 0
	}
	return float64(overlapLen) / denom
}

// cosineSimilarity computes cosine similarity between the input flux and
// the template flux shifted by lagIdx grid points, over their overlap
// region.
func cosineSimilarity(input, tmpl []float64, inLeft, inRight, tmplLeft, tmplRight, lagIdx int) float64 {
	n := len(input)
	lo := inLeft
	if tmplLeft+lagIdx > lo {
		lo = tmplLeft + lagIdx
	}
	hi := inRight
	if tmplRight+lagIdx < hi {
		hi = tmplRight + lagIdx
	}
	if hi < lo {
		return 0
	}

	var dot, normIn, normTmpl float64
	for i := lo; i <= hi; i++ {
		j := i - lagIdx
		if j < 0 || j >= n {
			continue
		}
		dot += input[i] * tmpl[j]
		normIn += input[i] * input[i]
		normTmpl += tmpl[j] * tmpl[j]
	}

	denom := math.Sqrt(normIn) * math.Sqrt(normTmpl)
	if denom <= 0 {
		return 0
	}
	return dot / denom
}
