package preprocess

import "github.com/astrosnid/snid/grid"

// rebin flux-conserves wave/flux (arbitrary, increasing wave sampling) onto
// the shared grid g, by integrating the input's piecewise-constant flux
// density over each output bin's wavelength span rather than merely
// interpolating at bin centers — interpolation would not conserve flux
// across bin edges, which this step's contract requires.
//
// Adapted from the teacher's resampling family (algorithms/common's
// interpolation-based ResampleSignal) but replacing point interpolation
// with partial-pixel overlap integration, since ordinary interpolation
// does not conserve flux across differently spaced bins.
func rebin(wave, flux []float64, g grid.Grid) []float64 {
	n := len(wave)
	out := make([]float64, g.N)
	if n == 0 {
		return out
	}

	// Input bin edges: midpoints between samples, with the outermost edges
	// extrapolated by half the adjacent spacing.
	inEdges := make([]float64, n+1)
	inEdges[0] = wave[0] - 0.5*(wave[1]-wave[0])
	for i := 1; i < n; i++ {
		inEdges[i] = 0.5 * (wave[i-1] + wave[i])
	}
	inEdges[n] = wave[n-1] + 0.5*(wave[n-1]-wave[n-2])

	gw := g.Wavelengths()
	outEdges := make([]float64, g.N+1)
	outEdges[0] = gw[0] - 0.5*(gw[1]-gw[0])
	for i := 1; i < g.N; i++ {
		outEdges[i] = 0.5 * (gw[i-1] + gw[i])
	}
	outEdges[g.N] = gw[g.N-1] + 0.5*(gw[g.N-1]-gw[g.N-2])

	j := 0 // input bin cursor
	for i := 0; i < g.N; i++ {
		lo, hi := outEdges[i], outEdges[i+1]
		if hi <= lo {
			continue
		}

		var sumFlux, sumWidth float64
		for j < n && inEdges[j+1] <= lo {
			j++
		}
		k := j
		for k < n && inEdges[k] < hi {
			overlapLo := max64(lo, inEdges[k])
			overlapHi := min64(hi, inEdges[k+1])
			if overlapHi > overlapLo {
				width := overlapHi - overlapLo
				sumFlux += flux[k] * width
				sumWidth += width
			}
			k++
		}

		if sumWidth > 0 {
			out[i] = sumFlux / sumWidth
		}
	}

	return out
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
